package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"plugvault/internal/plugin"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHistoryRecordAndList(t *testing.T) {
	h := openTestHistory(t)

	foo := plugin.NewRecord("Foo", plugin.FormatVST3, "/a/Foo.vst3")
	foo.AddFormat(plugin.FormatVST2)
	foo.AddPath("/b/Foo.vst")
	foo.SetManufacturer("Acme")
	bar := plugin.NewRecord("Bar", plugin.FormatCLAP, "/a/Bar.clap")
	cat := plugin.NewCatalog([]*plugin.Record{foo, bar}, nil)

	id, err := h.RecordScan(context.Background(), cat)
	if err != nil {
		t.Fatalf("record scan: %v", err)
	}
	if id == 0 {
		t.Fatal("scan id must be non-zero")
	}

	summaries, err := h.ListScans(context.Background(), 0)
	if err != nil {
		t.Fatalf("list scans: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	got := summaries[0]
	if got.Total != 2 {
		t.Errorf("total = %d, want 2", got.Total)
	}
	if got.ByFormat[plugin.FormatVST3] != 1 || got.ByFormat[plugin.FormatVST2] != 1 || got.ByFormat[plugin.FormatCLAP] != 1 {
		t.Errorf("format counts = %v", got.ByFormat)
	}
	if got.ScannedAt.IsZero() {
		t.Error("scanned_at not round-tripped")
	}
}

func TestHistoryListNewestFirstWithLimit(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		cat := plugin.NewCatalog(nil, nil)
		if _, err := h.RecordScan(ctx, cat); err != nil {
			t.Fatal(err)
		}
	}

	summaries, err := h.ListScans(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 {
		t.Fatalf("limit ignored: got %d", len(summaries))
	}
	if summaries[0].ID <= summaries[1].ID {
		t.Fatalf("not newest first: %d then %d", summaries[0].ID, summaries[1].ID)
	}
}

func TestHistoryReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	h, err := OpenHistory(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.RecordScan(context.Background(), plugin.NewCatalog(nil, nil)); err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	summaries, err := reopened.ListScans(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 1 {
		t.Fatalf("data lost across reopen: %d rows", len(summaries))
	}
}
