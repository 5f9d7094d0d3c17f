package ops

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"plugvault/internal/plugin"
	"plugvault/internal/testsupport"
)

func TestRemovePermanent(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFlatVST2(t, dir, "Gone.vst")
	rec := plugin.NewRecord("Gone", plugin.FormatVST2, path)

	result := NewRemover("", nil).Remove(context.Background(), []*plugin.Record{rec}, ModePermanent, nil)
	if !result.Succeeded() {
		t.Fatalf("remove failed: %+v", result.Items)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("path still exists after permanent removal")
	}
}

func TestRemoveTrashMovesAndSuffixesCollisions(t *testing.T) {
	dir := t.TempDir()
	trash := filepath.Join(dir, "trash")
	a := testsupport.WriteFlatVST2(t, filepath.Join(dir, "a"), "Same.vst")
	b := testsupport.WriteFlatVST2(t, filepath.Join(dir, "b"), "Same.vst")

	records := []*plugin.Record{
		plugin.NewRecord("Same A", plugin.FormatVST2, a),
		plugin.NewRecord("Same B", plugin.FormatVST2, b),
	}
	result := NewRemover(trash, nil).Remove(context.Background(), records, ModeTrash, nil)
	if !result.Succeeded() {
		t.Fatalf("remove failed: %+v", result.Items)
	}

	if _, err := os.Stat(filepath.Join(trash, "Same.vst")); err != nil {
		t.Fatalf("first trashed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(trash, "Same_1.vst")); err != nil {
		t.Fatalf("collision suffix missing: %v", err)
	}
}

func TestRemoveFailedPathMarksRecordButContinues(t *testing.T) {
	dir := t.TempDir()
	good := testsupport.WriteFlatVST2(t, dir, "Good.vst")

	broken := plugin.NewRecord("Broken", plugin.FormatVST2, filepath.Join(dir, "missing.vst"))
	ok := plugin.NewRecord("Good", plugin.FormatVST2, good)

	result := NewRemover("", nil).Remove(context.Background(), []*plugin.Record{broken, ok}, ModePermanent, nil)
	if result.Succeeded() {
		t.Fatal("aggregate must report failure")
	}
	if result.Items[0].Err == nil {
		t.Fatal("broken record must carry its error")
	}
	if result.Items[1].Err != nil {
		t.Fatalf("good record failed: %v", result.Items[1].Err)
	}
	// The good record must still be physically removed.
	if _, err := os.Stat(good); !os.IsNotExist(err) {
		t.Fatal("good record not removed despite earlier failure")
	}
}

func TestRemoveBundleDirectory(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "Big.vst3")
	if err := os.MkdirAll(filepath.Join(bundle, "Contents"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bundle, "Contents", "Info.plist"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := plugin.NewRecord("Big", plugin.FormatVST3, bundle)
	result := NewRemover("", nil).Remove(context.Background(), []*plugin.Record{rec}, ModePermanent, nil)
	if !result.Succeeded() {
		t.Fatalf("remove failed: %+v", result.Items)
	}
	if _, err := os.Stat(bundle); !os.IsNotExist(err) {
		t.Fatal("bundle still exists")
	}
}

func TestRemoveProgressReporting(t *testing.T) {
	dir := t.TempDir()
	records := []*plugin.Record{
		plugin.NewRecord("One", plugin.FormatVST2, testsupport.WriteFlatVST2(t, dir, "One.vst")),
		plugin.NewRecord("Two", plugin.FormatVST2, testsupport.WriteFlatVST2(t, dir, "Two.vst")),
	}

	var fractions []float64
	progress := func(processed, total int, _ *plugin.Record) {
		fractions = append(fractions, float64(processed)/float64(total))
	}
	NewRemover("", nil).Remove(context.Background(), records, ModePermanent, progress)

	if len(fractions) != 2 || fractions[0] != 0.5 || fractions[1] != 1.0 {
		t.Fatalf("fractions = %v, want [0.5 1.0]", fractions)
	}
}
