package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plugvault/internal/plugin"
)

func TestRenderCatalogHeadings(t *testing.T) {
	dir := t.TempDir()
	vst3Path := filepath.Join(dir, "Foo.vst3")
	if err := os.WriteFile(vst3Path, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}

	foo := plugin.NewRecord("Foo", plugin.FormatVST3, vst3Path)
	foo.SetManufacturer("Acme")
	foo.SetVersion("2.1")
	bar := plugin.NewRecord("Bar", plugin.FormatCLAP, filepath.Join(dir, "Bar.clap"))

	out := RenderCatalog([]*plugin.Record{foo, bar})

	if !strings.Contains(out, "VST3 (1)\n========\n") {
		t.Errorf("missing VST3 heading with underline:\n%s", out)
	}
	if !strings.Contains(out, "CLAP (1)\n========\n") {
		t.Errorf("missing CLAP heading:\n%s", out)
	}
	if !strings.Contains(out, "Manufacturer: Acme") || !strings.Contains(out, "Version: 2.1") {
		t.Errorf("missing metadata lines:\n%s", out)
	}
	if !strings.Contains(out, "Location: "+vst3Path) {
		t.Errorf("missing location line:\n%s", out)
	}
	if !strings.Contains(out, "Size: 10 B") {
		t.Errorf("missing size line:\n%s", out)
	}
	// Bar has no manufacturer or version; those lines must be absent in
	// its section.
	clapSection := out[strings.Index(out, "CLAP (1)"):]
	if strings.Contains(clapSection, "Manufacturer:") {
		t.Errorf("empty manufacturer rendered:\n%s", clapSection)
	}
}

func TestRenderCatalogMultiFormatAppearsTwice(t *testing.T) {
	rec := plugin.NewRecord("Dual", plugin.FormatVST3, "/x/Dual.vst3")
	rec.AddFormat(plugin.FormatVST2)
	rec.AddPath("/x/Dual.vst")

	out := RenderCatalog([]*plugin.Record{rec})
	if !strings.Contains(out, "VST2 (1)") || !strings.Contains(out, "VST3 (1)") {
		t.Errorf("record must appear under both format headings:\n%s", out)
	}
}

func TestRenderManifest(t *testing.T) {
	entries := []ManifestEntry{
		{Format: plugin.FormatVST3, DisplayName: "Foo", Filename: "Foo.vst3"},
		{Format: plugin.FormatVST3, DisplayName: "Foo Copy", Filename: "Foo_1.vst3"},
		{Format: plugin.FormatAU, DisplayName: "Verb", Filename: "Verb.component"},
	}

	out := RenderManifest(entries)
	if !strings.Contains(out, "VST3 (2)\n========\n") {
		t.Errorf("missing VST3 heading:\n%s", out)
	}
	if !strings.Contains(out, "AU (1)\n======\n") {
		t.Errorf("missing AU heading:\n%s", out)
	}
	if !strings.Contains(out, "Foo -> Foo.vst3") || !strings.Contains(out, "Foo Copy -> Foo_1.vst3") {
		t.Errorf("missing manifest lines:\n%s", out)
	}
}
