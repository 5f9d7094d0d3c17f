package ops

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"plugvault/internal/plugin"
	"plugvault/internal/testsupport"
)

func fixedBackuper() *Backuper {
	b := NewBackuper(nil)
	b.now = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }
	return b
}

func TestBackupLayoutAndManifest(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "backups")
	vstPath := testsupport.WriteFlatVST2(t, filepath.Join(dir, "VST"), "Foo.vst")

	rec := plugin.NewRecord("Foo", plugin.FormatVST2, vstPath)
	result, err := fixedBackuper().Backup(context.Background(), []*plugin.Record{rec}, dest, nil)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if !result.Succeeded() {
		t.Fatalf("items: %+v", result.Items)
	}

	wantDir := filepath.Join(dest, "PluginBackup_20260314_092653")
	if result.Dir != wantDir {
		t.Fatalf("dir = %q, want %q", result.Dir, wantDir)
	}
	if _, err := os.Stat(filepath.Join(wantDir, "VST", "Foo.vst")); err != nil {
		t.Fatalf("backed-up file missing: %v", err)
	}

	manifest, err := os.ReadFile(result.ManifestPath)
	if err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
	if !strings.Contains(string(manifest), "VST2 (1)") || !strings.Contains(string(manifest), "Foo -> Foo.vst") {
		t.Fatalf("manifest content:\n%s", manifest)
	}
}

func TestBackupCollisionSuffixes(t *testing.T) {
	// Two distinct plugins whose on-disk filenames collide at the
	// destination: the second must land as Same_1.vst, nothing
	// overwritten.
	dir := t.TempDir()
	dest := filepath.Join(dir, "backups")
	a := testsupport.WriteFlatVST2(t, filepath.Join(dir, "a"), "Same.vst")
	b := testsupport.WriteFlatVST2(t, filepath.Join(dir, "b"), "Same.vst")
	if err := os.WriteFile(a, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}

	records := []*plugin.Record{
		plugin.NewRecord("Same A", plugin.FormatVST2, a),
		plugin.NewRecord("Same B", plugin.FormatVST2, b),
	}
	result, err := fixedBackuper().Backup(context.Background(), records, dest, nil)
	if err != nil {
		t.Fatal(err)
	}

	bucket := filepath.Join(result.Dir, "VST")
	first, err := os.ReadFile(filepath.Join(bucket, "Same.vst"))
	if err != nil {
		t.Fatalf("first copy missing: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(bucket, "Same_1.vst"))
	if err != nil {
		t.Fatalf("suffixed copy missing: %v", err)
	}
	if string(first) != "first" || string(second) != "second" {
		t.Fatal("collision overwrote an existing destination file")
	}

	manifest, err := os.ReadFile(result.ManifestPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(manifest), "Same A -> Same.vst") || !strings.Contains(string(manifest), "Same B -> Same_1.vst") {
		t.Fatalf("manifest must list final filenames:\n%s", manifest)
	}
}

func TestBackupBundle(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "backups")
	bundle := filepath.Join(dir, "Synth.vst3")
	if err := os.MkdirAll(filepath.Join(bundle, "Contents"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bundle, "Contents", "Info.plist"), []byte("<plist/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := plugin.NewRecord("Synth", plugin.FormatVST3, bundle)
	result, err := fixedBackuper().Backup(context.Background(), []*plugin.Record{rec}, dest, nil)
	if err != nil {
		t.Fatal(err)
	}
	copied := filepath.Join(result.Dir, "VST3", "Synth.vst3", "Contents", "Info.plist")
	if _, err := os.Stat(copied); err != nil {
		t.Fatalf("bundle content missing: %v", err)
	}
}

func TestBackupDestinationFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	// A file where the destination directory should be makes MkdirAll
	// fail.
	blocked := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := plugin.NewRecord("Foo", plugin.FormatVST2, testsupport.WriteFlatVST2(t, dir, "Foo.vst"))
	_, err := fixedBackuper().Backup(context.Background(), []*plugin.Record{rec}, blocked, nil)
	if !errors.Is(err, ErrDestination) {
		t.Fatalf("err = %v, want ErrDestination", err)
	}
	// No partial manifest anywhere under the blocked path.
	if _, statErr := os.Stat(filepath.Join(blocked, "manifest.txt")); statErr == nil {
		t.Fatal("partial manifest written despite destination failure")
	}
}

func TestBackupMissingSourceMarksItemFailed(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "backups")
	good := testsupport.WriteFlatVST2(t, dir, "Good.vst")

	records := []*plugin.Record{
		plugin.NewRecord("Broken", plugin.FormatVST2, filepath.Join(dir, "missing.vst")),
		plugin.NewRecord("Good", plugin.FormatVST2, good),
	}
	result, err := fixedBackuper().Backup(context.Background(), records, dest, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Succeeded() {
		t.Fatal("aggregate must report failure")
	}
	if result.Items[0].Err == nil || result.Items[1].Err != nil {
		t.Fatalf("unexpected item results: %+v", result.Items)
	}
	if _, err := os.Stat(filepath.Join(result.Dir, "VST", "Good.vst")); err != nil {
		t.Fatal("good record must still be backed up")
	}
}
