package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"plugvault/internal/plist"
)

// WriteBundle creates a plugin bundle directory with a metadata container at
// the given sub-path. Returns the bundle path.
func WriteBundle(t testing.TB, dir, bundleName, containerSub string, dict plist.Dict) string {
	t.Helper()
	bundle := filepath.Join(dir, bundleName)
	containerPath := filepath.Join(bundle, containerSub)
	if err := os.MkdirAll(filepath.Dir(containerPath), 0o755); err != nil {
		t.Fatal(err)
	}
	data, err := plist.Marshal(dict)
	if err != nil {
		t.Fatalf("marshal container: %v", err)
	}
	if err := os.WriteFile(containerPath, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return bundle
}

// WriteVST3 creates a conforming VST3 bundle with Contents/Info.plist.
func WriteVST3(t testing.TB, dir, name string, dict plist.Dict) string {
	t.Helper()
	return WriteBundle(t, dir, name+".vst3", filepath.Join("Contents", "Info.plist"), dict)
}

// WriteComponent creates a conforming AU component bundle.
func WriteComponent(t testing.TB, dir, name string, dict plist.Dict) string {
	t.Helper()
	return WriteBundle(t, dir, name+".component", filepath.Join("Contents", "Info.plist"), dict)
}

// CLAPDescriptor is the sidecar content for a CLAP fixture.
type CLAPDescriptor struct {
	Name         string `json:"name,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Version      string `json:"version,omitempty"`
}

// WriteCLAP creates a CLAP bundle with a Contents/clap.json sidecar.
func WriteCLAP(t testing.TB, dir, name string, desc CLAPDescriptor) string {
	t.Helper()
	bundle := filepath.Join(dir, name+".clap")
	if err := os.MkdirAll(filepath.Join(bundle, "Contents"), 0o755); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(desc)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bundle, "Contents", "clap.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	return bundle
}

// WriteFlatVST2 creates a legacy single-file VST2 plugin. The filename is
// used verbatim so tests can exercise version-token parsing.
func WriteFlatVST2(t testing.TB, dir, filename string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte("vst2 binary payload"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
