package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plugvault/internal/plist"
	"plugvault/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	pluginsDir string
	trashDir   string
	backupDir  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		pluginsDir: filepath.Join(base, "plugins"),
		trashDir:   filepath.Join(base, "trash"),
		backupDir:  filepath.Join(base, "backups"),
	}

	if err := os.MkdirAll(env.pluginsDir, 0o755); err != nil {
		t.Fatalf("create plugins dir: %v", err)
	}

	content := fmt.Sprintf(`[paths]
log_dir = %q
state_dir = %q
trash_dir = %q

[backup]
destination_dir = %q

[logging]
format = "console"
level = "error"
`,
		filepath.Join(base, "logs"),
		filepath.Join(base, "state"),
		env.trashDir,
		env.backupDir,
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return env
}

// seedPlugins installs the standard fixture set: one plugin present as both
// VST3 and flat VST2, and one CLAP-only plugin.
func (env *cliTestEnv) seedPlugins(t *testing.T) {
	t.Helper()
	testsupport.WriteVST3(t, env.pluginsDir, "Serum", plist.Dict{
		"Manufacturer":               "Xfer Records",
		"CFBundleShortVersionString": "1.3.6",
	})
	testsupport.WriteFlatVST2(t, env.pluginsDir, "Serum.vst")
	testsupport.WriteCLAP(t, env.pluginsDir, "Vital", testsupport.CLAPDescriptor{
		Name:         "Vital",
		Manufacturer: "Vital Audio",
		Version:      "1.5.5",
	})
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--config", env.configPath, "--root", env.pluginsDir}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
