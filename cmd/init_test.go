package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eykd/adoclint-go/internal/configfile"
)

func runInit(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewInitCmd(func() (string, error) { return dir, nil }, &fileCreatorAdapter{})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestInitCmd_WritesStarterRules(t *testing.T) {
	tmp := t.TempDir()

	out, err := runInit(t, tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Wrote") {
		t.Errorf("expected confirmation message, got: %q", out)
	}

	path := filepath.Join(tmp, configfile.DefaultFilename)
	cfg, err := configfile.Load(path)
	if err != nil {
		t.Fatalf("starter rules do not load: %v", err)
	}
	if len(cfg.Document.Sections) != 1 || len(cfg.Document.Sections[0].Blocks) != 3 {
		t.Errorf("unexpected starter rules: %+v", cfg.Document)
	}
}

func TestInitCmd_KeepsExistingFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, configfile.DefaultFilename)
	if err := os.WriteFile(path, []byte("suppress: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runInit(t, tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("expected already-exists message, got: %q", out)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "suppress: []\n" {
		t.Errorf("existing file was overwritten: %q", data)
	}

	if _, err := runInit(t, tmp, "--force"); err != nil {
		t.Fatalf("--force: unexpected error: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != starterRules {
		t.Error("--force did not overwrite the rules file")
	}
}

func TestInitCmd_GetwdError(t *testing.T) {
	cmd := NewInitCmd(func() (string, error) { return "", os.ErrPermission }, &fileCreatorAdapter{})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when getwd fails")
	}
}
