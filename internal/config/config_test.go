package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// chdir changes into dir for the duration of the test, mirroring
// testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "logster.toml", `
no_color = true
output_style = "verbose"
theme = "nord"
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if f.NoColor == nil || !*f.NoColor {
		t.Fatalf("NoColor = %v, want true", f.NoColor)
	}
	if f.OutputStyle == nil || *f.OutputStyle != "verbose" {
		t.Fatalf("OutputStyle = %v, want verbose", f.OutputStyle)
	}
	if f.Theme == nil || *f.Theme != "nord" {
		t.Fatalf("Theme = %v, want nord", f.Theme)
	}
}

func TestLoad_ExplicitPathMissingFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("Load returned nil error for missing explicit path")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("error = %q, want it to mention not found", err)
	}
}

func TestLoad_EnvVarPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "env.toml", `theme = "gruvbox"`)
	t.Setenv(envConfigPath, path)
	chdir(t, t.TempDir())

	f, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if f.Theme == nil || *f.Theme != "gruvbox" {
		t.Fatalf("Theme = %v, want gruvbox", f.Theme)
	}
}

func TestLoad_DiscoversLocalFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, localConfigName, `output_style = "verbose"`)
	t.Setenv(envConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, dir)

	f, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if f.OutputStyle == nil || *f.OutputStyle != "verbose" {
		t.Fatalf("OutputStyle = %v, want verbose", f.OutputStyle)
	}
}

func TestLoad_DiscoversHomeConfig(t *testing.T) {
	home := t.TempDir()
	confDir := filepath.Join(home, ".config", "logster")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	writeConfig(t, confDir, "config.toml", `theme = "monokai"`)
	t.Setenv(envConfigPath, "")
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	f, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if f.Theme == nil || *f.Theme != "monokai" {
		t.Fatalf("Theme = %v, want monokai", f.Theme)
	}
}

func TestLoad_NoFileYieldsEmptyConfig(t *testing.T) {
	t.Setenv(envConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	f, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if f != (File{}) {
		t.Fatalf("Load = %+v, want zero File", f)
	}
}

func TestLoad_FieldsTable(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "logster.toml", `
[fields]
timestamp        = "ts"
level            = "severity"
message_fields   = ["text"]
main_line_fields = ["request_id", "user"]
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if f.Fields == nil {
		t.Fatal("Fields table missing")
	}
	if f.Fields.Timestamp == nil || *f.Fields.Timestamp != "ts" {
		t.Fatalf("Fields.Timestamp = %v, want ts", f.Fields.Timestamp)
	}
	if len(f.Fields.MessageFields) != 1 || f.Fields.MessageFields[0] != "text" {
		t.Fatalf("MessageFields = %v, want [text]", f.Fields.MessageFields)
	}
	if len(f.Fields.MainLineFields) != 2 {
		t.Fatalf("MainLineFields = %v, want two entries", f.Fields.MainLineFields)
	}
}

func TestLoad_MalformedTOMLFails(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "logster.toml", `no_color = `)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load returned nil error for malformed TOML")
	}
}
