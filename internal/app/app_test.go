package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

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

func TestRunEndToEnd(t *testing.T) {
	t.Setenv("LOGSTER_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	input := `{"level":"INFO","path":"api/users","query":"id=1","top_k":5,"function":"get","line":42,"message":"ok"}` + "\n" +
		"plain non-json log line\n"
	var out bytes.Buffer

	err := Run(context.Background(), Options{
		NoColor: true,
		In:      strings.NewReader(input),
		Out:     &out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d output lines, want 2: %q", len(lines), out.String())
	}
	if lines[0] != `[INFO][/api/users][q="id=1"][top_k=5][get:42] ok` {
		t.Fatalf("line 1 = %q", lines[0])
	}
	if lines[1] != "plain non-json log line" {
		t.Fatalf("line 2 = %q", lines[1])
	}
}

func TestRunUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logster.toml")
	body := `
output_style = "verbose"
no_color = true

[fields]
message_fields = ["text"]
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		ConfigPath: path,
		In:         strings.NewReader(`{"text":"hi","extra":1}` + "\n"),
		Out:        &out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if out.String() != "hi\n{\"extra\":1}\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunFailsBeforeReadingOnBadConfig(t *testing.T) {
	t.Setenv("LOGSTER_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Theme: "nope",
		In:    strings.NewReader(`{"event":"never formatted"}` + "\n"),
		Out:   &out,
	})
	if err == nil {
		t.Fatal("Run returned nil error for unknown theme")
	}
	if !strings.Contains(err.Error(), `"nope"`) {
		t.Fatalf("error = %q, want it to name the theme", err)
	}
	if out.Len() != 0 {
		t.Fatalf("output = %q, want none before config failure", out.String())
	}
}
