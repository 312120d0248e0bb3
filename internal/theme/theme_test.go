package theme

import (
	"strings"
	"testing"
)

func TestGetKnownScheme(t *testing.T) {
	s, err := Get("dracula")
	if err != nil {
		t.Fatalf("Get(dracula) returned error: %v", err)
	}
	if s.Name != "dracula" {
		t.Fatalf("Name = %q, want dracula", s.Name)
	}
	if s.Message != "#f8f8f2" {
		t.Fatalf("Message = %q, want #f8f8f2", s.Message)
	}
}

func TestGetUnknownSchemeListsValidNames(t *testing.T) {
	_, err := Get("nope")
	if err == nil {
		t.Fatal("Get(nope) returned nil error")
	}
	if !strings.Contains(err.Error(), `"nope"`) {
		t.Fatalf("error %q does not name the requested scheme", err)
	}
	for _, name := range Names() {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error %q does not list %q", err, name)
		}
	}
}

func TestNamesMatchesSchemes(t *testing.T) {
	names := Names()
	if len(names) != len(schemes) {
		t.Fatalf("Names() returned %d names, want %d", len(names), len(schemes))
	}
	for _, name := range names {
		if _, ok := schemes[name]; !ok {
			t.Fatalf("Names() lists %q, which Get cannot resolve", name)
		}
	}
}

func TestEverySchemeBindsEveryRole(t *testing.T) {
	for name, s := range schemes {
		roles := map[string]string{
			"Time":               s.Time,
			"Level":              s.Level,
			"File":               s.File,
			"Origin":             s.Origin,
			"Message":            s.Message,
			"VerboseKey":         s.VerboseKey,
			"VerboseValue":       s.VerboseValue,
			"VerbosePunctuation": s.VerbosePunctuation,
		}
		for role, color := range roles {
			if !strings.HasPrefix(color, "#") || len(color) != 7 {
				t.Fatalf("scheme %q role %s = %q, want a #rrggbb color", name, role, color)
			}
		}
		if s.Name != name {
			t.Fatalf("scheme registered as %q has Name %q", name, s.Name)
		}
	}
}
