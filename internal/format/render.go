package format

import (
	"strconv"
	"strings"

	"github.com/logster-sh/logster/internal/config"
)

// Render formats one extracted record. Compact style yields one line;
// verbose always yields exactly two, the second carrying the remainder
// as a bare JSON object (possibly {}). Lines come back unterminated; the
// caller replicates the input line's terminator.
func Render(rec Record, cfg config.Resolved, pal Palette) []string {
	main := mainLine(rec, pal)
	if cfg.OutputStyle == config.StyleCompact {
		return []string{main}
	}
	return []string{main, renderMetadata(rec.Remainder, pal)}
}

// mainLine assembles the bracketed segments in their fixed order. Absent
// fields vanish with their brackets; no empty brackets are ever emitted.
func mainLine(rec Record, pal Palette) string {
	var b strings.Builder
	if rec.Time.Set {
		b.WriteString(pal.Time.Render("[" + rec.Time.Text + "]"))
	}
	if rec.Level.Set {
		b.WriteString(pal.Level.Render("[" + rec.Level.Text + "]"))
	}
	if rec.Path.Set {
		path := rec.Path.Text
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		b.WriteString(pal.File.Render("[" + path + "]"))
	}
	if rec.Query.Set {
		b.WriteString(pal.File.Render("[q=" + strconv.Quote(rec.Query.Text) + "]"))
	}
	if rec.TopK.Set {
		b.WriteString(pal.File.Render("[top_k=" + rec.TopK.Text + "]"))
	}
	if origin := originText(rec); origin != "" {
		b.WriteString(pal.Origin.Render("[" + origin + "]"))
	}

	line := b.String()
	if rec.Message.Set && rec.Message.Text != "" {
		message := pal.Message.Render(rec.Message.Text)
		if line == "" {
			line = message
		} else {
			line += " " + message
		}
	}
	for _, m := range rec.Promoted {
		pair := pal.VerboseKey.Render(m.Key) +
			pal.VerbosePunctuation.Render("=") +
			pal.VerboseValue.Render(stringify(m.Value))
		if line == "" {
			line = pair
		} else {
			line += " " + pair
		}
	}
	return line
}

// originText prefers function over file as the origin, pairing it with
// the line number when both are present and collapsing to whichever half
// exists otherwise.
func originText(rec Record) string {
	base := ""
	switch {
	case rec.Function.Set:
		base = rec.Function.Text
	case rec.File.Set:
		base = rec.File.Text
	}
	switch {
	case base != "" && rec.Line.Set:
		return base + ":" + rec.Line.Text
	case base != "":
		return base
	case rec.Line.Set:
		return rec.Line.Text
	}
	return ""
}
