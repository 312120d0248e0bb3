package format

import (
	"bytes"
	"encoding/json"
	"strings"
)

// renderMetadata writes members as a compact JSON object with the verbose
// metadata roles applied to keys, values, and punctuation independently.
// With no members the result is {}, so the verbose second line is always
// valid JSON.
func renderMetadata(members []Member, pal Palette) string {
	var b strings.Builder
	writeObject(&b, members, pal)
	return b.String()
}

func writeObject(b *strings.Builder, members []Member, pal Palette) {
	punct := func(s string) {
		b.WriteString(pal.VerbosePunctuation.Render(s))
	}
	punct("{")
	for i, m := range members {
		if i > 0 {
			punct(",")
		}
		key, _ := json.Marshal(m.Key)
		b.WriteString(pal.VerboseKey.Render(string(key)))
		punct(":")
		writeValue(b, m.Value, pal)
	}
	punct("}")
}

func writeValue(b *strings.Builder, raw json.RawMessage, pal Palette) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return
	}
	switch trimmed[0] {
	case '{':
		members, err := parseMembers(trimmed)
		if err != nil {
			b.WriteString(pal.VerboseValue.Render(compactJSON(trimmed)))
			return
		}
		writeObject(b, members, pal)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			b.WriteString(pal.VerboseValue.Render(compactJSON(trimmed)))
			return
		}
		punct := func(s string) {
			b.WriteString(pal.VerbosePunctuation.Render(s))
		}
		punct("[")
		for i, item := range items {
			if i > 0 {
				punct(",")
			}
			writeValue(b, item, pal)
		}
		punct("]")
	default:
		b.WriteString(pal.VerboseValue.Render(compactJSON(trimmed)))
	}
}
