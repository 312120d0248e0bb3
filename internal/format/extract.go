package format

import (
	"strings"

	"github.com/logster-sh/logster/internal/config"
)

// Field is an optional string: Set distinguishes an empty value from an
// absent one, which matters for empty messages.
type Field struct {
	Text string
	Set  bool
}

func field(text string) Field {
	return Field{Text: text, Set: true}
}

// Record is the transient extraction of one JSON object. It is built
// fresh per input line, rendered, and discarded; nothing carries over
// between lines.
type Record struct {
	Time     Field
	Level    Field
	Path     Field
	Query    Field
	TopK     Field
	File     Field
	Function Field
	Line     Field
	Message  Field

	// Promoted holds main_line_fields keys, in source order; Remainder
	// holds everything else not consumed above, also in source order.
	Promoted  []Member
	Remainder []Member
}

// Extract pulls the mapped semantic fields out of obj. Extraction never
// fails: a missing key leaves its field unset, a JSON null consumes the
// key without rendering it, and non-string values take their compact
// JSON form.
func Extract(obj Object, fields config.FieldMap) Record {
	var rec Record
	consumed := make(map[string]bool, len(obj.Members))

	take := func(key string) (Field, bool) {
		if key == "" {
			return Field{}, false
		}
		raw, ok := obj.get(key)
		if !ok {
			return Field{}, false
		}
		consumed[key] = true
		if isNull(raw) {
			return Field{}, false
		}
		return field(stringify(raw)), true
	}

	if raw, ok := obj.get(fields.Timestamp); ok && fields.Timestamp != "" {
		consumed[fields.Timestamp] = true
		if !isNull(raw) {
			rec.Time = field(normalizeTime(raw))
		}
	}
	if f, ok := take(fields.Level); ok {
		rec.Level = field(strings.ToUpper(f.Text))
	}
	if f, ok := take(fields.Path); ok {
		rec.Path = f
	}
	if f, ok := take(fields.Query); ok {
		rec.Query = f
	}
	if f, ok := take(fields.TopK); ok {
		rec.TopK = f
	}
	if f, ok := take(fields.File); ok {
		rec.File = f
	}
	if f, ok := take(fields.Function); ok {
		rec.Function = f
	}
	if f, ok := take(fields.Line); ok {
		rec.Line = f
	}

	// First present, non-null candidate wins, even when its value is an
	// empty string. Losing candidates stay in the remainder.
	for _, key := range fields.MessageFields {
		raw, ok := obj.get(key)
		if !ok || isNull(raw) {
			continue
		}
		consumed[key] = true
		rec.Message = field(stringify(raw))
		break
	}

	promoted := make(map[string]bool, len(fields.MainLineFields))
	for _, key := range fields.MainLineFields {
		promoted[key] = true
	}

	for _, m := range obj.Members {
		if consumed[m.Key] {
			continue
		}
		consumed[m.Key] = true
		if promoted[m.Key] {
			rec.Promoted = append(rec.Promoted, m)
			continue
		}
		rec.Remainder = append(rec.Remainder, m)
	}

	return rec
}
