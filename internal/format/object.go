package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Member is one key/value pair of a JSON object. The value stays raw so
// the verbose metadata line can reproduce it without re-encoding losses.
type Member struct {
	Key   string
	Value json.RawMessage
}

// Object is a decoded JSON object with source key order preserved.
// encoding/json maps lose ordering, so decoding walks the token stream.
type Object struct {
	Members []Member
}

func (o Object) get(key string) (json.RawMessage, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Classify reports whether line is a renderable JSON object. Arrays,
// scalars, malformed JSON, and trailing garbage are all opaque; opaque
// lines must reach the output byte-for-byte, so classification never
// propagates a parse error.
func Classify(line string) (Object, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Object{}, false
	}
	dec := json.NewDecoder(strings.NewReader(trimmed))
	members, err := decodeMembers(dec)
	if err != nil {
		return Object{}, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return Object{}, false
	}
	return Object{Members: members}, true
}

// decodeMembers consumes one JSON object from dec, keeping key order.
func decodeMembers(dec *json.Decoder) ([]Member, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}

	var members []Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		members = append(members, Member{Key: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

func parseMembers(raw json.RawMessage) ([]Member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	return decodeMembers(dec)
}

// stringify renders a raw JSON value as display text: strings decode to
// their contents, everything else keeps its compact JSON form.
func stringify(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return compactJSON(raw)
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return buf.String()
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
