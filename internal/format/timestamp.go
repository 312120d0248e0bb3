package format

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockPattern = regexp.MustCompile(`\d{2}:\d{2}:\d{2}`)

const millisecondThreshold = 1e12

// normalizeTime renders a timestamp value as HH:MM:SS. Numeric values are
// epochs, seconds or milliseconds by magnitude, rendered in UTC. String
// values keep the wall clock they encode: parsing preserves the offset
// and no timezone conversion happens. A value that cannot be read as a
// time at all comes back unchanged rather than failing the record.
func normalizeTime(raw json.RawMessage) string {
	text := stringify(raw)

	if epoch, ok := parseEpoch(text); ok {
		return epoch.Format("15:04:05")
	}

	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Format("15:04:05")
		}
	}

	// Near-ISO strings: pick the clock out of the part after the date.
	source := text
	if _, after, ok := strings.Cut(text, "T"); ok {
		source = after
	}
	if match := clockPattern.FindString(source); match != "" {
		return match
	}
	return text
}

func parseEpoch(text string) (time.Time, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return time.Time{}, false
	}
	if f >= millisecondThreshold || f <= -millisecondThreshold {
		f /= 1000
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC(), true
}
