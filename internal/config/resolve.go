package config

import (
	"fmt"
	"strings"

	"github.com/logster-sh/logster/internal/theme"
)

// Style selects the output shape: one line per record, or a main line
// followed by a metadata line.
type Style string

const (
	StyleCompact Style = "compact"
	StyleVerbose Style = "verbose"
)

// FieldMap binds semantic roles to JSON key names. MessageFields is an
// ordered candidate list; the first key present in a record supplies the
// message. MainLineFields names keys promoted onto the main line instead
// of the verbose metadata line.
type FieldMap struct {
	Timestamp string
	Level     string
	Path      string
	Query     string
	TopK      string
	File      string
	Function  string
	Line      string

	MessageFields  []string
	MainLineFields []string
}

// ColorMap holds one resolved color per rendering role. Values are either
// ANSI palette indices ("6") or hex literals ("#8be9fd"), both understood
// by lipgloss.
type ColorMap struct {
	Time               string
	Level              string
	File               string
	Origin             string
	Message            string
	VerboseKey         string
	VerboseValue       string
	VerbosePunctuation string
}

// Resolved is the immutable per-run configuration. It is built once by
// Resolve and shared read-only by every line's formatting call.
type Resolved struct {
	NoColor     bool
	OutputStyle Style
	Fields      FieldMap
	Colors      ColorMap
}

// Overrides carries command-line settings layered over the file config.
type Overrides struct {
	NoColor bool
	Verbose bool
	Theme   string
}

// ANSI palette indices for the named color tokens accepted in per-role
// overrides. Hex literals are passed through unchanged.
var colorTokens = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",

	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

func defaultColors() ColorMap {
	return ColorMap{
		Time:               colorTokens["cyan"],
		Level:              colorTokens["cyan"],
		File:               colorTokens["cyan"],
		Origin:             colorTokens["cyan"],
		Message:            colorTokens["bright_white"],
		VerboseKey:         colorTokens["cyan"],
		VerboseValue:       colorTokens["bright_white"],
		VerbosePunctuation: colorTokens["cyan"],
	}
}

func defaultFields() FieldMap {
	return FieldMap{
		Timestamp:     "timestamp",
		Level:         "level",
		Path:          "path",
		Query:         "query",
		TopK:          "top_k",
		File:          "file",
		Function:      "function",
		Line:          "line",
		MessageFields: []string{"event", "message", "msg"},
	}
}

// Resolve merges built-in defaults, the selected color scheme, file
// overrides, and command-line overrides into one Resolved value. Merge
// order, later wins: defaults, scheme colors, per-role file colors,
// no_color/output_style/[fields] from the file, command-line flags.
func Resolve(file File, cli Overrides) (Resolved, error) {
	out := Resolved{
		OutputStyle: StyleCompact,
		Fields:      defaultFields(),
		Colors:      defaultColors(),
	}

	schemeName, err := selectScheme(file, cli)
	if err != nil {
		return Resolved{}, err
	}
	if schemeName != "" {
		scheme, err := theme.Get(schemeName)
		if err != nil {
			return Resolved{}, err
		}
		out.Colors = ColorMap{
			Time:               scheme.Time,
			Level:              scheme.Level,
			File:               scheme.File,
			Origin:             scheme.Origin,
			Message:            scheme.Message,
			VerboseKey:         scheme.VerboseKey,
			VerboseValue:       scheme.VerboseValue,
			VerbosePunctuation: scheme.VerbosePunctuation,
		}
	}

	if err := applyColorOverrides(&out.Colors, file); err != nil {
		return Resolved{}, err
	}

	if file.NoColor != nil {
		out.NoColor = *file.NoColor
	}
	if file.OutputStyle != nil {
		switch Style(*file.OutputStyle) {
		case StyleCompact, StyleVerbose:
			out.OutputStyle = Style(*file.OutputStyle)
		default:
			return Resolved{}, fmt.Errorf("invalid output_style %q (valid: compact, verbose)", *file.OutputStyle)
		}
	}
	applyFieldOverrides(&out.Fields, file.Fields)

	if cli.NoColor {
		out.NoColor = true
	}
	if cli.Verbose {
		out.OutputStyle = StyleVerbose
	}

	return out, nil
}

// selectScheme picks the preset name, enforcing that the theme and
// color_scheme aliases never disagree. The command-line theme sits above
// the file keys, so it is not part of the conflict check.
func selectScheme(file File, cli Overrides) (string, error) {
	if file.Theme != nil && file.ColorScheme != nil && *file.Theme != *file.ColorScheme {
		return "", fmt.Errorf("theme %q conflicts with color_scheme %q; set only one", *file.Theme, *file.ColorScheme)
	}
	if cli.Theme != "" {
		return cli.Theme, nil
	}
	if file.Theme != nil {
		return *file.Theme, nil
	}
	if file.ColorScheme != nil {
		return *file.ColorScheme, nil
	}
	return "", nil
}

func applyColorOverrides(colors *ColorMap, file File) error {
	overrides := []struct {
		key   string
		value *string
		dst   *string
	}{
		{"time_color", file.TimeColor, &colors.Time},
		{"level_color", file.LevelColor, &colors.Level},
		{"file_color", file.FileColor, &colors.File},
		{"origin_color", file.OriginColor, &colors.Origin},
		{"message_color", file.MessageColor, &colors.Message},
		{"verbose_metadata_key_color", file.VerboseMetadataKeyColor, &colors.VerboseKey},
		{"verbose_metadata_value_color", file.VerboseMetadataValueColor, &colors.VerboseValue},
		{"verbose_metadata_punctuation_color", file.VerboseMetadataPunctuationColor, &colors.VerbosePunctuation},
	}
	for _, o := range overrides {
		if o.value == nil {
			continue
		}
		resolved, err := resolveColor(o.key, *o.value)
		if err != nil {
			return err
		}
		*o.dst = resolved
	}
	return nil
}

func resolveColor(key, token string) (string, error) {
	if v, ok := colorTokens[token]; ok {
		return v, nil
	}
	if isHexColor(token) {
		return token, nil
	}
	return "", fmt.Errorf("invalid color %q for %s (use a named token like cyan or bright_white, or #rrggbb)", token, key)
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range strings.ToLower(s[1:]) {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

func applyFieldOverrides(fields *FieldMap, ff *FileFields) {
	if ff == nil {
		return
	}
	bindings := []struct {
		value *string
		dst   *string
	}{
		{ff.Timestamp, &fields.Timestamp},
		{ff.Level, &fields.Level},
		{ff.Path, &fields.Path},
		{ff.Query, &fields.Query},
		{ff.TopK, &fields.TopK},
		{ff.File, &fields.File},
		{ff.Function, &fields.Function},
		{ff.Line, &fields.Line},
	}
	for _, b := range bindings {
		if b.value != nil {
			*b.dst = *b.value
		}
	}
	if ff.MessageFields != nil {
		fields.MessageFields = ff.MessageFields
	}
	if ff.MainLineFields != nil {
		fields.MainLineFields = ff.MainLineFields
	}
}
