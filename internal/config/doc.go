// Package config handles loading and resolving logster configuration.
//
// # Overview
//
// Configuration comes from an optional TOML file plus command-line flags.
// Load finds and parses the file; Resolve merges everything into one
// immutable Resolved value that the formatting packages share read-only
// for the rest of the run. There is no global state: resolution is a pure
// function from its sources and runs exactly once per invocation.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. An explicit path (the --config flag), which must exist
//  2. The LOGSTER_CONFIG environment variable, which must exist when set
//  3. ./logster.toml in the working directory
//  4. ~/.config/logster/config.toml
//  5. Built-in defaults (no file at all)
//
// # Merge Order
//
// Resolve layers its sources with later entries winning:
//
//  1. Built-in defaults
//  2. The selected color scheme's role colors (theme / color_scheme key,
//     or the --theme flag)
//  3. Per-role color overrides from the file (time_color, level_color,
//     file_color, origin_color, message_color, and the three
//     verbose_metadata_*_color keys)
//  4. no_color, output_style and the [fields] table from the file
//  5. Command-line flags (--no-color, --verbose, --theme)
//
// # Validation
//
// Resolution fails, before any log line is processed, on:
//
//   - an unknown theme / color_scheme name (the error lists valid names)
//   - theme and color_scheme both set to different values
//   - an output_style other than "compact" or "verbose"
//   - a color override that is neither a named token nor #rrggbb
//
// # TOML Format
//
// Example logster.toml:
//
//	no_color     = false
//	output_style = "compact"
//	theme        = "dracula"
//
//	message_color = "bright_white"
//
//	[fields]
//	timestamp        = "ts"
//	message_fields   = ["event", "message"]
//	main_line_fields = ["request_id"]
//
// Every key is optional. Color values are the sixteen named ANSI tokens
// (black..white, bright_black..bright_white) or hex literals.
package config
