// Package format implements the log line formatting engine.
//
// # Pipeline
//
// Each input line passes through three stages:
//
//  1. Classify: is the line a JSON object? Anything else (arrays,
//     scalars, malformed JSON) is opaque and passes through unchanged.
//  2. Extract: pull the mapped semantic fields (timestamp, level, path,
//     query, top_k, file, function, line, message) out of the object,
//     normalize the timestamp to HH:MM:SS, and split the leftover keys
//     into promoted main-line fields and the remainder.
//  3. Render: assemble the compact main line, and in verbose style a
//     second line carrying the remainder as a bare JSON object.
//
// The compact grammar, segments omitted when their field is absent:
//
//	[HH:MM:SS][LEVEL][/path][q="query"][top_k=N][function:line] message key=value...
//
// # Ordering guarantees
//
// JSON object key order survives decoding (the decoder walks the token
// stream instead of unmarshalling into a map), so the verbose metadata
// line and promoted main-line fields appear in source order, and every
// source key lands in exactly one place.
//
// # Coloring
//
// A Palette binds each role to a lipgloss style on a renderer with a
// forced color profile. no_color swaps the profile for Ascii, making the
// plain output equal to the colored output stripped of escape sequences.
//
// Nothing here fails at runtime: per-field anomalies degrade to compact
// JSON text, and the record is always rendered completely.
package format
