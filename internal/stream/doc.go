// Package stream runs the stdin-to-stdout formatting loop.
//
// Lines are read one at a time and processed strictly in arrival order:
// a line's output is fully written and flushed before the next line is
// read, so logster composes with `tail -f` and `docker compose logs`
// producers. JSON-object lines are handed to the format package; every
// other line passes through unchanged (bare WARNING and ERROR tokens get
// highlighted when color is on, which only adds escape sequences).
//
// The loop replicates each input line's terminator (\n, \r\n, or none on
// the final line) on its output lines, and peels `service | ` compose
// prefixes off before classification, re-applying them afterwards.
// A closed downstream pipe or an interrupt ends the run without error.
package stream
