// Package theme defines the built-in color schemes.
//
// A scheme binds every rendering role (time, level, file, origin, message,
// and the verbose metadata key/value/punctuation roles) to a palette color.
// Schemes form a closed set: selection happens by name through the config
// layer, and an unknown name is an error rather than a silent fallback, so
// a misspelled preset in logster.toml is caught before any log line is
// processed.
//
// Scheme colors are plain hex strings. They are turned into terminal
// styles by the format package's palette, which is also where no_color
// handling lives; this package has no rendering logic of its own.
package theme
