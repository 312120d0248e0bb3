package stream

import (
	"bufio"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"syscall"

	"github.com/logster-sh/logster/internal/config"
	"github.com/logster-sh/logster/internal/format"
)

// Options configure one formatting run.
type Options struct {
	In      io.Reader
	Out     io.Writer
	Config  config.Resolved
	Palette format.Palette
}

// Bare level tokens highlighted in passthrough lines.
var (
	warningPattern = regexp.MustCompile(`\bWARNING\b`)
	errorPattern   = regexp.MustCompile(`\bERROR\b`)
)

// Run copies lines from In to Out until end of input, rewriting JSON
// object lines and passing everything else through unchanged. Lines are
// processed strictly in order, one at a time, and the output is flushed
// after every input line so the tool tails cleanly. A closed output pipe
// or a cancelled context ends the run quietly.
func Run(ctx context.Context, opts Options) error {
	reader := bufio.NewReader(opts.In)
	writer := bufio.NewWriter(opts.Out)

	for {
		if ctx.Err() != nil {
			return nil
		}
		raw, readErr := reader.ReadString('\n')
		if raw != "" {
			if err := writeLine(writer, raw, opts); err != nil {
				if errors.Is(err, syscall.EPIPE) {
					return nil
				}
				return err
			}
			if err := writer.Flush(); err != nil {
				if errors.Is(err, syscall.EPIPE) {
					return nil
				}
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}

func writeLine(w *bufio.Writer, raw string, opts Options) error {
	line, terminator := splitTerminator(raw)

	// Whole-line JSON wins over compose-prefix splitting, so an object
	// whose text contains " | " still renders.
	prefix := ""
	obj, ok := format.Classify(line)
	if !ok {
		if p, payload := splitComposePrefix(line); p != "" {
			prefix = p
			obj, ok = format.Classify(payload)
		}
	}
	if !ok {
		// Opaque: byte-for-byte passthrough, modulo level highlighting
		// which only ever adds escape sequences.
		_, err := w.WriteString(highlightLevels(line, opts.Palette) + terminator)
		return err
	}

	rec := format.Extract(obj, opts.Config.Fields)
	outs := format.Render(rec, opts.Config, opts.Palette)
	for i, out := range outs {
		// An unterminated final input line still needs its verbose lines
		// separated; only the last output line goes unterminated then.
		end := terminator
		if end == "" && i < len(outs)-1 {
			end = "\n"
		}
		if _, err := w.WriteString(prefix + out + end); err != nil {
			return err
		}
	}
	return nil
}

// splitTerminator separates a line from its terminator so rendered
// output can replicate the input's newline convention exactly. The final
// line of input may have no terminator at all.
func splitTerminator(raw string) (string, string) {
	switch {
	case strings.HasSuffix(raw, "\r\n"):
		return raw[:len(raw)-2], "\r\n"
	case strings.HasSuffix(raw, "\n"):
		return raw[:len(raw)-1], "\n"
	}
	return raw, ""
}

// splitComposePrefix peels a `docker compose logs` style "service | "
// prefix off the payload. The prefix is re-applied to every output line
// the payload produces.
func splitComposePrefix(line string) (string, string) {
	idx := strings.Index(line, " | ")
	if idx <= 0 {
		return "", line
	}
	if strings.TrimSpace(line[:idx]) == "" {
		return "", line
	}
	return line[:idx+3], line[idx+3:]
}

func highlightLevels(line string, pal format.Palette) string {
	line = warningPattern.ReplaceAllStringFunc(line, func(m string) string {
		return pal.Warn.Render(m)
	})
	return errorPattern.ReplaceAllStringFunc(line, func(m string) string {
		return pal.Error.Render(m)
	})
}
