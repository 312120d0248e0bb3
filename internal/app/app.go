package app

import (
	"context"
	"io"

	"github.com/logster-sh/logster/internal/config"
	"github.com/logster-sh/logster/internal/format"
	"github.com/logster-sh/logster/internal/stream"
)

// Options configure a logster run.
type Options struct {
	ConfigPath string
	NoColor    bool
	Verbose    bool
	Theme      string

	In  io.Reader
	Out io.Writer
}

// Run resolves configuration once and then formats In to Out until end
// of input. Configuration errors surface here, before any line is read.
func Run(ctx context.Context, opts Options) error {
	file, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(file, config.Overrides{
		NoColor: opts.NoColor,
		Verbose: opts.Verbose,
		Theme:   opts.Theme,
	})
	if err != nil {
		return err
	}

	return stream.Run(ctx, stream.Options{
		In:      opts.In,
		Out:     opts.Out,
		Config:  cfg,
		Palette: format.NewPalette(cfg),
	})
}
