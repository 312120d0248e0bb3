package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/logster-sh/logster/internal/app"
)

const version = "0.4.0"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to TOML config file (defaults to logster.toml discovery)")
	noColor := flag.Bool("no-color", false, "disable colors")
	verbose := flag.Bool("verbose", false, "use verbose output style (overrides config)")
	themeName := flag.String("theme", "", "color scheme name (overrides config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("logster " + version)
		return 0
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "logster"})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		NoColor:    *noColor,
		Verbose:    *verbose,
		Theme:      *themeName,
		In:         os.Stdin,
		Out:        os.Stdout,
	}
	if err := app.Run(ctx, opts); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}
