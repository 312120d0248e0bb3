package theme

import (
	"fmt"
	"strings"
)

// Scheme maps every rendering role to a color. Values are hex literals
// understood by lipgloss; the config layer also accepts named ANSI tokens
// for per-role overrides, but presets are defined against the source
// palettes directly.
type Scheme struct {
	Name string

	// Main line roles
	Time    string // [HH:MM:SS]
	Level   string // [LEVEL]
	File    string // [/path], [q="..."], [top_k=N]
	Origin  string // [function:line]
	Message string

	// Verbose metadata line roles
	VerboseKey         string
	VerboseValue       string
	VerbosePunctuation string
}

// Scheme definitions

var schemes = map[string]Scheme{
	"dracula":             draculaScheme(),
	"nord":                nordScheme(),
	"gruvbox":             gruvboxScheme(),
	"solarized-dark":      solarizedDarkScheme(),
	"solarized-light":     solarizedLightScheme(),
	"monokai":             monokaiScheme(),
	"one-dark":            oneDarkScheme(),
	"tokyo-night":         tokyoNightScheme(),
	"catppuccin-mocha":    catppuccinMochaScheme(),
	"github-dark":         githubDarkScheme(),
	"monokai-github-meta": monokaiGithubMetaScheme(),
}

var schemeOrder = []string{
	"catppuccin-mocha",
	"dracula",
	"github-dark",
	"gruvbox",
	"monokai",
	"monokai-github-meta",
	"nord",
	"one-dark",
	"solarized-dark",
	"solarized-light",
	"tokyo-night",
}

// Get returns a scheme by name. Unknown names are an error so that a typo
// in a config file surfaces before any line is processed.
func Get(name string) (Scheme, error) {
	if s, ok := schemes[name]; ok {
		return s, nil
	}
	return Scheme{}, fmt.Errorf("unknown color scheme %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the available scheme names.
func Names() []string {
	names := make([]string, len(schemeOrder))
	copy(names, schemeOrder)
	return names
}

func draculaScheme() Scheme {
	// Dracula palette: https://draculatheme.com/contribute
	return Scheme{
		Name:    "dracula",
		Time:    "#6272a4", // comment
		Level:   "#bd93f9", // purple
		File:    "#8be9fd", // cyan
		Origin:  "#50fa7b", // green
		Message: "#f8f8f2", // foreground

		VerboseKey:         "#ff79c6", // pink
		VerboseValue:       "#f1fa8c", // yellow
		VerbosePunctuation: "#6272a4", // comment
	}
}

func nordScheme() Scheme {
	// Nord palette: https://www.nordtheme.com/docs/colors-and-palettes
	return Scheme{
		Name:    "nord",
		Time:    "#4c566a", // nord3
		Level:   "#81a1c1", // nord9
		File:    "#88c0d0", // nord8
		Origin:  "#a3be8c", // nord14
		Message: "#eceff4", // nord6

		VerboseKey:         "#8fbcbb", // nord7
		VerboseValue:       "#d8dee9", // nord4
		VerbosePunctuation: "#4c566a", // nord3
	}
}

func gruvboxScheme() Scheme {
	// Gruvbox dark palette: https://github.com/morhetz/gruvbox
	return Scheme{
		Name:    "gruvbox",
		Time:    "#928374", // gray
		Level:   "#fabd2f", // yellow
		File:    "#83a598", // blue
		Origin:  "#b8bb26", // green
		Message: "#ebdbb2", // fg

		VerboseKey:         "#8ec07c", // aqua
		VerboseValue:       "#d5c4a1", // fg2
		VerbosePunctuation: "#928374", // gray
	}
}

func solarizedDarkScheme() Scheme {
	// Solarized palette: https://ethanschoonover.com/solarized
	return Scheme{
		Name:    "solarized-dark",
		Time:    "#586e75", // base01
		Level:   "#b58900", // yellow
		File:    "#268bd2", // blue
		Origin:  "#859900", // green
		Message: "#93a1a1", // base1

		VerboseKey:         "#2aa198", // cyan
		VerboseValue:       "#839496", // base0
		VerbosePunctuation: "#586e75", // base01
	}
}

func solarizedLightScheme() Scheme {
	// Solarized light: shared accents, inverted monotones.
	return Scheme{
		Name:    "solarized-light",
		Time:    "#93a1a1", // base1
		Level:   "#b58900", // yellow
		File:    "#268bd2", // blue
		Origin:  "#859900", // green
		Message: "#586e75", // base01

		VerboseKey:         "#2aa198", // cyan
		VerboseValue:       "#657b83", // base00
		VerbosePunctuation: "#93a1a1", // base1
	}
}

func monokaiScheme() Scheme {
	// Monokai palette as popularized by Sublime Text.
	return Scheme{
		Name:    "monokai",
		Time:    "#75715e", // comment
		Level:   "#ae81ff", // purple
		File:    "#66d9ef", // blue
		Origin:  "#a6e22e", // green
		Message: "#f8f8f2", // foreground

		VerboseKey:         "#f92672", // pink
		VerboseValue:       "#e6db74", // yellow
		VerbosePunctuation: "#75715e", // comment
	}
}

func oneDarkScheme() Scheme {
	// Atom One Dark palette: https://github.com/atom/one-dark-syntax
	return Scheme{
		Name:    "one-dark",
		Time:    "#5c6370", // comment
		Level:   "#c678dd", // magenta
		File:    "#61afef", // blue
		Origin:  "#98c379", // green
		Message: "#abb2bf", // fg

		VerboseKey:         "#56b6c2", // cyan
		VerboseValue:       "#e5c07b", // yellow
		VerbosePunctuation: "#5c6370", // comment
	}
}

func tokyoNightScheme() Scheme {
	// Tokyo Night palette: https://github.com/folke/tokyonight.nvim
	return Scheme{
		Name:    "tokyo-night",
		Time:    "#565f89", // comment
		Level:   "#bb9af7", // magenta
		File:    "#7aa2f7", // blue
		Origin:  "#9ece6a", // green
		Message: "#c0caf5", // fg

		VerboseKey:         "#7dcfff", // cyan
		VerboseValue:       "#e0af68", // yellow
		VerbosePunctuation: "#565f89", // comment
	}
}

func catppuccinMochaScheme() Scheme {
	// Catppuccin Mocha palette: https://catppuccin.com/palette
	return Scheme{
		Name:    "catppuccin-mocha",
		Time:    "#6c7086", // overlay0
		Level:   "#cba6f7", // mauve
		File:    "#89b4fa", // blue
		Origin:  "#a6e3a1", // green
		Message: "#cdd6f4", // text

		VerboseKey:         "#94e2d5", // teal
		VerboseValue:       "#f9e2af", // yellow
		VerbosePunctuation: "#6c7086", // overlay0
	}
}

func githubDarkScheme() Scheme {
	// GitHub dark palette: https://primer.style/primitives/colors
	return Scheme{
		Name:    "github-dark",
		Time:    "#8b949e", // fg.muted
		Level:   "#bc8cff", // purple
		File:    "#58a6ff", // blue
		Origin:  "#3fb950", // green
		Message: "#c9d1d9", // fg.default

		VerboseKey:         "#79c0ff", // blue (light)
		VerboseValue:       "#a5d6ff", // blue (lighter)
		VerbosePunctuation: "#8b949e", // fg.muted
	}
}

func monokaiGithubMetaScheme() Scheme {
	// Monokai main line with GitHub-dark metadata roles, for terminals
	// where monokai's pink/yellow metadata reads too loud.
	return Scheme{
		Name:    "monokai-github-meta",
		Time:    "#75715e", // monokai comment
		Level:   "#ae81ff", // monokai purple
		File:    "#66d9ef", // monokai blue
		Origin:  "#a6e22e", // monokai green
		Message: "#f8f8f2", // monokai foreground

		VerboseKey:         "#79c0ff", // github blue (light)
		VerboseValue:       "#a5d6ff", // github blue (lighter)
		VerbosePunctuation: "#8b949e", // github fg.muted
	}
}
