package dump

import (
	"os"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of parameters for console output.
type Config struct {
	LineWidth int            // target line length in fixed width positions
	Color     bool           // colorize slots
	Context   *uax11.Context // width context for payload text, may be nil
}

// DefaultConfig is used whenever a renderer is called with a nil config.
var DefaultConfig = Config{
	LineWidth: 65,
}

// ConfigFromTerminal creates a Config from the properties of stdout. If stdout
// is a terminal, colors are switched on and the line width is derived from
// the terminal's width.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err == nil {
			switch {
			case w > 65:
				config.LineWidth = w - 10
			case w > 30:
				config.LineWidth = w - 5
			case w > 10:
				config.LineWidth = w
			default:
				config.LineWidth = 10
			}
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().Infof("dump: line length %d en, color=%v", config.LineWidth, config.Color)
	return config
}

func (c *Config) context() *uax11.Context {
	if c.Context == nil {
		return uax11.LatinContext
	}
	return c.Context
}

var graphemeSetup sync.Once

// width returns the number of fixed width positions s occupies on a console.
func width(s string, ctx *uax11.Context) int {
	graphemeSetup.Do(func() { grapheme.SetupGraphemeClasses() })
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}
