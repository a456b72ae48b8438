package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

type options struct {
	quiet   bool
	noColor bool
	verbose bool
	exclude []string

	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
}

// setup finalizes option-dependent state once flags are parsed.
func (o *options) setup() {
	if o.noColor {
		color.NoColor = true
	}

	o.log = zerolog.New(zerolog.ConsoleWriter{Out: o.stderr}).
		With().Timestamp().Logger().
		Level(zerolog.Disabled)

	if o.verbose {
		o.log = o.log.Level(zerolog.DebugLevel)
	}
}

var (
	fileColor    = color.New(color.FgBlue, color.Bold)
	updatedColor = color.New(color.FgGreen)
	staleColor   = color.New(color.FgRed)
	noneColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.Faint)
	bulletColor  = color.New(color.FgCyan)
)
