// Package clilog builds the terminal logger shared by the executables.
package clilog

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a slog.Logger backed by a charmbracelet/log handler that
// writes to w. verbose enables debug records, otherwise the level is info.
func New(w io.Writer, prefix string, verbose bool) *slog.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
	})
	l.SetLevel(log.InfoLevel)
	if verbose {
		l.SetLevel(log.DebugLevel)
		l.SetReportCaller(true)
	}
	return slog.New(l)
}
