// Package outputters selects the report formatter for the configured format.
package outputters

import (
	"fmt"
	"time"

	"github.com/exohab/exohab/internal/config"
	"github.com/exohab/exohab/internal/output"
)

// Outputter handles output formatting
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{
		config: config,
	}
}

// Format formats the report using the configured format
func (o *Outputter) Format(report *output.Report, format string) error {
	if report.StartTime.IsZero() {
		report.StartTime = time.Now()
	}

	report.CatalogRoot = o.config.Root

	switch format {
	case "console":
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose)
		return formatter.Format(report)
	case "json":
		formatter := output.NewJSONFormatter(true, o.config.Output)
		return formatter.Format(report)
	case "markdown":
		formatter := output.NewMarkdownFormatter(o.config.Verbose, o.config.Output)
		return formatter.Format(report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
