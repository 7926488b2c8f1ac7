package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/exohab/exohab/internal/scoring"
)

// MarkdownFormatter formats a report as Markdown
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format formats the report as Markdown
func (f *MarkdownFormatter) Format(report *Report) error {
	var builder strings.Builder

	builder.WriteString("# Habitability Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Catalog:** %s\n\n", report.CatalogRoot))
	builder.WriteString(fmt.Sprintf("**Engine:** %s\n\n", scoring.EngineVersion))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	// Summary table
	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Planet | Host Star | Score | Category | Completeness |\n")
	builder.WriteString("|--------|-----------|-------|----------|--------------|\n")
	for _, result := range report.Results {
		a := result.Assessment
		builder.WriteString(fmt.Sprintf("| %s | %s | %.3f | %s | %.0f%% |\n",
			a.PlanetName, a.HostStarName, a.TotalScore, a.Category, a.DataCompleteness*100))
	}
	builder.WriteString("\n")

	if f.verbose {
		builder.WriteString("## Detailed Results\n\n")
		for _, result := range report.Results {
			f.writeAssessment(&builder, result.Assessment)
		}
	}

	builder.WriteString(fmt.Sprintf("> %s\n", scoring.Disclaimer))

	content := builder.String()
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Print(content)
	}

	return nil
}

// writeAssessment writes one planet's factor table
func (f *MarkdownFormatter) writeAssessment(builder *strings.Builder, a *scoring.Assessment) {
	builder.WriteString(fmt.Sprintf("### %s\n\n", a.PlanetName))
	builder.WriteString(fmt.Sprintf("Score: **%.3f** (%s)\n\n", a.TotalScore, a.Category))

	builder.WriteString("| Factor | Score | Weight | Input | Confidence |\n")
	builder.WriteString("|--------|-------|--------|-------|------------|\n")
	for _, factor := range a.Factors {
		input := factor.InputValue
		if factor.InputUnit != "" {
			input = fmt.Sprintf("%s %s", factor.InputValue, factor.InputUnit)
		}
		builder.WriteString(fmt.Sprintf("| %s | %.2f | %.1f | %s | %s |\n",
			factor.Name, factor.Score, factor.Weight, input, factor.Confidence))
	}
	builder.WriteString("\n")

	for _, factor := range a.Factors {
		builder.WriteString(fmt.Sprintf("- **%s**: %s\n", factor.Name, factor.Explanation))
	}
	builder.WriteString("\n")
}
