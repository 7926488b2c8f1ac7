package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/exohab/exohab/internal/scoring"
)

// ConsoleFormatter formats a report for console display
type ConsoleFormatter struct {
	quiet     bool
	verbose   bool
	colorize  bool
	startTime time.Time
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:     quiet,
		verbose:   verbose,
		colorize:  true,
		startTime: time.Now(),
	}
}

// Format formats the report for console output
func (f *ConsoleFormatter) Format(report *Report) error {
	if f.quiet {
		// One line per planet in quiet mode
		for _, result := range report.Results {
			a := result.Assessment
			fmt.Printf("%.3f %s\n", a.TotalScore, a.PlanetName)
		}
		return nil
	}

	for _, result := range report.Results {
		f.printAssessment(result)
	}

	f.printSummary(report)

	return nil
}

// printAssessment prints one planet's assessment
func (f *ConsoleFormatter) printAssessment(result Result) {
	a := result.Assessment

	header := fmt.Sprintf("%s (%s)", a.PlanetName, a.HostStarName)
	score := fmt.Sprintf("%.3f  %s", a.TotalScore, a.Category)

	fmt.Printf("%s\n", f.headerStyle().Render(header))
	fmt.Printf("  %s\n", f.scoreStyle(a.TotalScore).Render(score))
	fmt.Printf("  data completeness %.0f%%\n", a.DataCompleteness*100)

	if f.verbose {
		for _, factor := range a.Factors {
			f.printFactor(factor)
		}
	}
	fmt.Println()
}

// printFactor prints a single factor line with its explanation
func (f *ConsoleFormatter) printFactor(factor scoring.FactorResult) {
	line := fmt.Sprintf("    %-28s %.2f", factor.ID, factor.Score)
	fmt.Printf("%s", f.scoreStyle(factor.Score).Render(line))
	if factor.Confidence == scoring.ConfidenceVeryLow {
		fmt.Printf("  (no data)")
	}
	fmt.Println()
	fmt.Printf("      %s\n", factor.Explanation)
}

// printSummary prints the run summary line
func (f *ConsoleFormatter) printSummary(report *Report) {
	duration := time.Since(f.startTime)
	fmt.Printf("%d planets in %d systems (%v)\n",
		len(report.Results), report.Systems(), duration.Round(time.Millisecond))

	if best := report.Best(); best != nil && len(report.Results) > 1 {
		fmt.Printf("best: %s at %.3f\n", best.Assessment.PlanetName, best.Assessment.TotalScore)
	}
}

func (f *ConsoleFormatter) headerStyle() lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true)
}

// scoreStyle colors a score by its category band
func (f *ConsoleFormatter) scoreStyle(score float64) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	switch {
	case score >= 0.6:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	case score >= 0.4:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	}
}
