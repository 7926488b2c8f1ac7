package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/exohab/exohab/internal/scoring"
)

// JSONFormatter formats a report as JSON
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// Format formats the report as JSON
func (f *JSONFormatter) Format(report *Report) error {
	jsonReport := JSONReport{
		Header: JSONHeader{
			Tool:      "exohab",
			Version:   scoring.EngineVersion,
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			Systems:  report.Systems(),
			Planets:  len(report.Results),
			Duration: time.Since(report.StartTime).Round(time.Millisecond).String(),
		},
		Results: make([]JSONResult, len(report.Results)),
	}

	for i, result := range report.Results {
		jsonReport.Results[i] = JSONResult{
			File:       result.File,
			Assessment: result.Assessment,
		}
	}

	var jsonBytes []byte
	var err error

	if f.indent {
		jsonBytes, err = json.MarshalIndent(jsonReport, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(jsonReport)
	}

	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		err = os.WriteFile(f.outputFile, jsonBytes, 0644)
		if err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Println(string(jsonBytes))
	}

	return nil
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains run statistics
type JSONSummary struct {
	Systems  int    `json:"systems"`
	Planets  int    `json:"planets"`
	Duration string `json:"duration"`
}

// JSONResult pairs a record file with its planet assessment
type JSONResult struct {
	File       string              `json:"file"`
	Assessment *scoring.Assessment `json:"assessment"`
}
