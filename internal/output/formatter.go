package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/drape-io/conf"
	"github.com/fatih/color"
)

// Format represents the output format.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatQuiet  Format = "quiet"
	FormatJSON   Format = "json"
)

// Report is the outcome of checking a single configuration file.
type Report struct {
	Path     string
	Data     conf.Data
	Errors   []conf.ParseError
	Warnings []conf.Warning
}

// Failed reports whether the check should exit with error code 1.
// Warnings alone do not fail a check; validation data is always usable.
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

// Print prints the report in the specified format.
func Print(r *Report, format Format) {
	switch format {
	case FormatJSON:
		printJSON(r)
	case FormatQuiet:
		printQuiet(r)
	case FormatPretty:
		printPretty(r)
	default:
		printPretty(r)
	}
}

// printPretty prints the report in a pretty colored format.
func printPretty(r *Report) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	// Status line
	switch {
	case len(r.Errors) > 0:
		fmt.Printf("%s %s\n", red("❌"), r.Path)
	case len(r.Warnings) > 0:
		fmt.Printf("%s %s\n", yellow("⚠️ "), r.Path)
	default:
		fmt.Printf("%s %s\n", green("✅"), r.Path)
	}

	for _, e := range r.Errors {
		fmt.Printf("   %s %s\n", red("error:"), e.Error())
	}
	for _, w := range r.Warnings {
		fmt.Printf("   %s %s\n", yellow("warning:"), w.String())
	}

	// Print values only when the parse was clean
	if len(r.Errors) == 0 && len(r.Data) > 0 {
		fmt.Println()
		for _, k := range r.Data.Keys() {
			fmt.Printf("   %s = %s\n", cyan(k), r.Data[k].Format())
		}
	}

	fmt.Println()
	fmt.Printf(
		"Summary: %s errors, %s warnings\n",
		red(strconv.Itoa(len(r.Errors))),
		yellow(strconv.Itoa(len(r.Warnings))),
	)
}

// printQuiet prints only errors and warnings in a compact format.
func printQuiet(r *Report) {
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, e := range r.Errors {
		fmt.Printf("%s %s\n", red("error:"), e.Error())
	}
	for _, w := range r.Warnings {
		fmt.Printf("%s %s\n", yellow("warning:"), w.String())
	}
}

// printJSON prints the report in JSON format.
func printJSON(r *Report) {
	type JSONError struct {
		Kind    string `json:"kind"`
		Line    int    `json:"line,omitempty"`
		Col     int    `json:"col,omitempty"`
		Message string `json:"message"`
	}

	type JSONWarning struct {
		Kind    string `json:"kind"`
		Key     string `json:"key"`
		Message string `json:"message"`
	}

	type JSONOutput struct {
		Path     string         `json:"path"`
		Values   map[string]any `json:"values"`
		Errors   []JSONError    `json:"errors"`
		Warnings []JSONWarning  `json:"warnings"`
		Summary  struct {
			Errors   int  `json:"errors"`
			Warnings int  `json:"warnings"`
			OK       bool `json:"ok"`
		} `json:"summary"`
	}

	out := JSONOutput{
		Path:     r.Path,
		Values:   make(map[string]any, len(r.Data)),
		Errors:   make([]JSONError, 0, len(r.Errors)),
		Warnings: make([]JSONWarning, 0, len(r.Warnings)),
	}

	for _, k := range r.Data.Keys() {
		out.Values[k] = r.Data[k].Interface()
	}
	for _, e := range r.Errors {
		out.Errors = append(out.Errors, JSONError{
			Kind:    e.Kind.String(),
			Line:    e.Line,
			Col:     e.Col,
			Message: e.Error(),
		})
	}
	for _, w := range r.Warnings {
		out.Warnings = append(out.Warnings, JSONWarning{
			Kind:    w.Kind.String(),
			Key:     w.Key,
			Message: w.String(),
		})
	}

	out.Summary.Errors = len(r.Errors)
	out.Summary.Warnings = len(r.Warnings)
	out.Summary.OK = len(r.Errors) == 0

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}
