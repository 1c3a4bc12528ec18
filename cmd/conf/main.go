package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/drape-io/conf"
	"github.com/drape-io/conf/internal/output"
	"github.com/drape-io/conf/internal/schema"
	"github.com/spf13/cobra"
)

var (
	schemaFile   string
	quiet        bool
	outputFormat string
	convertTo    string
	version      = "dev" // Will be set by build
)

var rootCmd = &cobra.Command{
	Use:   "conf <file>",
	Short: "Check key/value configuration files",
	Long: `conf parses key/value configuration files, reports every syntax error in
one pass, and optionally validates the result against a schema of defaults.

Examples:
  conf app.conf                     # Parse and report errors
  conf app.conf --schema app.toml   # Also validate against a schema
  conf app.conf --output=json       # Output in JSON format`,
	RunE:              runCheck,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	Args:              cobra.ExactArgs(1),
}

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Generate a sample configuration file",
	RunE:  runInit,
	Args:  cobra.MaximumNArgs(1),
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Rewrite a configuration file in canonical form",
	RunE:  runFmt,
	Args:  cobra.ExactArgs(1),
}

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a configuration file to JSON or TOML",
	RunE:  runConvert,
	Args:  cobra.ExactArgs(1),
}

func init() {
	rootCmd.Flags().StringVar(&schemaFile, "schema", "", "TOML schema file with default values")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "only show errors and warnings")
	rootCmd.Flags().StringVar(
		&outputFormat,
		"output",
		"pretty",
		"output format (pretty|quiet|json)",
	)
	convertCmd.Flags().StringVar(&convertTo, "to", "json", "target format (json|toml)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.Version = version
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, parseErrs := conf.ParseFile(path)

	var warnings []conf.Warning
	if schemaFile != "" {
		defaults, err := schema.Load(schemaFile)
		if err != nil {
			return fmt.Errorf("failed to load schema: %w", err)
		}
		data, warnings = conf.Validate(data, defaults)
	}

	report := &output.Report{
		Path:     path,
		Data:     data,
		Errors:   parseErrs,
		Warnings: warnings,
	}

	// Determine output format
	outFormat := output.FormatPretty
	if quiet {
		outFormat = output.FormatQuiet
	} else {
		switch outputFormat {
		case "json":
			outFormat = output.FormatJSON
		case "quiet":
			outFormat = output.FormatQuiet
		case "pretty":
			outFormat = output.FormatPretty
		}
	}

	output.Print(report, outFormat)

	// Exit with error code if the parse failed
	if report.Failed() {
		os.Exit(1)
	}

	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "app.conf"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	sample := `# conf configuration file
# One "key = value" statement per line.

logfile = "error.log"
width   = 1024
scale   = 1.5
debug   = false
levels  = [1, 2, 3]
`

	err := os.WriteFile(path, []byte(sample), 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, parseErrs := conf.ParseFile(path)
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return errors.New("cannot format a file with syntax errors")
	}

	if err := conf.Write(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Formatted %s\n", path)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, parseErrs := conf.ParseFile(path)
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return errors.New("cannot convert a file with syntax errors")
	}

	values := make(map[string]any, len(data))
	for _, k := range data.Keys() {
		values[k] = data[k].Interface()
	}

	switch convertTo {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		return encoder.Encode(values)
	case "toml":
		return toml.NewEncoder(os.Stdout).Encode(values)
	default:
		return fmt.Errorf("unknown target format: %s", convertTo)
	}
}
