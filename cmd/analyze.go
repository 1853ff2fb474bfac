package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tablecheck-cli/internal/history"
	"github.com/KaramelBytes/tablecheck-cli/internal/quality"
	"github.com/KaramelBytes/tablecheck-cli/internal/table"
	"github.com/KaramelBytes/tablecheck-cli/internal/utils"
)

var (
	anaOutputPath string
	anaFormat     string
	anaDelimiter  string
	anaSheetName  string
	anaSheetIndex int
	anaStore      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a CSV/TSV/XLSX file and report its quality",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		delim, err := resolveDelimiter(anaDelimiter)
		if err != nil {
			return err
		}

		t, err := table.Load(path, delim, anaSheetName, anaSheetIndex)
		if err != nil {
			return err
		}
		rep, err := quality.Analyze(t, path)
		if err != nil {
			return err
		}

		format := anaFormat
		if format == "" && cfg != nil {
			format = cfg.Format
		}
		out, err := renderReport(rep, format)
		if err != nil {
			return err
		}

		if anaStore {
			if err := storeReport(rep); err != nil {
				return err
			}
		}

		if anaOutputPath != "" {
			if err := utils.SafeWriteFile(anaOutputPath, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", anaOutputPath)
			return nil
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the report")
	analyzeCmd.Flags().StringVarP(&anaFormat, "format", "f", "", "report format: markdown|json|yaml")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	analyzeCmd.Flags().IntVar(&anaSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	analyzeCmd.Flags().BoolVar(&anaStore, "store", false, "record the analysis in the local history database")
}

// resolveDelimiter prefers the flag value, then the configured default.
func resolveDelimiter(flagVal string) (rune, error) {
	if flagVal == "" && cfg != nil {
		flagVal = cfg.Delimiter
	}
	return parseDelimiter(flagVal)
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

func renderReport(rep *quality.Report, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "markdown", "md":
		return []byte(rep.Markdown()), nil
	case "json":
		return utils.PrettyJSON(rep)
	case "yaml", "yml":
		return utils.PrettyYAML(rep)
	default:
		return nil, fmt.Errorf("unsupported --format: %s (use markdown|json|yaml)", format)
	}
}

func storeReport(rep *quality.Report) error {
	if cfg == nil || cfg.HistoryDB == "" {
		return fmt.Errorf("no history database configured")
	}
	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.StoreAnalysis(rep); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Stored analysis %s\n", rep.ID)
	return nil
}
