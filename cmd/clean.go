package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tablecheck-cli/internal/cleaning"
	"github.com/KaramelBytes/tablecheck-cli/internal/table"
	"github.com/KaramelBytes/tablecheck-cli/internal/utils"
)

var (
	cleanOutputPath string
	cleanAggressive bool
	cleanDelimiter  string
	cleanSheetName  string
	cleanSheetIndex int
	cleanReportPath string
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Clean a dataset and write the result as CSV",
	Long: `Clean applies a fixed sequence of operations: dropping empty and
mostly-missing columns, removing duplicate rows, normalizing column names,
trimming whitespace, and imputing missing numeric/categorical values.
Aggressive mode additionally drops constant columns, lowers the missing
threshold, and coerces column types to canonical forms.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		delim, err := resolveDelimiter(cleanDelimiter)
		if err != nil {
			return err
		}

		t, err := table.Load(path, delim, cleanSheetName, cleanSheetIndex)
		if err != nil {
			return err
		}

		ccfg := cleaning.AutoConfig()
		if cleanAggressive {
			ccfg = cleaning.AggressiveConfig()
		}
		if cfg != nil {
			if cleanAggressive && cfg.AggressiveMissingThreshold > 0 {
				ccfg.MissingThreshold = cfg.AggressiveMissingThreshold
			} else if !cleanAggressive && cfg.AutoMissingThreshold > 0 {
				ccfg.MissingThreshold = cfg.AutoMissingThreshold
			}
		}

		cleaned, rep := cleaning.New(ccfg).Clean(t, path)

		outPath := cleanOutputPath
		if outPath == "" {
			outPath = utils.CleanedOutputPath(path, time.Now())
		}
		var buf bytes.Buffer
		if err := cleaned.WriteCSV(&buf); err != nil {
			return err
		}
		if err := utils.SafeWriteFile(outPath, buf.Bytes()); err != nil {
			return fmt.Errorf("write cleaned file: %w", err)
		}

		fmt.Printf("✓ Cleaned %s -> %s\n", path, outPath)
		fmt.Printf("  Shape: %dx%d -> %dx%d (%d rows, %d columns removed)\n",
			rep.OriginalShape.Rows, rep.OriginalShape.Columns,
			rep.CleanedShape.Rows, rep.CleanedShape.Columns,
			rep.RowsRemoved, rep.ColumnsRemoved)
		for _, op := range rep.Operations {
			marker := "✓"
			if op.Failed {
				marker = "✗"
			}
			fmt.Printf("  %s %s: %s", marker, op.Name, op.Detail)
			if op.Count > 0 {
				fmt.Printf(" (%d)", op.Count)
			}
			fmt.Println()
		}

		if cleanReportPath != "" {
			b, err := utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
			if err := utils.SafeWriteFile(cleanReportPath, b); err != nil {
				return fmt.Errorf("write cleaning report: %w", err)
			}
			fmt.Printf("✓ Wrote cleaning report to %s\n", cleanReportPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&cleanOutputPath, "output", "o", "", "output path (default: <name>_cleaned_<timestamp>.csv next to the input)")
	cleanCmd.Flags().BoolVar(&cleanAggressive, "aggressive", false, "enable destructive operations (constant-column removal, type coercion)")
	cleanCmd.Flags().StringVar(&cleanDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	cleanCmd.Flags().StringVar(&cleanSheetName, "sheet-name", "", "XLSX: sheet name to clean")
	cleanCmd.Flags().IntVar(&cleanSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	cleanCmd.Flags().StringVar(&cleanReportPath, "report", "", "optional path to write the cleaning report (JSON)")
}
