// Package parse handles one-shot job processing from the command line
package parse

import (
	"fmt"

	"github.com/spf13/cobra"

	"rkatz/portfolio-parser/cmd/root"
	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/orchestrator"
	"rkatz/portfolio-parser/internal/report"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a set of transaction export files into one unified result",
	Long: `Parse loads the given CSV and XLSX files in order, categorizes and
normalizes every row, and merges the outcomes into one chronologically
ordered result per category. The result is written as JSON or CSV.`,
	Run: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.JobID, "job-id", "j", "cli", "Job identifier for the result")
	Cmd.Flags().StringSliceVar(&root.Files, "files", nil, "Input file names, processed in order")
}

func parseFunc(cmd *cobra.Command, args []string) {
	files := append(root.Files, args...)

	root.Log.Infof("Parsing %d file(s) from %s", len(files), root.SharedFlags.Directory)

	o := orchestrator.NewWithAssembler(root.JobID, root.NewAssembler(), logging.GetLogger())
	result, err := o.ParseJob(root.SharedFlags.Directory, files)
	if err != nil {
		root.Log.Fatalf("Parse failed: %v", err)
	}

	switch root.SharedFlags.Format {
	case "csv":
		if root.SharedFlags.Output == "" {
			root.Log.Fatal("CSV output requires --output")
		}
		if err := report.WriteCSV(result, root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Failed to write CSV output: %v", err)
		}
	case "json":
		if root.SharedFlags.Output != "" {
			if err := report.WriteJSON(result, root.SharedFlags.Output); err != nil {
				root.Log.Fatalf("Failed to write JSON output: %v", err)
			}
		} else {
			data, err := report.MarshalJSON(result)
			if err != nil {
				root.Log.Fatalf("Failed to render result: %v", err)
			}
			fmt.Println(string(data))
		}
	default:
		root.Log.Fatalf("Unsupported output format: %s", root.SharedFlags.Format)
	}

	root.Log.Info("Parse completed successfully!")
}
