// Package cmd implements the command-line interface for gifgrab.
package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gifgrab-cli/gifgrab/color"
	"github.com/gifgrab-cli/gifgrab/history"
	"github.com/gifgrab-cli/gifgrab/style"
	"github.com/gifgrab-cli/gifgrab/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists media previously saved by the download sink.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously downloaded media",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println("No downloads recorded")
			return
		}

		cmd.Printf("%s\n\n", style.Faint(util.Quantify(len(records), "download", "downloads")))

		for _, record := range records {
			title := record.Description
			if title == "" {
				title = record.ID
			}

			cmd.Printf(
				"%s %s\n  %s\n  %s\n",
				style.Bold(title),
				style.Faint(time.Unix(record.SavedAt, 0).Format("2006-01-02 15:04")),
				style.Fg(color.Blue)(record.URL),
				record.Path,
			)
		}
	},
}
