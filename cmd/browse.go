// Package cmd implements the command-line interface for gifgrab.
package cmd

import (
	"fmt"
	"strings"

	"github.com/gifgrab-cli/gifgrab/auth"
	"github.com/gifgrab-cli/gifgrab/engine"
	"github.com/gifgrab-cli/gifgrab/icon"
	"github.com/gifgrab-cli/gifgrab/key"
	"github.com/gifgrab-cli/gifgrab/log"
	"github.com/gifgrab-cli/gifgrab/query"
	"github.com/gifgrab-cli/gifgrab/tenor"
	"github.com/gifgrab-cli/gifgrab/tui"
	"github.com/gifgrab-cli/gifgrab/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().IntP("number", "n", 25, "Desired number of results (1-50)")

	browseCmd.Flags().StringP("type", "t", "page", "Link type to copy from the browser")
	lo.Must0(browseCmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return engine.TargetNames(), cobra.ShellCompDirectiveDefault
	}))

	browseCmd.Flags().StringP("quality", "Q", "", "Media quality variant for direct links and downloads")
	lo.Must0(browseCmd.RegisterFlagCompletionFunc("quality", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tenor.FormatNames(), cobra.ShellCompDirectiveDefault
	}))

	browseCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// browseCmd opens the interactive result browser for a search query.
var browseCmd = &cobra.Command{
	Use:   "browse [query]...",
	Short: "Interactively browse search results",
	Long: `Search Tenor and open an interactive browser over the results.
Selected results can be copied, downloaded, or opened from within the browser.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupDebugLogs(cmd)

		searchQuery := strings.Join(args, " ")
		if searchQuery == "" {
			searchQuery = viper.GetString(key.SearchDefaultQuery)
		}

		target, err := engine.ParseTarget(lo.Must(cmd.Flags().GetString("type")))
		handleErr(err)

		quality := lo.Must(cmd.Flags().GetString("quality"))
		if quality == "" {
			quality = viper.GetString(key.SearchQuality)
		}

		format, err := tenor.ParseFormat(quality)
		handleErr(err)

		apiKey, err := auth.Key()
		handleErr(err)

		client := tenor.NewClient(apiKey)

		erase := util.PrintErasable(fmt.Sprintf("%s Searching for %s...", icon.Get(icon.Search), searchQuery))
		results, err := client.Search(searchQuery, lo.Must(cmd.Flags().GetInt("number")))
		erase()
		handleErr(err)

		if err := query.Remember(searchQuery, 1); err != nil {
			log.Warn(err)
		}

		if len(results) == 0 {
			handleErr(engine.ErrNoResults)
		}

		handleErr(tui.Run(&tui.Options{
			Query:   searchQuery,
			Results: results,
			Target:  target,
			Format:  format,
			Client:  client,
		}))
	},
}
