// Package cmd implements the command-line interface for gifgrab.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gifgrab-cli/gifgrab/auth"
	"github.com/gifgrab-cli/gifgrab/color"
	"github.com/gifgrab-cli/gifgrab/constant"
	"github.com/gifgrab-cli/gifgrab/engine"
	"github.com/gifgrab-cli/gifgrab/icon"
	"github.com/gifgrab-cli/gifgrab/key"
	"github.com/gifgrab-cli/gifgrab/log"
	"github.com/gifgrab-cli/gifgrab/query"
	"github.com/gifgrab-cli/gifgrab/style"
	"github.com/gifgrab-cli/gifgrab/tenor"
	"github.com/gifgrab-cli/gifgrab/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().IntP("number", "n", 10, "Desired number of results (1-50)")
	lo.Must0(viper.BindPFlag(key.SearchLimit, rootCmd.Flags().Lookup("number")))

	rootCmd.Flags().BoolP("copy", "c", false, "Copy a randomly selected link to the clipboard")
	rootCmd.Flags().BoolP("download", "d", false, "Download a randomly selected result to the picture library")

	rootCmd.Flags().StringP("type", "t", "page", "Link type to render and deliver")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return engine.TargetNames(), cobra.ShellCompDirectiveDefault
	}))

	rootCmd.Flags().StringP("quality", "Q", "gif", "Media quality variant for direct links and downloads")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("quality", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tenor.FormatNames(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.SearchQuality, rootCmd.Flags().Lookup("quality")))

	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress result rendering")
	rootCmd.Flags().BoolP("extended", "e", false, "Render the full result set as JSON")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug-level logs for this invocation")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd searches Tenor and renders or delivers the results.
var rootCmd = &cobra.Command{
	Use:   constant.Gifgrab + " [query]...",
	Short: "Search Tenor for GIFs from the command line",
	Long: "Search Tenor for GIFs from the command line.\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Renders links, copies a random pick to the clipboard, or saves it to your picture library"),
	Example: "  gifgrab excited cat\n  gifgrab -c -t gif party parrot\n  gifgrab -d -Q tinygif confetti",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		setupDebugLogs(cmd)

		searchQuery := strings.Join(args, " ")
		if searchQuery == "" {
			searchQuery = viper.GetString(key.SearchDefaultQuery)
		}

		target, err := engine.ParseTarget(lo.Must(cmd.Flags().GetString("type")))
		handleErr(err)

		format, err := tenor.ParseFormat(viper.GetString(key.SearchQuality))
		handleErr(err)

		apiKey, err := auth.Key()
		handleErr(err)

		handleErr(engine.Run(&engine.Options{
			Query:    searchQuery,
			Limit:    viper.GetInt(key.SearchLimit),
			Target:   target,
			Format:   format,
			Copy:     lo.Must(cmd.Flags().GetBool("copy")),
			Download: lo.Must(cmd.Flags().GetBool("download")),
			Quiet:    lo.Must(cmd.Flags().GetBool("quiet")),
			Extended: lo.Must(cmd.Flags().GetBool("extended")),
			Client:   tenor.NewClient(apiKey),
		}))
	},
}

// setupDebugLogs re-initializes the logging subsystem when --debug is given,
// since flags are parsed after the startup log.Setup call.
func setupDebugLogs(cmd *cobra.Command) {
	if lo.Must(cmd.Flags().GetBool("debug")) {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		handleErr(log.Setup())
	}
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
