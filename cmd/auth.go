// Package cmd implements the command-line interface for gifgrab.
package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gifgrab-cli/gifgrab/auth"
	"github.com/gifgrab-cli/gifgrab/icon"
	"github.com/gifgrab-cli/gifgrab/open"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const tenorDeveloperURL = "https://tenor.com/developer/keyregistration"

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authDeleteCmd)

	authSetCmd.Flags().StringP("key", "k", "", "The Tenor API key to persist")
}

// authCmd manages the Tenor API key used for all search requests.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Tenor API key",
	Long: `Persist, inspect, or remove the Tenor API key stored in the system keyring.
A key can be obtained for free at ` + tenorDeveloperURL,
}

// authSetCmd stores an API key in the system keyring, prompting when not given as a flag.
var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Persist a Tenor API key to the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey := lo.Must(cmd.Flags().GetString("key"))

		if apiKey == "" {
			confirmOpenInBrowser := survey.Confirm{
				Message: "No key given. Open the Tenor key registration page in your browser?",
				Default: false,
			}

			var openInBrowser bool
			err := survey.AskOne(&confirmOpenInBrowser, &openInBrowser)
			if err == nil && openInBrowser {
				err = open.Start(tenorDeveloperURL)
			}

			if err != nil || !openInBrowser {
				fmt.Println("You can register a key at the following URL:")
				fmt.Println(tenorDeveloperURL)
			}

			prompt := survey.Password{
				Message: "Tenor API key:",
			}
			handleErr(survey.AskOne(&prompt, &apiKey))
		}

		if apiKey == "" {
			handleErr(errors.New("empty API key"))
		}

		handleErr(auth.SetKey(apiKey))
		fmt.Printf("%s API key saved to the system keyring\n", icon.Get(icon.Success))
	},
}

// authStatusCmd reports whether an API key is currently resolvable.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a Tenor API key is configured",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := auth.Key(); err != nil {
			fmt.Printf("%s %s\n", icon.Get(icon.Fail), err)
			return
		}

		fmt.Printf("%s API key is configured\n", icon.Get(icon.Success))
	},
}

// authDeleteCmd removes the persisted API key from the system keyring.
var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the Tenor API key from the system keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		err := auth.DeleteKey()
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Printf("%s no API key was stored\n", icon.Get(icon.Fail))
			return
		}

		handleErr(err)
		fmt.Printf("%s API key removed\n", icon.Get(icon.Success))
	},
}
