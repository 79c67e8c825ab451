// Package cmd implements the command-line interface for gifgrab.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/gifgrab-cli/gifgrab/history"
	"github.com/gifgrab-cli/gifgrab/tenor"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("history", "s", false, "Generate the JSON Schema for download history records")
}

// schemaCmd generates JSON schemas for structured command outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured command outputs",
	Long: `Generate the JSON Schema describing the extended (--extended) result dump,
or the download history listing when --history is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "result", "variant", "savedmedia":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("history")):
			schema = reflector.Reflect([]*history.SavedMedia{})
		default:
			schema = reflector.Reflect([]*tenor.Result{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
