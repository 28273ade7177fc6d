package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/deckdiff/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a deck list",
	Long: `Validate checks a deck list line by line and reports every problem it finds.
Errors are lines the compare command would reject. Warnings are lines it accepts
but that probably do not mean what was intended.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listPath := args[0]
		out := cmd.OutOrStdout()

		// Check if path exists
		if _, err := os.Stat(listPath); os.IsNotExist(err) {
			return fmt.Errorf("deck list not found: %s", listPath)
		}

		v := validator.NewValidator(listPath, cfg.DeckOptions(true), cfg.FaceSplit)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "%s Deck list '%s' is valid.\n", good("✔"), listPath)
		} else {
			fmt.Fprintf(out, "%s Deck list '%s' has %d errors:\n", bad("✘"), listPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, w := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, w)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
