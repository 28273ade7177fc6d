package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/deckdiff/internal/config"
	"github.com/arcanaland/deckdiff/internal/deck"
	"github.com/arcanaland/deckdiff/internal/export"
	"github.com/arcanaland/deckdiff/internal/logging"
	"github.com/arcanaland/deckdiff/internal/reconcile"
)

// cfg is loaded once per invocation by the root pre-run hook
var cfg *config.Config

// RootCmd compares two deck lists when called without a subcommand
var RootCmd = &cobra.Command{
	Use:   "deckdiff <file1> <file2> <output.csv> [<include_sideboard>]",
	Short: "Compare two deck lists and write a proxy sheet",
	Long: `Deckdiff compares two trading card game deck lists and writes a CSV proxy sheet.

Cards shared by both decks are printed with the same card on both faces of a
row. Cards unique to each deck are paired up front to back so the sheet can be
printed once and cut into proxies for either deck. Double-faced cards are split
into their front and back.

Pass "true" as the fourth argument to append each deck's sideboard.

Examples:
  deckdiff delver.txt tempo.txt proxies.csv
  deckdiff delver.txt tempo.txt proxies.csv true`,
	Args:              cobra.MaximumNArgs(4),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 3 {
			return cmd.Help()
		}

		includeSideboard := len(args) == 4 && strings.EqualFold(args[3], "true")
		return compare(cmd.OutOrStdout(), args[0], args[1], args[2], includeSideboard)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	RootCmd.PersistentFlags().String("color", "", "Color mode: auto, always or never (overrides config)")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// setup loads the config, then configures logging and color for the command
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	level := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	logging.New(level, cfg.LogFormat, cmd.ErrOrStderr())

	mode := cfg.Color
	if flagMode, _ := cmd.Flags().GetString("color"); flagMode != "" {
		mode = flagMode
	}
	return applyColorMode(mode)
}

func applyColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	case config.ColorAuto, "":
		color.NoColor = os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", mode)
	}
	return nil
}

// compare parses both decks, prints the diagnostics and writes the sheet
func compare(out io.Writer, file1, file2, outputPath string, includeSideboard bool) error {
	fmt.Fprintf(out, "Sideboard processing is %s.\n", onOff(includeSideboard))

	opts := cfg.DeckOptions(includeSideboard)

	a, err := deck.LoadDeck(file1, opts)
	if err != nil {
		return err
	}
	b, err := deck.LoadDeck(file2, opts)
	if err != nil {
		return err
	}

	if includeSideboard {
		fmt.Fprintf(out, "Sideboard encountered in '%s': %s.\n", file1, yesNo(a.SideboardSeen))
		fmt.Fprintf(out, "Sideboard encountered in '%s': %s.\n", file2, yesNo(b.SideboardSeen))
	}

	result := reconcile.Reconcile(a, b, includeSideboard)

	if result.AllDoubleShared {
		fmt.Fprintln(out, good("All double-sided cards are shared."))
	} else {
		fmt.Fprintln(out, warn("Not all double-sided cards are shared."))
	}
	if result.AllSingleShared {
		fmt.Fprintln(out, good("All single-sided cards are shared."))
	} else {
		fmt.Fprintln(out, warn("Not all single-sided cards are shared."))
	}
	fmt.Fprintf(out, "Length difference between the two files: %d\n", result.LengthDifference)

	return export.WriteFile(outputPath, result, export.Options{
		Split:     cfg.FaceSplit,
		Separator: cfg.FaceSeparator,
	})
}

var (
	good = color.New(color.FgGreen).SprintFunc()
	warn = color.New(color.FgYellow).SprintFunc()
	bad  = color.New(color.FgRed).SprintFunc()
)

func onOff(b bool) string {
	if b {
		return good("on")
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return good("Yes")
	}
	return warn("No")
}
