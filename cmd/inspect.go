package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/deckdiff/internal/deck"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Show how a deck list is parsed",
	Long: `Inspect parses a single deck list and prints each partition the compare
command works with: mainboard and sideboard, each split into single-faced and
double-faced cards, with the number of copies of every card.

Examples:
  deckdiff inspect delver.txt
  deckdiff inspect --sideboard delver.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		includeSideboard, _ := cmd.Flags().GetBool("sideboard")

		d, err := deck.LoadDeck(args[0], cfg.DeckOptions(includeSideboard))
		if err != nil {
			return err
		}

		displayDeck(cmd.OutOrStdout(), d, includeSideboard, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolP("sideboard", "s", false, "Include sideboard cards")
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// displayDeck prints the partitions of a parsed deck
func displayDeck(out io.Writer, d *deck.Deck, includeSideboard bool, width int) {
	fmt.Fprintln(out, color.CyanString("Deck: ")+color.HiWhiteString("%s", d.Path))
	fmt.Fprintln(out, color.CyanString("Sideboard marker: ")+yesNo(d.SideboardSeen))

	displayGroup(out, "Mainboard, single-faced", d.Main.Single, width)
	displayGroup(out, "Mainboard, double-faced", d.Main.Double, width)
	if includeSideboard {
		displayGroup(out, "Sideboard, single-faced", d.Side.Single, width)
		displayGroup(out, "Sideboard, double-faced", d.Side.Double, width)
	}

	total := d.Main.Len()
	if includeSideboard {
		total += d.Side.Len()
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, color.CyanString("Total cards: ")+color.HiWhiteString("%d", total))
}

func displayGroup(out io.Writer, title string, names []string, width int) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, color.CyanString("%s (%d)", title, len(names)))
	fmt.Fprintln(out, strings.Repeat("-", min(width, len(title)+8)))

	counts := deck.Tally(names)
	if len(counts) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}

	// "  NNN  " before each name
	const gutter = 7
	for _, c := range counts {
		lines := wrapText(c.Name, width-gutter)
		fmt.Fprintf(out, "  %3d  %s\n", c.Quantity, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", gutter), line)
		}
	}
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
