package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/arcanaland/ottar/internal/card"
	"github.com/arcanaland/ottar/internal/deck"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Print the full 78-card deck",
	Long: `Deck builds the complete 78-card deck (four suits of fourteen ranks, the
twenty-one trumps, and the Fool) and prints it in canonical order, wrapped to
the terminal width. With --points it also prints the deck's point total.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := lexiconFor(cmd)
		if err != nil {
			return err
		}

		d := deck.Build()

		// Set iteration order is unstable, sort for display.
		cards := d.Cards()
		slices.SortFunc(cards, card.DeckOrder)

		names := make([]string, 0, len(cards))
		for _, c := range cards {
			names = append(names, colorize(c, lex.CardName(c)))
		}
		printWrapped(names)

		showPoints, _ := cmd.Flags().GetBool("points")
		if showPoints {
			total := d.TotalPoints()
			fmt.Printf("\n%d cards, %d scaled points (%.1f points)\n", d.Len(), total, float64(total)/10)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)

	deckCmd.Flags().Bool("points", false, "Print the card count and point total")
}

// printWrapped prints space-joined words, wrapped to the terminal width.
// Falls back to 80 columns when stdout is not a terminal.
func printWrapped(words []string) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	lineLen := 0
	for i, w := range words {
		// ANSI escapes don't take up columns.
		visible := len(stripAnsi(w))
		if lineLen > 0 && lineLen+1+visible > width {
			fmt.Println()
			lineLen = 0
		} else if i > 0 && lineLen > 0 {
			fmt.Print(" ")
			lineLen++
		}
		fmt.Print(w)
		lineLen += visible
	}
	fmt.Println()
}

// stripAnsi removes SGR escape sequences (ESC ... 'm'), the only kind
// colorize emits. It does not handle other ANSI escapes.
func stripAnsi(s string) string {
	out := make([]byte, 0, len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		switch {
		case inEscape:
			if s[i] == 'm' {
				inEscape = false
			}
		case s[i] == 0x1b:
			inEscape = true
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

// colorize wraps a card's display name in a per-class color: red for the red
// suits, yellow for trumps, cyan for the Fool. Presentation only, the model
// itself knows nothing about color.
func colorize(c card.Card, name string) string {
	switch c.Figure().Kind() {
	case card.KindFool:
		return color.CyanString("%s", name)
	case card.KindTrump:
		return color.YellowString("%s", name)
	}
	if c.Figure().Suit() == card.Heart || c.Figure().Suit() == card.Diamond {
		return color.RedString("%s", name)
	}
	return name
}
