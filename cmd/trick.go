package cmd

import (
	"fmt"

	"github.com/arcanaland/ottar/internal/card"
	"github.com/spf13/cobra"
)

// trickCmd represents the trick command
var trickCmd = &cobra.Command{
	Use:   "trick [led_suit] [card_id] [card_id]",
	Short: "Resolve which of two cards wins against a led suit",
	Long: `Trick compares two cards head to head, given the suit that was led, and
prints the winner. The first card is the one played earlier, which matters
only when neither card follows the led suit and no trump is involved.

Examples:
  ottar trick spade spade.ace trump.1
  ottar trick heart heart.two heart.king`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		led, err := card.ParseSuit(args[0])
		if err != nil {
			return fmt.Errorf("error parsing led suit: %v", err)
		}
		a, err := card.ParseCard(args[1])
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}
		b, err := card.ParseCard(args[2])
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		lex, err := lexiconFor(cmd)
		if err != nil {
			return err
		}

		winner := card.Resolve(led, a, b)
		fmt.Printf("%s led: %s beats %s\n", led, colorize(winner, lex.CardName(winner)), other(winner, a, b))
		return nil
	},
}

func other(winner, a, b card.Card) card.Card {
	if winner == a {
		return b
	}
	return a
}

func init() {
	RootCmd.AddCommand(trickCmd)
}
