package cmd

import (
	"fmt"

	"github.com/arcanaland/ottar/internal/card"
	"github.com/spf13/cobra"
)

// handCmd represents the hand command
var handCmd = &cobra.Command{
	Use:   "hand",
	Short: "Print a sample hand",
	Long:  `Hand prints a fixed sample hand with each card's point value, as a quick demonstration of the model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := lexiconFor(cmd)
		if err != nil {
			return err
		}

		sample := []card.Card{
			card.New(card.Fool()),
			card.New(card.TrumpFigure(card.MaxTrump)),
			card.New(card.TrumpFigure(card.MinTrump)),
			card.New(card.Base(card.Spade, card.King)),
			card.New(card.Base(card.Heart, card.Knight)),
			card.New(card.Base(card.Spade, card.Ace)),
		}

		total := 0
		for _, c := range sample {
			fmt.Printf("%-24s %4.1f\n", colorize(c, lex.CardName(c)), float64(c.Points())/10)
			total += c.Points()
		}
		fmt.Printf("%-24s %4.1f\n", "total", float64(total)/10)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(handCmd)
}
