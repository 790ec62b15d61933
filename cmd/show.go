package cmd

import (
	"fmt"

	"github.com/arcanaland/ottar/internal/card"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card",
	Long: `Show displays a card's name, class and point value.
Use canonical card IDs like 'spade.ace', 'trump.21' or 'fool'.

Examples:
  ottar show fool
  ottar show trump.1
  ottar show heart.knight`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.ParseCard(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		lex, err := lexiconFor(cmd)
		if err != nil {
			return err
		}

		points := c.Points()
		fmt.Println(colorize(c, lex.CardName(c)))
		fmt.Printf("ID:     %s\n", c.ID())
		fmt.Printf("Class:  %s\n", c.Figure().Kind())
		fmt.Printf("Points: %.1f (%d scaled)\n", float64(points)/10, points)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
