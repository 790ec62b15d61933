package cmd

import (
	"github.com/arcanaland/ottar/internal/config"
	"github.com/arcanaland/ottar/internal/locale"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ottar",
	Short: "Tool for exploring the French tarot card deck",
	Long: `Ottar models the cards of the French tarot family: four suits of fourteen
ranks, twenty-one trumps, and the Fool. It can print the full 78-card deck,
inspect single cards and their point values, and resolve which of two cards
wins against a led suit.`,
}

func init() {
	RootCmd.PersistentFlags().String("locale", "", "Language tag for card names (defaults to the configured locale)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// lexiconFor resolves the display setup for a command: the lexicon for the
// --locale flag (falling back to the configured locale and then the English
// defaults), and the configured color toggle. Disabling color in the config
// turns it off globally; enabling it never overrides terminal detection.
func lexiconFor(cmd *cobra.Command) (*locale.Lexicon, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if !cfg.Color {
		color.NoColor = true
	}

	tag, _ := cmd.Flags().GetString("locale")
	if tag == "" {
		tag = cfg.Locale
	}
	return locale.ForLocale(tag)
}
