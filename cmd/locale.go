package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/ottar/internal/config"
	"github.com/arcanaland/ottar/internal/locale"
	"github.com/spf13/cobra"
)

// localeCmd represents the locale command group
var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Manage the language used for card names",
	Long:  `Commands for managing the language card names are displayed in.`,
}

// localeListCmd represents the locale ls command
var localeListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available name files in your name library",
	Run: func(cmd *cobra.Command, args []string) {
		current, err := config.GetLocale()
		if err != nil {
			fmt.Printf("Error reading config: %v\n", err)
			return
		}

		// The built-in English names are always available.
		if current == "" || current == "en" {
			fmt.Println("* en (built-in) [CURRENT]")
		} else {
			fmt.Println("  en (built-in)")
		}

		namesDir := config.GetNamesDir()
		entries, err := os.ReadDir(namesDir)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No name library found at", namesDir)
				return
			}
			fmt.Printf("Error reading name library: %v\n", err)
			return
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}
			tag := entry.Name()[:len(entry.Name())-len(".toml")]
			if tag == current {
				fmt.Printf("* %s [CURRENT]\n", tag)
			} else {
				fmt.Printf("  %s\n", tag)
			}
		}
	},
}

// localeSetCmd represents the locale set command
var localeSetCmd = &cobra.Command{
	Use:   "set [tag]",
	Short: "Set the configured locale",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tag := args[0]

		// Make sure the lexicon loads before committing the config change.
		if _, err := locale.ForLocale(tag); err != nil {
			fmt.Printf("Error: not a valid name file - %v\n", err)
			return
		}

		if err := config.SetLocale(tag); err != nil {
			fmt.Printf("Error setting locale: %v\n", err)
			return
		}

		fmt.Printf("Locale set to: %s\n", tag)
	},
}

func init() {
	RootCmd.AddCommand(localeCmd)
	localeCmd.AddCommand(localeListCmd)
	localeCmd.AddCommand(localeSetCmd)
}
