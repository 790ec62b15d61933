package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/ottar/internal/card"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newTestCommand() *cobra.Command {
	c := &cobra.Command{}
	c.Flags().String("locale", "", "")
	return c
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	dir := filepath.Join(configHome, "ottar")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLexiconForDisablesColorWhenConfigured(t *testing.T) {
	writeConfig(t, "locale = \"en\"\ncolor = false\n")

	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	if _, err := lexiconFor(newTestCommand()); err != nil {
		t.Fatalf("lexiconFor() error: %v", err)
	}
	if !color.NoColor {
		t.Fatalf("color = false in config should disable colored output")
	}

	c := card.New(card.Fool())
	if got := colorize(c, "Fool"); got != "Fool" {
		t.Errorf("colorize with color disabled = %q, want plain %q", got, "Fool")
	}
}

func TestLexiconForKeepsColorWhenEnabled(t *testing.T) {
	writeConfig(t, "locale = \"en\"\ncolor = true\n")

	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	if _, err := lexiconFor(newTestCommand()); err != nil {
		t.Fatalf("lexiconFor() error: %v", err)
	}
	if color.NoColor {
		t.Errorf("color = true in config should leave colored output on")
	}

	c := card.New(card.TrumpFigure(card.MinTrump))
	if got := colorize(c, "One of Trumps"); !strings.Contains(got, "\x1b[") {
		t.Errorf("colorize with color enabled should emit ANSI escapes, got %q", got)
	}
}

func TestLexiconForUsesConfiguredLocale(t *testing.T) {
	writeConfig(t, "locale = \"en\"\ncolor = true\n")
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	lex, err := lexiconFor(newTestCommand())
	if err != nil {
		t.Fatalf("lexiconFor() error: %v", err)
	}
	if got := lex.CardName(card.New(card.Fool())); got != "Fool" {
		t.Errorf("CardName(fool) = %q, want Fool", got)
	}
}
