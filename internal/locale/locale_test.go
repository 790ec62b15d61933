package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/ottar/internal/card"
	"github.com/arcanaland/ottar/internal/deck"
)

func TestDefaultNamesMatchDomainText(t *testing.T) {
	lex := Default()
	for _, c := range deck.Build().Cards() {
		if got := lex.CardName(c); got != c.String() {
			t.Errorf("default name of %s = %q, want %q", c.ID(), got, c.String())
		}
	}
}

func TestLoadFillsGapsFromDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fr.toml")
	content := `
fool = "Excuse"
base_pattern = "%v de %v"
trump_pattern = "Atout %d"

[suits]
spade = "Pique"
heart = "Coeur"

[ranks]
ace = "As"
knight = "Cavalier"
king = "Roi"

[trumps]
1 = "Le Petit"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		card card.Card
		want string
	}{
		{card.New(card.Fool()), "Excuse"},
		{card.New(card.TrumpFigure(card.MinTrump)), "Le Petit"},
		{card.New(card.TrumpFigure(card.Trump(12))), "Atout 12"},
		{card.New(card.Base(card.Spade, card.King)), "Roi de Pique"},
		{card.New(card.Base(card.Heart, card.Knight)), "Cavalier de Coeur"},
		// diamond and two are absent from the file, English defaults fill in
		{card.New(card.Base(card.Diamond, card.Two)), "Two de Diamond"},
	}
	for _, tt := range tests {
		if got := lex.CardName(tt.card); got != tt.want {
			t.Errorf("CardName(%s) = %q, want %q", tt.card.ID(), got, tt.want)
		}
	}
}

func TestLoadRejectsBadToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("fool = [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load() should fail on malformed TOML")
	}
}

func TestForLocaleFallsBackToDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	for _, tag := range []string{"", "en", "no-such-locale"} {
		lex, err := ForLocale(tag)
		if err != nil {
			t.Fatalf("ForLocale(%q) error: %v", tag, err)
		}
		c := card.New(card.Fool())
		if got := lex.CardName(c); got != "Fool" {
			t.Errorf("ForLocale(%q).CardName(fool) = %q, want Fool", tag, got)
		}
	}
}

func TestForLocaleReadsNameLibrary(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	namesDir := filepath.Join(dataHome, "ottar", "names")
	if err := os.MkdirAll(namesDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "fool = \"Excuse\"\n"
	if err := os.WriteFile(filepath.Join(namesDir, "fr.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lex, err := ForLocale("fr")
	if err != nil {
		t.Fatalf("ForLocale(fr) error: %v", err)
	}
	if got := lex.CardName(card.New(card.Fool())); got != "Excuse" {
		t.Errorf("CardName(fool) = %q, want Excuse", got)
	}
	// missing entries come from the defaults
	if got := lex.CardName(card.New(card.Base(card.Spade, card.Ace))); got != "Ace of Spades" {
		t.Errorf("CardName(spade.ace) = %q, want Ace of Spades", got)
	}
}
