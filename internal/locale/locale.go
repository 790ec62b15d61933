// Package locale maps cards to display names, optionally loaded from
// per-language TOML files in the user's name library.
package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/ottar/internal/card"
	"github.com/arcanaland/ottar/internal/config"
)

// Lexicon holds the display names for every card. Suited cards and trumps
// are rendered through fmt patterns so a language can pick its own word
// order; the trump pattern receives the strength, with %v giving the spelled
// name ("Twelve") and %d the numeral.
type Lexicon struct {
	Fool         string            `toml:"fool"`
	BasePattern  string            `toml:"base_pattern"`
	TrumpPattern string            `toml:"trump_pattern"`
	Suits        map[string]string `toml:"suits"`
	Ranks        map[string]string `toml:"ranks"`
	Trumps       map[string]string `toml:"trumps"`
}

// Default returns the built-in English lexicon, which renders every card the
// same way its textual domain form does.
func Default() *Lexicon {
	l := &Lexicon{
		Fool:         "Fool",
		BasePattern:  "%v of %vs",
		TrumpPattern: "%v of Trumps",
		Suits:        make(map[string]string, len(card.Suits)),
		Ranks:        make(map[string]string, len(card.Ranks)),
		Trumps:       make(map[string]string),
	}
	for _, s := range card.Suits {
		l.Suits[strings.ToLower(s.String())] = s.String()
	}
	for _, r := range card.Ranks {
		l.Ranks[strings.ToLower(r.String())] = r.String()
	}
	return l
}

// Load decodes a lexicon from a TOML file. Names the file does not provide
// are filled in from the English defaults.
func Load(path string) (*Lexicon, error) {
	var l Lexicon
	if _, err := toml.DecodeFile(path, &l); err != nil {
		return nil, fmt.Errorf("error parsing language file: %v", err)
	}
	l.fillDefaults()
	return &l, nil
}

// ForLocale returns the lexicon for a language tag, looking for
// <names dir>/<tag>.toml in the user's name library. A missing file falls
// back to the English defaults; a file that fails to parse is an error.
func ForLocale(tag string) (*Lexicon, error) {
	if tag == "" || tag == "en" {
		return Default(), nil
	}
	path := filepath.Join(config.GetNamesDir(), tag+".toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (l *Lexicon) fillDefaults() {
	def := Default()
	if l.Fool == "" {
		l.Fool = def.Fool
	}
	if l.BasePattern == "" {
		l.BasePattern = def.BasePattern
	}
	if l.TrumpPattern == "" {
		l.TrumpPattern = def.TrumpPattern
	}
	if l.Suits == nil {
		l.Suits = make(map[string]string, len(def.Suits))
	}
	for k, v := range def.Suits {
		if _, ok := l.Suits[k]; !ok {
			l.Suits[k] = v
		}
	}
	if l.Ranks == nil {
		l.Ranks = make(map[string]string, len(def.Ranks))
	}
	for k, v := range def.Ranks {
		if _, ok := l.Ranks[k]; !ok {
			l.Ranks[k] = v
		}
	}
	if l.Trumps == nil {
		l.Trumps = make(map[string]string)
	}
}

// CardName returns the display name of a card in this lexicon.
func (l *Lexicon) CardName(c card.Card) string {
	f := c.Figure()
	switch f.Kind() {
	case card.KindFool:
		return l.Fool
	case card.KindTrump:
		if name, ok := l.Trumps[strconv.Itoa(int(f.Trump()))]; ok {
			return name
		}
		return fmt.Sprintf(l.TrumpPattern, f.Trump())
	}
	suit := l.Suits[strings.ToLower(f.Suit().String())]
	rank := l.Ranks[strings.ToLower(f.Rank().String())]
	return fmt.Sprintf(l.BasePattern, rank, suit)
}
