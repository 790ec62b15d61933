// Package deck builds and queries the full 78-card tarot deck.
package deck

import (
	"strings"

	"github.com/arcanaland/ottar/internal/card"
)

// Size of a complete deck: 4 suits x 14 ranks, 21 trumps, and the Fool.
const Size = 78

// TotalPoints is the scaled point total of a complete deck (the true total
// is 91.0 points).
const TotalPoints = 910

// Deck is the set of all distinct cards. Membership is keyed on the card's
// figure, so adding a card that is already present is a silent no-op. A deck
// is built once and read-only afterwards, which makes it safe to share across
// goroutines.
type Deck struct {
	cards map[card.Card]struct{}
}

// Build enumerates every figure — the suit/rank cross product, the trumps,
// and the Fool — into a fresh deck. It always yields exactly Size cards.
func Build() *Deck {
	d := &Deck{cards: make(map[card.Card]struct{}, Size)}
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			d.add(card.New(card.Base(s, r)))
		}
	}
	for _, t := range card.Trumps {
		d.add(card.New(card.TrumpFigure(t)))
	}
	d.add(card.New(card.Fool()))
	return d
}

func (d *Deck) add(c card.Card) {
	d.cards[c] = struct{}{}
}

// Len returns the number of distinct cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Contains reports whether the deck holds the card.
func (d *Deck) Contains(c card.Card) bool {
	_, ok := d.cards[c]
	return ok
}

// TotalPoints sums the scaled point values of every card in the deck. For a
// freshly built deck it equals the TotalPoints constant.
func (d *Deck) TotalPoints() int {
	total := 0
	for c := range d.cards {
		total += c.Points()
	}
	return total
}

// Cards returns the member cards. The order follows map iteration and is not
// stable across runs; callers that need a deterministic listing must sort,
// for example with card.DeckOrder.
func (d *Deck) Cards() []card.Card {
	cs := make([]card.Card, 0, len(d.cards))
	for c := range d.cards {
		cs = append(cs, c)
	}
	return cs
}

// String joins the textual form of every card with single spaces. Like
// Cards, the order is unspecified.
func (d *Deck) String() string {
	names := make([]string, 0, len(d.cards))
	for c := range d.cards {
		names = append(names, c.String())
	}
	return strings.Join(names, " ")
}
