package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical card IDs, in the dotted style used across arcanaland tooling:
// "fool", "trump.1" through "trump.21", and "<suit>.<rank>" such as
// "spade.ace" or "club.king". IDs are lowercase and round-trip through
// ParseCard and Card.ID.

// ID returns the canonical ID of the card.
func (c Card) ID() string {
	f := c.figure
	switch f.kind {
	case KindFool:
		return "fool"
	case KindTrump:
		return fmt.Sprintf("trump.%d", f.trump)
	}
	return fmt.Sprintf("%s.%s", strings.ToLower(f.suit.String()), strings.ToLower(f.rank.String()))
}

// ParseCard parses a canonical card ID.
func ParseCard(id string) (Card, error) {
	if strings.ToLower(id) == "fool" {
		return New(Fool()), nil
	}
	parts := strings.Split(id, ".")
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("invalid card ID format: %s", id)
	}
	if strings.ToLower(parts[0]) == "trump" {
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < int(MinTrump) || n > int(MaxTrump) {
			return Card{}, fmt.Errorf("no such trump '%s' (want 1-21)", parts[1])
		}
		return New(TrumpFigure(Trump(n))), nil
	}
	s, err := ParseSuit(parts[0])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card ID %s: %v", id, err)
	}
	r, err := ParseRank(parts[1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card ID %s: %v", id, err)
	}
	return New(Base(s, r)), nil
}

// ParseSuit parses a suit name, case-insensitively.
func ParseSuit(name string) (Suit, error) {
	for _, s := range Suits {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return Spade, fmt.Errorf("no such suit '%s'", name)
}

// ParseRank parses a rank name, case-insensitively.
func ParseRank(name string) (Rank, error) {
	for _, r := range Ranks {
		if strings.EqualFold(name, r.String()) {
			return r, nil
		}
	}
	return Ace, fmt.Errorf("no such rank '%s'", name)
}

// DeckOrder is a comparison function for sorting cards into the fixed display
// enumeration: suited cards by suit then rank, then the trumps ascending,
// then the Fool. It is a presentation order, unrelated to trick strength.
func DeckOrder(a, b Card) int {
	ka, kb := deckKey(a), deckKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	return 0
}

func deckKey(c Card) int {
	f := c.figure
	switch f.kind {
	case KindBase:
		return int(f.suit)*len(Ranks) + int(f.rank)
	case KindTrump:
		return len(Suits)*len(Ranks) + int(f.trump) - 1
	}
	return len(Suits)*len(Ranks) + int(MaxTrump)
}
