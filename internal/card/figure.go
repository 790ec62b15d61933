package card

import "fmt"

// Kind tags the variant of a Figure. The declaration order doubles as the
// structural tier used when figures of different kinds are compared:
//
//	Fool (0) < Base (1) < Trump (2)
//
// The Base < Trump step is what makes any trump outrank any suited card. The
// Fool tier is structural bookkeeping only; where the Fool really sits during
// play is a rule for a trick-resolution engine, not for this model.
type Kind int

const (
	KindFool Kind = iota
	KindBase
	KindTrump
)

func (k Kind) String() string {
	switch k {
	case KindFool:
		return "Fool"
	case KindBase:
		return "Base"
	case KindTrump:
		return "Trump"
	}
	return "Unknown"
}

// Figure is the identity of a playable card: the Fool, a suited card, or a
// trump. Figures are immutable, comparable values and can key maps. The
// constructors below are the only way to build one, so a Figure never carries
// a payload that disagrees with its kind.
type Figure struct {
	kind  Kind
	suit  Suit
	rank  Rank
	trump Trump
}

// Fool returns the excuse figure, outside both hierarchies.
func Fool() Figure {
	return Figure{kind: KindFool}
}

// Base returns the figure of a suited card.
func Base(s Suit, r Rank) Figure {
	return Figure{kind: KindBase, suit: s, rank: r}
}

// TrumpFigure returns the figure of a trump card. Strengths outside 1..21 are
// clamped into range; the full enumeration never produces one.
func TrumpFigure(t Trump) Figure {
	if t < MinTrump {
		t = MinTrump
	}
	if t > MaxTrump {
		t = MaxTrump
	}
	return Figure{kind: KindTrump, trump: t}
}

// Kind reports the variant of the figure.
func (f Figure) Kind() Kind { return f.kind }

// Suit returns the suit of a Base figure. Meaningless for other kinds.
func (f Figure) Suit() Suit { return f.suit }

// Rank returns the rank of a Base figure. Meaningless for other kinds.
func (f Figure) Rank() Rank { return f.rank }

// Trump returns the strength of a Trump figure. Meaningless for other kinds.
func (f Figure) Trump() Trump { return f.trump }

// Compare ranks two figures for trick evaluation. The rules apply in this
// precedence:
//
//  1. figures of different kinds compare by structural tier (see Kind),
//     which also gives every Trump the win over every Base;
//  2. Trump vs Trump compares by strength;
//  3. Base vs Base compares suits by the directional rule first, then ranks.
//
// Because of the suit rule, the receiver must be the card that follows the
// led suit when the comparison decides a trick.
func (f Figure) Compare(other Figure) Ordering {
	if f.kind != other.kind {
		return compareInt(int(f.kind), int(other.kind))
	}
	switch f.kind {
	case KindTrump:
		return f.trump.Compare(other.trump)
	case KindBase:
		if c := f.suit.Compare(other.suit); c != Equal {
			return c
		}
		return f.rank.Compare(other.rank)
	}
	return Equal
}

// Points returns the scoring weight of the figure, scaled by ten so the
// half-point card values stay exact integers: the Fool, the One and the
// TwentyOne of trumps and the Kings are worth 4.5 points (45), Queens 3.5
// (35), Knights 2.5 (25), Jacks 1.5 (15), and everything else 0.5 (5).
func (f Figure) Points() int {
	switch f.kind {
	case KindFool:
		return 45
	case KindTrump:
		if f.trump == MinTrump || f.trump == MaxTrump {
			return 45
		}
		return 5
	}
	switch f.rank {
	case Jack:
		return 15
	case Knight:
		return 25
	case Queen:
		return 35
	case King:
		return 45
	}
	return 5
}

func (f Figure) String() string {
	switch f.kind {
	case KindFool:
		return "Fool"
	case KindTrump:
		return fmt.Sprintf("%s of Trumps", f.trump)
	}
	return fmt.Sprintf("%s of %ss", f.rank, f.suit)
}

// Card is the unit of deck membership: exactly one figure, nothing else.
// Equality and hashing are structural over the figure, and the point value is
// always derived from it, so identity and score cannot drift apart.
type Card struct {
	figure Figure
}

// New wraps a figure into a card.
func New(f Figure) Card {
	return Card{figure: f}
}

// Figure returns the identity of the card.
func (c Card) Figure() Figure { return c.figure }

// Points returns the card's scaled scoring weight.
func (c Card) Points() int { return c.figure.Points() }

// Compare ranks the card against another, with the same led-suit convention
// as Figure.Compare.
func (c Card) Compare(other Card) Ordering {
	return c.figure.Compare(other.figure)
}

func (c Card) String() string {
	return c.figure.String()
}

// Resolve reports which of two cards wins a head-to-head comparison in a
// trick where led was the suit led. It exists so that callers never have to
// remember the operand-position convention of the directional comparisons:
// the led suit is explicit, and the card following it is put on the correct
// side before comparing. When exactly one card follows the led suit the
// result is the same whichever way a and b are passed.
//
// When neither or both cards follow the led suit there is no suited card to
// orient by and a, the earlier-played card, keeps the positional advantage.
func Resolve(led Suit, a, b Card) Card {
	follows := func(c Card) bool {
		return c.figure.kind == KindBase && c.figure.suit == led
	}
	if follows(b) && !follows(a) {
		if b.Compare(a) == Less {
			return a
		}
		return b
	}
	if a.Compare(b) == Less {
		return b
	}
	return a
}
