package card

// Ordering is the result of comparing two values.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Unknown"
}

// Suit is one of the four non-trump suits.
type Suit int

const (
	Spade Suit = iota
	Heart
	Diamond
	Club
)

// Suits lists every suit in declaration order.
var Suits = []Suit{Spade, Heart, Diamond, Club}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "Spade"
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	case Club:
		return "Club"
	}
	return "Unknown"
}

// Compare is the directional suit comparison used while a trick is being
// resolved. The receiver is by convention the suit that was led: a suit equal
// to it compares Equal, and any other suit loses to it, so the result is
// Greater no matter which suit the receiver is. This is deliberately not an
// order relation (both a.Compare(b) and b.Compare(a) are Greater when a != b).
// Callers that cannot guarantee the led suit is the receiver should use
// Resolve instead.
func (s Suit) Compare(other Suit) Ordering {
	if s == other {
		return Equal
	}
	return Greater
}

// Rank is the strength of a suited card, Ace lowest through King highest.
// The tarot family plays with fourteen ranks per suit, inserting the Knight
// between Jack and Queen.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Knight
	Queen
	King
)

// Ranks lists every rank in ascending strength.
var Ranks = []Rank{
	Ace, Two, Three, Four, Five, Six, Seven,
	Eight, Nine, Ten, Jack, Knight, Queen, King,
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Knight:
		return "Knight"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "Unknown"
}

// Compare orders ranks by strength.
func (r Rank) Compare(other Rank) Ordering {
	return compareInt(int(r), int(other))
}

// Trump is the strength of a trump card, 1 (weakest) through 21 (strongest).
type Trump int

const (
	MinTrump Trump = 1
	MaxTrump Trump = 21
)

// Trumps lists every trump in ascending strength.
var Trumps = func() []Trump {
	ts := make([]Trump, 0, MaxTrump)
	for t := MinTrump; t <= MaxTrump; t++ {
		ts = append(ts, t)
	}
	return ts
}()

var trumpNames = [...]string{
	"One", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
	"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen",
	"Nineteen", "Twenty", "TwentyOne",
}

func (t Trump) String() string {
	if t < MinTrump || t > MaxTrump {
		return "Unknown"
	}
	return trumpNames[t-1]
}

// Compare orders trumps by strength.
func (t Trump) Compare(other Trump) Ordering {
	return compareInt(int(t), int(other))
}

func compareInt(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}
