package card

import "testing"

func TestCardIDRoundTrip(t *testing.T) {
	tests := []struct {
		card Card
		id   string
	}{
		{New(Fool()), "fool"},
		{New(TrumpFigure(MinTrump)), "trump.1"},
		{New(TrumpFigure(MaxTrump)), "trump.21"},
		{New(Base(Spade, Ace)), "spade.ace"},
		{New(Base(Heart, Knight)), "heart.knight"},
		{New(Base(Club, King)), "club.king"},
	}
	for _, tt := range tests {
		if got := tt.card.ID(); got != tt.id {
			t.Errorf("%s.ID() = %q, want %q", tt.card, got, tt.id)
		}
		parsed, err := ParseCard(tt.id)
		if err != nil {
			t.Errorf("ParseCard(%q) error: %v", tt.id, err)
			continue
		}
		if parsed != tt.card {
			t.Errorf("ParseCard(%q) = %s, want %s", tt.id, parsed, tt.card)
		}
	}
}

func TestParseCardErrors(t *testing.T) {
	for _, id := range []string{"", "spade", "spade.fifteen", "wand.ace", "trump.0", "trump.22", "trump.x", "spade.ace.extra"} {
		if _, err := ParseCard(id); err == nil {
			t.Errorf("ParseCard(%q) should fail", id)
		}
	}
}

func TestParseSuitCaseInsensitive(t *testing.T) {
	s, err := ParseSuit("HEART")
	if err != nil {
		t.Fatalf("ParseSuit(HEART) error: %v", err)
	}
	if s != Heart {
		t.Errorf("ParseSuit(HEART) = %s, want Heart", s)
	}
}

func TestDeckOrder(t *testing.T) {
	// spades before hearts, ranks ascending, trumps after suits, Fool last
	ordered := []Card{
		New(Base(Spade, Ace)),
		New(Base(Spade, King)),
		New(Base(Heart, Ace)),
		New(Base(Club, King)),
		New(TrumpFigure(MinTrump)),
		New(TrumpFigure(MaxTrump)),
		New(Fool()),
	}
	for i := 0; i < len(ordered)-1; i++ {
		if DeckOrder(ordered[i], ordered[i+1]) >= 0 {
			t.Errorf("DeckOrder(%s, %s) should be negative", ordered[i], ordered[i+1])
		}
	}
	if DeckOrder(ordered[0], ordered[0]) != 0 {
		t.Errorf("DeckOrder of a card with itself should be 0")
	}
}
