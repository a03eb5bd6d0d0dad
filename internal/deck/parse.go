package deck

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseCard parses a single card such as "As", "10h", "Th" or "K♦".
// Letters are case insensitive.
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	suit, err := parseSuit(runes[len(runes)-1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	rank, err := parseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return NewCard(suit, rank), nil
}

// ParseCards parses a whitespace or comma separated list of cards,
// e.g. "As Ks Qs Js 10s".
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixtures; it panics on bad input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseSuit(r rune) (Suit, error) {
	switch unicode.ToLower(r) {
	case 's', '♠':
		return Spades, nil
	case 'c', '♣':
		return Clubs, nil
	case 'h', '♥':
		return Hearts, nil
	case 'd', '♦':
		return Diamonds, nil
	}
	return 0, fmt.Errorf("unknown suit %q", r)
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "T", "10":
		return Ten, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}
