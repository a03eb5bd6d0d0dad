package videopoker

import (
	"github.com/lox/pixelcasino/internal/deck"
)

// HandSize is the number of cards in a video poker hand.
const HandSize = 5

// Category is a paying hand class. Its numeric value is the rank used for
// ordering; higher is stronger. Rank 1 is unused because low pairs do not pay.
type Category int

const (
	NoWin         Category = 0
	JacksOrBetter Category = 2
	TwoPair       Category = 3
	ThreeOfAKind  Category = 4
	Straight      Category = 5
	Flush         Category = 6
	FullHouse     Category = 7
	FourOfAKind   Category = 8
	StraightFlush Category = 9
	RoyalFlush    Category = 10
)

// String returns the name shown on the paytable.
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case JacksOrBetter:
		return "Jacks or Better"
	default:
		return "No Win"
	}
}

// Rank returns the ordering value of the category.
func (c Category) Rank() int {
	return int(c)
}

// Multiplier returns how many times the bet the category pays.
func (c Category) Multiplier() int {
	switch c {
	case RoyalFlush:
		return 250
	case StraightFlush:
		return 50
	case FourOfAKind:
		return 25
	case FullHouse:
		return 9
	case Flush:
		return 6
	case Straight:
		return 4
	case ThreeOfAKind:
		return 3
	case TwoPair:
		return 2
	case JacksOrBetter:
		return 1
	default:
		return 0
	}
}

// Categories lists every category from strongest to weakest.
var Categories = [...]Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, JacksOrBetter, NoWin,
}

// PaytableEntry is one row of the paytable.
type PaytableEntry struct {
	Category   Category
	Multiplier int
}

// Paytable returns the paying categories, strongest first.
func Paytable() []PaytableEntry {
	entries := make([]PaytableEntry, 0, len(Categories))
	for _, c := range Categories {
		if c.Multiplier() > 0 {
			entries = append(entries, PaytableEntry{Category: c, Multiplier: c.Multiplier()})
		}
	}
	return entries
}

// Result is the classification of a five card hand.
type Result struct {
	Category   Category
	Name       string
	Rank       int
	Multiplier int
}

// Pays reports whether the hand wins anything.
func (r Result) Pays() bool {
	return r.Multiplier > 0
}

func resultFor(c Category) Result {
	return Result{Category: c, Name: c.String(), Rank: c.Rank(), Multiplier: c.Multiplier()}
}

// Evaluate classifies a five card hand. Categories are tested strongest
// first and the first match wins. Straights are Ace-high only: A-2-3-4-5
// does not count.
func Evaluate(cards [HandSize]deck.Card) Result {
	var counts [deck.Ace + 1]int
	flush := true
	high, low := deck.Two, deck.Ace
	for i, c := range cards {
		counts[c.Rank]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
		high = max(high, c.Rank)
		low = min(low, c.Rank)
	}

	// Largest and second largest group sizes, and whether any pair is
	// jacks or better.
	var first, second int
	highPair := false
	distinct := 0
	for rank, n := range counts {
		if n == 0 {
			continue
		}
		distinct++
		switch {
		case n > first:
			first, second = n, first
		case n > second:
			second = n
		}
		if n == 2 && deck.Rank(rank) >= deck.Jack {
			highPair = true
		}
	}
	straight := distinct == HandSize && high-low == HandSize-1

	switch {
	case flush && straight && high == deck.Ace:
		return resultFor(RoyalFlush)
	case flush && straight:
		return resultFor(StraightFlush)
	case first == 4:
		return resultFor(FourOfAKind)
	case first == 3 && second == 2:
		return resultFor(FullHouse)
	case flush:
		return resultFor(Flush)
	case straight:
		return resultFor(Straight)
	case first == 3:
		return resultFor(ThreeOfAKind)
	case first == 2 && second == 2:
		return resultFor(TwoPair)
	case first == 2 && highPair:
		return resultFor(JacksOrBetter)
	default:
		return resultFor(NoWin)
	}
}
