package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pixelcasino/internal/randutil"
)

func TestCanonicalOrder(t *testing.T) {
	cards := Canonical()
	require.Len(t, cards, Size)
	assert.Equal(t, NewCard(Spades, Ace), cards[0])
	assert.Equal(t, NewCard(Spades, King), cards[12])
	assert.Equal(t, NewCard(Clubs, Ace), cards[13])
	assert.Equal(t, NewCard(Diamonds, King), cards[51])
}

func TestNewDeckHasAllCards(t *testing.T) {
	d := New(randutil.New(1))
	assert.Equal(t, Size, d.Remaining())

	seen := make(map[Card]bool)
	for range Size {
		c := d.Draw()
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, Size)
	assert.Equal(t, 0, d.Remaining())
	assert.Equal(t, 0, d.Refills())
}

func TestDeckConservation(t *testing.T) {
	d := New(randutil.New(7))
	var hand []Card
	for i := range 30 {
		hand = append(hand, d.Draw())
		assert.Equal(t, Size, d.Remaining()+len(hand), "after %d draws", i+1)
		assert.Equal(t, len(hand), d.Dealt())
	}
}

func TestDrawRefillsWhenEmpty(t *testing.T) {
	d := New(randutil.New(3))
	for range Size {
		d.Draw()
	}
	require.Equal(t, 0, d.Remaining())

	c := d.Draw()
	assert.NotEqual(t, Card{}, c)
	assert.Equal(t, 1, d.Refills())
	assert.Equal(t, Size-1, d.Remaining())
	assert.Equal(t, 1, d.Dealt())
}

func TestShuffleIsSeeded(t *testing.T) {
	a := New(randutil.New(99))
	b := New(randutil.New(99))
	for range Size {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

func TestShuffleIsRoughlyUniform(t *testing.T) {
	// Position of the Ace of spades after shuffling should be spread evenly.
	const trials = 52 * 400
	rng := randutil.New(2024)
	counts := make([]int, Size)
	target := NewCard(Spades, Ace)
	for range trials {
		d := New(rng)
		for pos := range Size {
			if d.Draw() == target {
				counts[pos]++
				break
			}
		}
	}
	for pos, n := range counts {
		assert.InDelta(t, 400, n, 100, "position %d", pos)
	}
}

func TestNewStackedDealsInOrder(t *testing.T) {
	cards := MustParseCards("As Kd 7c")
	d := NewStacked(randutil.New(1), cards...)
	assert.Equal(t, 3, d.Remaining())

	top, ok := d.Peek()
	require.True(t, ok)
	assert.Equal(t, cards[0], top)

	for _, want := range cards {
		assert.Equal(t, want, d.Draw())
	}
	_, ok = d.Peek()
	assert.False(t, ok)

	d.Draw()
	assert.Equal(t, 1, d.Refills())
	assert.Equal(t, Size-1, d.Remaining())
}
