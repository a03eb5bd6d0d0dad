package tui

import "slices"

// BetSelector tracks the stake chosen on a game screen. Options are the
// chip values; the selected chip is the step that raise and lower move by.
// In chip mode the stake is always exactly the selected chip.
type BetSelector struct {
	options  []int
	chip     int
	amount   int
	chipMode bool
}

// NewBetSelector creates a selector stepping by chip values, starting at
// initial. An initial stake below the smallest chip starts at that chip.
func NewBetSelector(options []int, initial int) *BetSelector {
	b := &BetSelector{options: slices.Clone(options), amount: initial}
	if len(b.options) == 0 {
		b.options = []int{1}
	}
	if b.amount < b.options[0] {
		b.amount = b.options[0]
	}
	return b
}

// NewChipSelector creates a selector whose stake is the selected chip.
func NewChipSelector(options []int) *BetSelector {
	b := NewBetSelector(options, 0)
	b.chipMode = true
	b.amount = b.options[0]
	return b
}

// Amount is the current stake.
func (b *BetSelector) Amount() int { return b.amount }

// Chip is the selected chip value.
func (b *BetSelector) Chip() int { return b.options[b.chip] }

// Options returns the chip values.
func (b *BetSelector) Options() []int { return b.options }

// ChipIndex is the position of the selected chip.
func (b *BetSelector) ChipIndex() int { return b.chip }

// NextChip selects the next larger chip, wrapping around.
func (b *BetSelector) NextChip() {
	b.selectChip((b.chip + 1) % len(b.options))
}

// PrevChip selects the next smaller chip, wrapping around.
func (b *BetSelector) PrevChip() {
	b.selectChip((b.chip + len(b.options) - 1) % len(b.options))
}

func (b *BetSelector) selectChip(i int) {
	b.chip = i
	if b.chipMode {
		b.amount = b.options[i]
	}
}

// Raise adds one chip to the stake, never above balance. In chip mode it
// selects the next larger chip instead.
func (b *BetSelector) Raise(balance int) {
	if b.chipMode {
		if b.chip < len(b.options)-1 {
			b.selectChip(b.chip + 1)
		}
		return
	}
	next := b.amount + b.Chip()
	if next > balance {
		next = max(balance, b.amount)
	}
	b.amount = next
}

// Lower removes one chip from the stake, never below the smallest chip. In
// chip mode it selects the next smaller chip instead.
func (b *BetSelector) Lower() {
	if b.chipMode {
		if b.chip > 0 {
			b.selectChip(b.chip - 1)
		}
		return
	}
	b.amount = max(b.amount-b.Chip(), b.options[0])
}

// Clamp pulls the stake down to balance when it can no longer be covered,
// as long as balance still reaches the smallest chip.
func (b *BetSelector) Clamp(balance int) {
	if b.chipMode || b.amount <= balance || balance < b.options[0] {
		return
	}
	b.amount = balance
}
