package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pixelcasino/internal/deck"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	CoinsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	HandInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	HiddenCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	HeldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	ReelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFD700")).
			Width(6).
			Align(lipgloss.Center)
)

// renderCard colours a card by suit.
func renderCard(card deck.Card) string {
	if card.IsRed() {
		return RedCardStyle.Render(card.String())
	}
	return BlackCardStyle.Render(card.String())
}

// formatCards formats cards with colors
func formatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return ""
	}

	formatted := make([]string, len(cards))
	for i, card := range cards {
		formatted[i] = renderCard(card)
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// formatCardsHidden formats cards with every card after the first face down.
func formatCardsHidden(cards []deck.Card) string {
	if len(cards) == 0 {
		return ""
	}

	formatted := []string{renderCard(cards[0])}
	for range cards[1:] {
		formatted = append(formatted, HiddenCardStyle.Render("??"))
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// renderMessage picks a style for a status line from its tone.
func renderMessage(msg string, tone Tone) string {
	if msg == "" {
		return ""
	}
	switch tone {
	case ToneWin:
		return SuccessStyle.Render(msg)
	case ToneLoss:
		return ErrorStyle.Render(msg)
	case ToneNotice:
		return WarningStyle.Render(msg)
	default:
		return HandInfoStyle.Render(msg)
	}
}

// Tone classifies a status message for colouring.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneWin
	ToneLoss
	ToneNotice
)
