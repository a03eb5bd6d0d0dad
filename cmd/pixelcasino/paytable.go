package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/pixelcasino/internal/slots"
	"github.com/lox/pixelcasino/internal/videopoker"
)

type PaytableCmd struct {
	Config string `short:"c" default:"pixelcasino.hcl" help:"Path to HCL configuration file"`
}

func (c *PaytableCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	printPaytable(os.Stdout, cfg.SlotSymbols())
	return nil
}

// printPaytable writes the video poker paytable and the slot odds for
// symbols.
func printPaytable(w io.Writer, symbols []slots.Symbol) {
	poker := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Video Poker", "Pays")
	for _, e := range videopoker.Paytable() {
		poker.Row(e.Category.String(), fmt.Sprintf("%dx", e.Multiplier))
	}
	fmt.Fprintln(w, poker.Render())

	odds := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Symbol", "Weight", "Per reel", "Three in a row", "Pays", "Return")
	for _, o := range slots.Odds(symbols) {
		odds.Row(
			fmt.Sprintf("%s %s", o.Symbol.Glyph, o.Symbol.Name),
			fmt.Sprintf("%d", o.Symbol.Weight),
			fmt.Sprintf("%.2f%%", o.Probability*100),
			fmt.Sprintf("1 in %.0f", 1/o.ThreeProbability),
			fmt.Sprintf("%dx", o.Symbol.ThreePayout),
			fmt.Sprintf("%.2f%%", o.Return*100),
		)
	}
	fmt.Fprintln(w, odds.Render())
	fmt.Fprintf(w, "Slots return to player: %.2f%%\n", slots.ReturnToPlayer(symbols)*100)
}
