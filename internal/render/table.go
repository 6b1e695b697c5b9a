// Package render prints a shop's stock as a fenced text table.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/herb-market/internal/market"
)

// Column headers, in output order.
const (
	HeaderHerb     = "Herb"
	HeaderQuantity = "Quantity"
	HeaderPrice    = "Price (gp)"
)

const fence = "```"

var (
	textCell   = lipgloss.NewStyle().Padding(0, 1)
	numberCell = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// ParseLocale validates a BCP 47 tag used for number formatting. An empty
// tag yields language.Und, which prints plain digits.
func ParseLocale(raw string) (language.Tag, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", raw, err)
	}
	return tag, nil
}

// Table writes entries, in the given order, as a table wrapped in a
// Markdown code fence so it pastes cleanly into chat.
func Table(w io.Writer, entries []market.StockEntry, locale language.Tag) error {
	formatInt := strconv.Itoa
	if locale != language.Und {
		printer := message.NewPrinter(locale)
		formatInt = func(n int) string { return printer.Sprintf("%d", n) }
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Herb.Name,
			formatInt(entry.Quantity),
			formatInt(entry.Price),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(HeaderHerb, HeaderQuantity, HeaderPrice).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row != table.HeaderRow && col > 0 {
				return numberCell
			}
			return textCell
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", fence, t.Render(), fence)
	return err
}
