package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"StoreManager/internal/catalog"
	"StoreManager/internal/store"
)

var (
	accent  = lipgloss.Color("#D97706")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	dim     = lipgloss.Color("#6B7280")
)

// renderer formats store records as console text. Styles degrade to plain
// text when out is not a terminal.
type renderer struct {
	title  lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style
	muted  lipgloss.Style
	prices *message.Printer
}

func newRenderer(out io.Writer) *renderer {
	r := lipgloss.NewRenderer(out)
	return &renderer{
		title:  r.NewStyle().Bold(true).Foreground(accent),
		ok:     r.NewStyle().Foreground(success),
		fail:   r.NewStyle().Foreground(danger),
		muted:  r.NewStyle().Foreground(dim),
		prices: message.NewPrinter(language.English),
	}
}

func (r *renderer) price(v float64) string {
	return r.prices.Sprintf("$%.2f", v)
}

func (r *renderer) product(p catalog.Product) string {
	return r.prices.Sprintf("Product [ID: %s, Name: %s, Price: %s]", p.ID, p.Name, r.price(p.Price))
}

func (r *renderer) summary(s store.Summary) string {
	return r.prices.Sprintf("Customer [ID: %s, Name: %s, Orders: %d]", s.CustomerID, s.Name, s.OrderCount)
}
