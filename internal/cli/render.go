package cli

import (
	"fmt"
	"strings"

	"github.com/evomoney/evomoney/internal/diagram"
	"github.com/evomoney/evomoney/internal/verify"
)

// RenderResults formats a verification report as a styled pass/fail
// table with one line per law and indented violations.
func RenderResults(title string, results []verify.Result) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")

	for _, r := range results {
		if r.Passed {
			b.WriteString(fmt.Sprintf("  %s %s\n", SuccessStyle.Render("✓"), r.Law))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", ErrorStyle.Render("✗"), r.Law))
		for _, v := range r.Violations {
			b.WriteString(SubtleStyle.Render(fmt.Sprintf("      %s", v)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderLog formats a bill-of-exchange transaction log: one line per
// transition with its date, state, and bookings.
func RenderLog(entries []diagram.LogEntry) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Bill of exchange transaction log"))
	b.WriteString("\n")

	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			SubtleStyle.Render(e.Timestamp.Format("2006-01-02")),
			BoldStyle.Render(string(e.State))))

		if e.Quote != nil {
			b.WriteString(fmt.Sprintf("      pv %.2f  discount %.2f  (rate %.2f%%, %.2fy)\n",
				e.Quote.PV, e.Quote.Discount, e.Quote.Rate*100, e.Quote.Years))
		}

		for _, booking := range e.Diagram.Bookings {
			b.WriteString(fmt.Sprintf("      %s.%s %+.2f  /  %s.%s %+.2f\n",
				booking.Debit.Agent, booking.Debit.Account, booking.Debit.Amount,
				booking.Credit.Agent, booking.Credit.Account, booking.Credit.Amount))
		}
	}

	return b.String()
}
