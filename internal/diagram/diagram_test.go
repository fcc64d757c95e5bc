package diagram_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evomoney/evomoney/internal/category"
	"github.com/evomoney/evomoney/internal/diagram"
	"github.com/evomoney/evomoney/internal/verify"
)

var bookingDate = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

func TestMoneyCreation(t *testing.T) {
	d, err := diagram.MoneyCreation(1000, bookingDate)
	require.NoError(t, err)

	postings := d.Postings()
	require.Len(t, postings, 2)

	assert.Equal(t, diagram.AccountPaperMoney, postings[0].Account)
	assert.Equal(t, category.KindAsset, postings[0].Kind)
	assert.InDelta(t, 1000, postings[0].Amount, 1e-9)

	assert.Equal(t, diagram.AccountPaperMoneyCirculation, postings[1].Account)
	assert.Equal(t, category.KindLiability, postings[1].Kind)
	assert.InDelta(t, -1000, postings[1].Amount, 1e-9)

	micro := verify.MicroInvariance(d)
	assert.True(t, micro.Passed, "money creation must balance on the central bank's books: %v", micro.Violations)
}

func TestLoan(t *testing.T) {
	d, err := diagram.Loan(diagram.AgentCentralBank, "Bank", 200, bookingDate)
	require.NoError(t, err)

	t.Run("claim and liability mirror each other", func(t *testing.T) {
		var claim, liability float64
		for _, p := range d.Postings() {
			switch p.Account {
			case diagram.AccountLoansToBanks:
				claim += p.Amount
			case diagram.AccountLoansFromCB:
				liability += p.Amount
			}
		}
		assert.InDelta(t, 200, claim, 1e-9)
		assert.InDelta(t, -200, liability, 1e-9)
	})

	t.Run("invariance holds", func(t *testing.T) {
		assert.True(t, verify.MicroInvariance(d).Passed)
		assert.True(t, verify.MacroInvariance(diagram.CanonicalPairs(), d).Passed)
	})
}

func TestPurchase(t *testing.T) {
	d, err := diagram.Purchase("Firm", "Household", 150, bookingDate)
	require.NoError(t, err)

	assert.True(t, verify.MicroInvariance(d).Passed)
	assert.True(t, verify.MacroInvariance(diagram.CanonicalPairs(), d).Passed)

	laws := verify.LawSuite(d.Category)
	for _, r := range laws {
		assert.True(t, r.Passed, "law %s violated: %v", r.Law, r.Violations)
	}
}

func TestNew_RejectsMisSignedBookings(t *testing.T) {
	tests := []struct {
		name    string
		booking diagram.Booking
	}{
		{
			name: "negative debit",
			booking: diagram.Booking{
				Debit:  diagram.Posting{Agent: "A", Account: "X", Amount: -10},
				Credit: diagram.Posting{Agent: "A", Account: "Y", Amount: -10},
			},
		},
		{
			name: "positive credit",
			booking: diagram.Booking{
				Debit:  diagram.Posting{Agent: "A", Account: "X", Amount: 10},
				Credit: diagram.Posting{Agent: "A", Account: "Y", Amount: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := diagram.New("bad", bookingDate, []diagram.Booking{tt.booking})
			assert.Error(t, err)
		})
	}
}
