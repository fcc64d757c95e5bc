package diagram_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evomoney/evomoney/internal/common"
	"github.com/evomoney/evomoney/internal/diagram"
	"github.com/evomoney/evomoney/internal/verify"
)

func boeTerms() diagram.Terms {
	return diagram.Terms{
		FaceValue:       5000,
		CentralBankRate: 0.05,
		CommercialRate:  0.10,
		Buyer:           "Firm",
		Seller:          "Household",
		BuyerBank:       "BuyerBank",
		SellerBank:      "SellerBank",
	}
}

// boeTimeline places the seller-bank acceptance exactly a quarter year
// before maturity so the present value matches the closed form.
func boeTimeline() []time.Time {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	maturity := base.Add(2880 * time.Hour) // 120 days

	return []time.Time{
		base,                            // delivered
		base.Add(24 * time.Hour),        // created
		maturity.Add(-2190 * time.Hour), // accepted_by_seller_bank, 0.25y to maturity
		base.Add(1200 * time.Hour),      // accepted_by_buyer_bank
		maturity,                        // matured
		maturity.Add(72 * time.Hour),    // settled
	}
}

func TestPresentValue(t *testing.T) {
	pv := diagram.PresentValue(5000, 0.10, 0.25)

	assert.InDelta(t, 4878.0488, pv, 1e-4)
	assert.InDelta(t, 121.9512, 5000-pv, 1e-4)
}

func TestLifecycle_FullRun(t *testing.T) {
	lifecycle, err := diagram.NewLifecycle(boeTerms(), boeTimeline())
	require.NoError(t, err)
	assert.Empty(t, lifecycle.State())

	wantStates := []diagram.State{
		diagram.StateDelivered,
		diagram.StateCreated,
		diagram.StateAcceptedBySellerBank,
		diagram.StateAcceptedByBuyerBank,
		diagram.StateMatured,
		diagram.StateSettled,
	}

	var diagrams []*diagram.Diagram
	for i, date := range boeTimeline() {
		d, err := lifecycle.Advance(date)
		require.NoError(t, err, "transition %d", i)
		assert.Equal(t, wantStates[i], lifecycle.State())
		diagrams = append(diagrams, d)
	}
	assert.True(t, lifecycle.Done())

	t.Run("every transition balances per agent", func(t *testing.T) {
		for _, d := range diagrams {
			micro := verify.MicroInvariance(d)
			assert.True(t, micro.Passed, "%s: %v", d.Event, micro.Violations)
		}
	})

	t.Run("claims and liabilities net to zero over the whole run", func(t *testing.T) {
		macro := verify.MacroInvariance(diagram.CanonicalPairs(), diagrams...)
		assert.True(t, macro.Passed, "%v", macro.Violations)
	})

	t.Run("transaction log records every transition in order", func(t *testing.T) {
		log := lifecycle.Log()
		require.Len(t, log, len(wantStates))
		for i, entry := range log {
			assert.Equal(t, wantStates[i], entry.State)
			assert.True(t, entry.Timestamp.Equal(boeTimeline()[i]))
			assert.Equal(t, diagrams[i], entry.Diagram)
		}
	})
}

func TestLifecycle_PresentValueQuotes(t *testing.T) {
	lifecycle, err := diagram.NewLifecycle(boeTerms(), boeTimeline())
	require.NoError(t, err)

	for _, date := range boeTimeline() {
		_, err := lifecycle.Advance(date)
		require.NoError(t, err)
	}

	log := lifecycle.Log()

	t.Run("delivery carries no quote", func(t *testing.T) {
		assert.Nil(t, log[0].Quote)
	})

	t.Run("seller-bank acceptance discounts at the commercial rate", func(t *testing.T) {
		quote := log[2].Quote
		require.NotNil(t, quote)
		assert.InDelta(t, 0.25, quote.Years, 1e-9)
		assert.InDelta(t, 4878.0488, quote.PV, 1e-4)
		assert.InDelta(t, 121.9512, quote.Discount, 1e-4)
	})

	t.Run("interbank spread splits evenly", func(t *testing.T) {
		sellerPV := log[2].Quote.PV
		centralPV := log[3].Quote.PV
		require.Greater(t, centralPV, sellerPV)

		wantPrice := sellerPV + (centralPV-sellerPV)/2

		transfer := log[3].Diagram
		require.NotEmpty(t, transfer.Bookings)
		assert.Equal(t, diagram.AccountInterbankReceivable, transfer.Bookings[0].Debit.Account)
		assert.InDelta(t, wantPrice, transfer.Bookings[0].Debit.Amount, 1e-9)
	})
}

func TestLifecycle_TimelineOrder(t *testing.T) {
	timeline := boeTimeline()

	t.Run("skipping a date fails", func(t *testing.T) {
		lifecycle, err := diagram.NewLifecycle(boeTerms(), timeline)
		require.NoError(t, err)

		_, err = lifecycle.Advance(timeline[1])
		assert.ErrorIs(t, err, common.ErrInvalidTimelineOrder)
	})

	t.Run("replaying a date fails", func(t *testing.T) {
		lifecycle, err := diagram.NewLifecycle(boeTerms(), timeline)
		require.NoError(t, err)

		_, err = lifecycle.Advance(timeline[0])
		require.NoError(t, err)
		_, err = lifecycle.Advance(timeline[0])
		assert.ErrorIs(t, err, common.ErrInvalidTimelineOrder)
	})

	t.Run("advancing past settlement fails", func(t *testing.T) {
		lifecycle, err := diagram.NewLifecycle(boeTerms(), timeline)
		require.NoError(t, err)

		for _, date := range timeline {
			_, err := lifecycle.Advance(date)
			require.NoError(t, err)
		}
		_, err = lifecycle.Advance(timeline[len(timeline)-1].Add(time.Hour))
		assert.ErrorIs(t, err, common.ErrInvalidTimelineOrder)
	})
}

func TestNewLifecycle_Validation(t *testing.T) {
	timeline := boeTimeline()

	tests := []struct {
		name     string
		terms    diagram.Terms
		timeline []time.Time
		wantErr  error
	}{
		{
			name: "timeline too short",
			terms: boeTerms(), timeline: timeline[:4],
			wantErr: common.ErrInvalidTimelineOrder,
		},
		{
			name:  "non-increasing timeline",
			terms: boeTerms(),
			timeline: []time.Time{
				timeline[0], timeline[2], timeline[1], timeline[3], timeline[4], timeline[5],
			},
			wantErr: common.ErrInvalidTimelineOrder,
		},
		{
			name: "zero face value",
			terms: func() diagram.Terms {
				terms := boeTerms()
				terms.FaceValue = 0
				return terms
			}(),
			timeline: timeline,
			wantErr:  common.ErrInvalidConfig,
		},
		{
			name: "missing agent",
			terms: func() diagram.Terms {
				terms := boeTerms()
				terms.BuyerBank = ""
				return terms
			}(),
			timeline: timeline,
			wantErr:  common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := diagram.NewLifecycle(tt.terms, tt.timeline)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
