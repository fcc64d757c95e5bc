package diagram

import (
	"fmt"
	"time"

	"github.com/evomoney/evomoney/internal/category"
	"github.com/evomoney/evomoney/internal/common"
)

// State is a stage of the bill-of-exchange lifecycle.
type State string

// Lifecycle states, in transition order. Settled is terminal.
const (
	StateDelivered            State = "delivered"
	StateCreated              State = "created"
	StateAcceptedBySellerBank State = "accepted_by_seller_bank"
	StateAcceptedByBuyerBank  State = "accepted_by_buyer_bank"
	StateMatured              State = "matured"
	StateSettled              State = "settled"
)

// stateOrder fixes the only legal transition sequence.
var stateOrder = []State{
	StateDelivered,
	StateCreated,
	StateAcceptedBySellerBank,
	StateAcceptedByBuyerBank,
	StateMatured,
	StateSettled,
}

// maturityIndex is the timeline position of the maturity date.
const maturityIndex = 4

// Terms carries the rate/parameter bundle of a bill of exchange.
type Terms struct {
	FaceValue       float64
	CentralBankRate float64
	CommercialRate  float64

	Buyer      string
	Seller     string
	BuyerBank  string
	SellerBank string
}

// PVQuote is a present-value calculation made at a discounting
// transition.
type PVQuote struct {
	Rate     float64
	Years    float64
	PV       float64
	Discount float64
}

// LogEntry records one lifecycle transition: when it happened, the
// state reached, the diagram booked, and the quote if the transition
// discounted the bill.
type LogEntry struct {
	Timestamp time.Time
	State     State
	Diagram   *Diagram
	Quote     *PVQuote
}

// Lifecycle is the bill-of-exchange state machine. Each Advance call
// must present the next date of the configured timeline; anything else
// fails with ErrInvalidTimelineOrder.
type Lifecycle struct {
	terms    Terms
	timeline []time.Time
	next     int
	log      []LogEntry

	sellerPV float64 // purchase price paid by the seller's bank
	price    float64 // interbank transfer price
}

// PresentValue discounts a face value over a simple-interest period:
// face / (1 + rate*years).
func PresentValue(face, rate, years float64) float64 {
	return face / (1 + rate*years)
}

const hoursPerYear = 24 * 365

// NewLifecycle validates the terms and the ordered event timeline (one
// date per transition, strictly increasing).
func NewLifecycle(terms Terms, timeline []time.Time) (*Lifecycle, error) {
	if terms.FaceValue <= 0 {
		return nil, fmt.Errorf("%w: face value must be positive", common.ErrInvalidConfig)
	}
	if terms.CentralBankRate < 0 || terms.CommercialRate < 0 {
		return nil, fmt.Errorf("%w: rates must be non-negative", common.ErrInvalidConfig)
	}
	for _, agent := range []string{terms.Buyer, terms.Seller, terms.BuyerBank, terms.SellerBank} {
		if agent == "" {
			return nil, fmt.Errorf("%w: all four agents must be named", common.ErrInvalidConfig)
		}
	}

	if len(timeline) != len(stateOrder) {
		return nil, fmt.Errorf("%w: timeline needs %d dates, got %d",
			common.ErrInvalidTimelineOrder, len(stateOrder), len(timeline))
	}
	for i := 1; i < len(timeline); i++ {
		if !timeline[i].After(timeline[i-1]) {
			return nil, fmt.Errorf("%w: timeline dates must be strictly increasing at position %d",
				common.ErrInvalidTimelineOrder, i)
		}
	}

	return &Lifecycle{
		terms:    terms,
		timeline: append([]time.Time(nil), timeline...),
	}, nil
}

// State returns the state reached by the last transition, or the empty
// string before the first one.
func (l *Lifecycle) State() State {
	if l.next == 0 {
		return ""
	}
	return stateOrder[l.next-1]
}

// Done reports whether the bill has been settled.
func (l *Lifecycle) Done() bool {
	return l.next >= len(stateOrder)
}

// Log returns the ordered transaction log of (timestamp, state,
// diagram) entries.
func (l *Lifecycle) Log() []LogEntry {
	return append([]LogEntry(nil), l.log...)
}

// yearsToMaturity measures the discounting period from a transition
// date to the maturity date.
func (l *Lifecycle) yearsToMaturity(at time.Time) float64 {
	return l.timeline[maturityIndex].Sub(at).Hours() / hoursPerYear
}

// Advance runs the next transition. The date must be exactly the next
// entry of the timeline: there is no transition for out-of-sequence
// dates.
func (l *Lifecycle) Advance(date time.Time) (*Diagram, error) {
	if l.Done() {
		return nil, fmt.Errorf("%w: bill already settled", common.ErrInvalidTimelineOrder)
	}
	if !date.Equal(l.timeline[l.next]) {
		return nil, fmt.Errorf("%w: expected %s for transition to %q, got %s",
			common.ErrInvalidTimelineOrder,
			l.timeline[l.next].Format(time.DateOnly), stateOrder[l.next], date.Format(time.DateOnly))
	}

	state := stateOrder[l.next]
	d, quote, err := l.transition(state, date)
	if err != nil {
		return nil, err
	}

	l.next++
	l.log = append(l.log, LogEntry{Timestamp: date, State: state, Diagram: d, Quote: quote})
	return d, nil
}

// transition books the double-entry diagram for the target state.
func (l *Lifecycle) transition(state State, date time.Time) (*Diagram, *PVQuote, error) {
	t := l.terms
	face := t.FaceValue

	switch state {
	case StateDelivered:
		// Goods change hands against trade credit.
		d, err := New("boe_delivered", date, []Booking{
			bookingFor(t.Buyer,
				AccountGoods, category.KindAsset,
				AccountTradePayables, category.KindLiability, face),
			bookingFor(t.Seller,
				AccountTradeReceivables, category.KindAsset,
				AccountGoods, category.KindAsset, face),
		})
		return d, nil, err

	case StateCreated:
		// The bill replaces the open trade credit at face value.
		quote := l.quote(t.CommercialRate, date)
		d, err := New("boe_created", date, []Booking{
			bookingFor(t.Buyer,
				AccountTradePayables, category.KindLiability,
				AccountBillsPayable, category.KindLiability, face),
			bookingFor(t.Seller,
				AccountBillsReceivable, category.KindAsset,
				AccountTradeReceivables, category.KindAsset, face),
		})
		return d, quote, err

	case StateAcceptedBySellerBank:
		// The seller discounts the bill at its bank: the bank takes
		// the bill at face, credits the seller the present value, and
		// books the discount as income; the seller expenses it.
		quote := l.quote(t.CommercialRate, date)
		l.sellerPV = quote.PV
		d, err := New("boe_accepted_by_seller_bank", date, []Booking{
			bookingFor(t.SellerBank,
				AccountBillsReceivable, category.KindAsset,
				AccountDeposits, category.KindLiability, quote.PV),
			bookingFor(t.SellerBank,
				AccountBillsReceivable, category.KindAsset,
				AccountDiscountIncome, category.KindNone, quote.Discount),
			bookingFor(t.Seller,
				AccountDepositAtBank, category.KindAsset,
				AccountBillsReceivable, category.KindAsset, quote.PV),
			bookingFor(t.Seller,
				AccountDiscountExpense, category.KindNone,
				AccountBillsReceivable, category.KindAsset, quote.Discount),
		})
		return d, quote, err

	case StateAcceptedByBuyerBank:
		// Interbank transfer. The rediscount value at the central-bank
		// rate exceeds the seller bank's purchase price; that spread is
		// split evenly between the two commercial banks, so the bill
		// moves at sellerPV + spread/2 against an interbank claim.
		quote := l.quote(t.CentralBankRate, date)
		spread := quote.PV - l.sellerPV
		half := spread / 2
		l.price = l.sellerPV + half
		d, err := New("boe_accepted_by_buyer_bank", date, []Booking{
			bookingFor(t.SellerBank,
				AccountInterbankReceivable, category.KindAsset,
				AccountBillsReceivable, category.KindAsset, l.price),
			bookingFor(t.SellerBank,
				AccountDiscountIncome, category.KindNone,
				AccountBillsReceivable, category.KindAsset, face-l.price),
			bookingFor(t.BuyerBank,
				AccountBillsReceivable, category.KindAsset,
				AccountInterbankPayable, category.KindLiability, l.price),
			bookingFor(t.BuyerBank,
				AccountBillsReceivable, category.KindAsset,
				AccountDiscountIncome, category.KindNone, face-l.price),
		})
		return d, quote, err

	case StateMatured:
		// The buyer pays face value from its deposit; the buyer's bank
		// retires the bill.
		d, err := New("boe_matured", date, []Booking{
			bookingFor(t.Buyer,
				AccountBillsPayable, category.KindLiability,
				AccountDepositAtBank, category.KindAsset, face),
			bookingFor(t.BuyerBank,
				AccountDeposits, category.KindLiability,
				AccountBillsReceivable, category.KindAsset, face),
		})
		return d, nil, err

	case StateSettled:
		// The interbank position clears in central-bank reserves.
		d, err := New("boe_settled", date, []Booking{
			bookingFor(t.SellerBank,
				AccountReservesAtCB, category.KindAsset,
				AccountInterbankReceivable, category.KindAsset, l.price),
			bookingFor(t.BuyerBank,
				AccountInterbankPayable, category.KindLiability,
				AccountReservesAtCB, category.KindAsset, l.price),
		})
		return d, nil, err
	}

	return nil, nil, fmt.Errorf("unknown lifecycle state %q", state)
}

// quote computes the present value of the face amount at the given
// rate for the remaining time to maturity.
func (l *Lifecycle) quote(rate float64, at time.Time) *PVQuote {
	years := l.yearsToMaturity(at)
	pv := PresentValue(l.terms.FaceValue, rate, years)
	return &PVQuote{
		Rate:     rate,
		Years:    years,
		PV:       pv,
		Discount: l.terms.FaceValue - pv,
	}
}
