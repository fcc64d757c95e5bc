package diagram

import (
	"fmt"
	"time"

	"github.com/evomoney/evomoney/internal/category"
)

// Posting is one signed account movement: debits positive, credits
// negative.
type Posting struct {
	Agent   string
	Account string
	Kind    category.AccountKind
	Amount  float64
}

// Booking is a matched debit/credit pair. The two legs must reference
// the same absolute amount with opposite signs.
type Booking struct {
	Debit  Posting
	Credit Posting
}

// Diagram is a category specialized for double-entry bookkeeping: one
// debit→credit morphism per booking over typed account objects,
// alongside the flat posting list the invariance verifier consumes.
type Diagram struct {
	Event    string
	Date     time.Time
	Category *category.Category
	Bookings []Booking
}

// New assembles a diagram from an event label, a booking date, and the
// event's booking table. It builds the account objects and one
// morphism per booking.
func New(event string, date time.Time, bookings []Booking) (*Diagram, error) {
	seen := make(map[string]category.Object)
	var objects []category.Object

	accountObject := func(p Posting) category.Object {
		obj := category.NewAccount(p.Agent, p.Account, p.Kind)
		if _, ok := seen[obj.ID]; !ok {
			seen[obj.ID] = obj
			objects = append(objects, obj)
		}
		return obj
	}

	var morphisms []category.Morphism
	for _, b := range bookings {
		if b.Debit.Amount <= 0 || b.Credit.Amount >= 0 {
			return nil, fmt.Errorf("booking %s/%s: debit must be positive and credit negative",
				b.Debit.Account, b.Credit.Account)
		}
		debit := accountObject(b.Debit)
		credit := accountObject(b.Credit)
		label := fmt.Sprintf("%s:%s.%s->%s.%s",
			event, b.Debit.Agent, b.Debit.Account, b.Credit.Agent, b.Credit.Account)
		morphisms = append(morphisms, category.NewMorphism(debit, credit, label, b.Debit.Amount, date))
	}

	cat, err := category.New(objects, morphisms)
	if err != nil {
		return nil, err
	}

	return &Diagram{
		Event:    event,
		Date:     date,
		Category: cat,
		Bookings: bookings,
	}, nil
}

// Postings flattens the booking table into signed postings.
func (d *Diagram) Postings() []Posting {
	out := make([]Posting, 0, len(d.Bookings)*2)
	for _, b := range d.Bookings {
		out = append(out, b.Debit, b.Credit)
	}
	return out
}

// booking builds a balanced debit/credit pair over the given accounts.
func booking(agent, debitAccount string, debitKind category.AccountKind,
	creditAgent, creditAccount string, creditKind category.AccountKind, amount float64) Booking {
	return Booking{
		Debit:  Posting{Agent: agent, Account: debitAccount, Kind: debitKind, Amount: amount},
		Credit: Posting{Agent: creditAgent, Account: creditAccount, Kind: creditKind, Amount: -amount},
	}
}

// bookingFor builds a balanced pair on a single agent's books.
func bookingFor(agent, debitAccount string, debitKind category.AccountKind,
	creditAccount string, creditKind category.AccountKind, amount float64) Booking {
	return booking(agent, debitAccount, debitKind, agent, creditAccount, creditKind, amount)
}
