package diagram

import (
	"time"

	"github.com/evomoney/evomoney/internal/category"
)

// MoneyCreation books the issuance of paper money by the central bank:
// the printed notes are an asset matched by a circulation liability of
// the same amount.
func MoneyCreation(amount float64, date time.Time) (*Diagram, error) {
	return New("money_creation", date, []Booking{
		bookingFor(AgentCentralBank,
			AccountPaperMoney, category.KindAsset,
			AccountPaperMoneyCirculation, category.KindLiability, amount),
	})
}

// Loan books a central-bank loan to a commercial bank. The lender
// gains a loan claim and owes the borrower reserves; the borrower
// gains a reserve claim and owes the loan.
func Loan(lender, borrower string, amount float64, date time.Time) (*Diagram, error) {
	return New("loan", date, []Booking{
		bookingFor(lender,
			AccountLoansToBanks, category.KindAsset,
			AccountBankReserves, category.KindLiability, amount),
		bookingFor(borrower,
			AccountReservesAtCB, category.KindAsset,
			AccountLoansFromCB, category.KindLiability, amount),
	})
}

// Purchase books a spot purchase of goods settled from the buyer's
// bank deposit.
func Purchase(buyer, seller string, amount float64, date time.Time) (*Diagram, error) {
	return New("purchase", date, []Booking{
		bookingFor(buyer,
			AccountGoods, category.KindAsset,
			AccountDepositAtBank, category.KindAsset, amount),
		bookingFor(seller,
			AccountDepositAtBank, category.KindAsset,
			AccountGoods, category.KindAsset, amount),
	})
}
