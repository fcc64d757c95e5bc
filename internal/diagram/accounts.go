// Package diagram builds canonical double-entry diagrams for financial
// events. Every diagram is a category whose morphisms are debit/credit
// bookings between typed account objects, plus the signed postings the
// invariance verifier consumes.
package diagram

// Well-known agents.
const (
	AgentCentralBank = "CB"
)

// Account names used by the canonical event tables.
const (
	AccountPaperMoney            = "PaperMoney"
	AccountPaperMoneyCirculation = "PaperMoneyCirculation"

	AccountLoansToBanks = "LoansToBanks"
	AccountLoansFromCB  = "LoansFromCB"
	AccountReservesAtCB = "ReservesAtCB"
	AccountBankReserves = "BankReserves"

	AccountGoods         = "Goods"
	AccountDepositAtBank = "DepositAtBank"
	AccountDeposits      = "Deposits"

	AccountTradeReceivables = "TradeReceivables"
	AccountTradePayables    = "TradePayables"

	AccountBillsReceivable     = "BillsReceivable"
	AccountBillsPayable        = "BillsPayable"
	AccountDiscountExpense     = "DiscountExpense"
	AccountDiscountIncome      = "DiscountIncome"
	AccountInterbankReceivable = "InterbankReceivable"
	AccountInterbankPayable    = "InterbankPayable"
)

// AccountPair registers a claim account and the liability account that
// mirrors it on another agent's books. Macro invariance sums positions
// across such pairs.
type AccountPair struct {
	Claim     string
	Liability string
}

// CanonicalPairs lists the claim/liability pairs produced by the
// canonical event builders.
func CanonicalPairs() []AccountPair {
	return []AccountPair{
		{Claim: AccountPaperMoney, Liability: AccountPaperMoneyCirculation},
		{Claim: AccountLoansToBanks, Liability: AccountLoansFromCB},
		{Claim: AccountReservesAtCB, Liability: AccountBankReserves},
		{Claim: AccountDepositAtBank, Liability: AccountDeposits},
		{Claim: AccountTradeReceivables, Liability: AccountTradePayables},
		{Claim: AccountBillsReceivable, Liability: AccountBillsPayable},
		{Claim: AccountInterbankReceivable, Liability: AccountInterbankPayable},
	}
}
