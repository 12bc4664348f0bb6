package models

// TransactionType is the kind of a transaction.
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}
