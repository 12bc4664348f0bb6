package models

import "github.com/shopspring/decimal"

// Summary holds income and expense totals over an optional date range.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetBalance    decimal.Decimal `json:"netBalance"`
}

// TransactionPage is one page of the transaction list. Total counts every
// stored transaction, not just the ones on this page.
type TransactionPage struct {
	Total        int64         `json:"total"`
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
	Transactions []Transaction `json:"transactions"`
}
