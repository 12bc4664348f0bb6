package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts are JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is a single income or expense record.
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
	Description *string         `json:"description"`
}

// TransactionInput is the accepted request body for creating or updating a
// transaction. A nil field was not present in the request.
type TransactionInput struct {
	Type        *TransactionType `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Date        *Date            `json:"date"`
	Description *string          `json:"description"`
}

// Empty reports whether no field was provided.
func (in TransactionInput) Empty() bool {
	return in.Type == nil && in.Amount == nil && in.Category == nil && in.Date == nil && in.Description == nil
}
