package services

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	"financetracker/backend/database"
	"financetracker/backend/models"

	"github.com/shopspring/decimal"
)

const transactionColumns = "id, type, amount, category, date, description"

// maxAmount is the first magnitude that no longer fits NUMERIC(10,2).
var maxAmount = decimal.New(1, 8)

// TransactionService runs transaction queries against the store. It keeps no
// state of its own; every call reads the database.
type TransactionService struct {
	db      *sql.DB
	dialect database.Dialect
}

func NewTransactionService(db *sql.DB, dialect database.Dialect) *TransactionService {
	return &TransactionService{db: db, dialect: dialect}
}

// Create inserts a new transaction and returns it with its assigned id.
func (s *TransactionService) Create(ctx context.Context, in models.TransactionInput) (*models.Transaction, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	t := models.Transaction{
		Type:        *in.Type,
		Amount:      in.Amount.Round(2),
		Category:    *in.Category,
		Date:        *in.Date,
		Description: in.Description,
	}

	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`
		INSERT INTO transactions (type, amount, category, date, description)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), t.Type, t.Amount, t.Category, t.Date, t.Description).Scan(&t.ID)
	if err != nil {
		return nil, storeError("insert transaction", err)
	}

	return &t, nil
}

// List returns one page of transactions in insertion order along with the
// total number of stored transactions.
func (s *TransactionService) List(ctx context.Context, p models.Pagination) (*models.TransactionPage, error) {
	if p.Page < 1 {
		return nil, &InvalidParameterError{Param: "page", Message: "must be a positive integer"}
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		return nil, &InvalidParameterError{Param: "pageSize", Message: "must be between 1 and 100"}
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return nil, &InvalidParameterError{Param: "page", Message: "is out of range"}
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&total); err != nil {
		return nil, storeError("count transactions", err)
	}

	transactions, err := s.query(ctx, "list transactions",
		"SELECT "+transactionColumns+" FROM transactions ORDER BY id LIMIT ? OFFSET ?",
		p.PageSize, p.Offset())
	if err != nil {
		return nil, err
	}

	return &models.TransactionPage{
		Total:        total,
		Page:         p.Page,
		PageSize:     p.PageSize,
		Transactions: transactions,
	}, nil
}

// GetByID returns the transaction with the given id or ErrNotFound.
func (s *TransactionService) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		s.dialect.Rebind("SELECT "+transactionColumns+" FROM transactions WHERE id = ?"), id)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, storeError("get transaction", err)
	}
	return &t, nil
}

// Update overwrites the fields present in the input and leaves the rest
// untouched.
func (s *TransactionService) Update(ctx context.Context, id int64, in models.TransactionInput) (*models.Transaction, error) {
	if err := validateUpdate(in); err != nil {
		return nil, err
	}
	if in.Empty() {
		return s.GetByID(ctx, id)
	}

	var sets []string
	var args []interface{}
	if in.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, *in.Type)
	}
	if in.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, in.Amount.Round(2))
	}
	if in.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *in.Category)
	}
	if in.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *in.Date)
	}
	if in.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *in.Description)
	}
	args = append(args, id)

	query := "UPDATE transactions SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	result, err := s.db.ExecContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, storeError("update transaction", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storeError("update transaction", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(ctx, id)
}

// Delete removes the transaction with the given id.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, s.dialect.Rebind("DELETE FROM transactions WHERE id = ?"), id)
	if err != nil {
		return storeError("delete transaction", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storeError("delete transaction", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary totals income and expenses inside the date range. Missing bounds
// leave that side of the range open.
func (s *TransactionService) Summary(ctx context.Context, r models.DateRange) (*models.Summary, error) {
	where, args := dateFilter(r)
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'Income' THEN amount END), 0),
			COALESCE(SUM(CASE WHEN type = 'Expense' THEN amount END), 0)
		FROM transactions` + where

	var income, expenses decimal.Decimal
	if err := s.db.QueryRowContext(ctx, s.dialect.Rebind(query), args...).Scan(&income, &expenses); err != nil {
		return nil, storeError("summarize transactions", err)
	}

	income = income.Round(2)
	expenses = expenses.Round(2)
	return &models.Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetBalance:    income.Sub(expenses),
	}, nil
}

// GetByCategory returns every transaction whose category is in the set. An
// empty set matches nothing.
func (s *TransactionService) GetByCategory(ctx context.Context, categories []string) ([]models.Transaction, error) {
	if len(categories) == 0 {
		return []models.Transaction{}, nil
	}

	args := make([]interface{}, len(categories))
	for i, c := range categories {
		args[i] = c
	}
	return s.query(ctx, "get transactions by category",
		"SELECT "+transactionColumns+" FROM transactions WHERE category IN ("+database.Placeholders(len(categories))+") ORDER BY id",
		args...)
}

// GetByDate returns the transactions dated inside the range, bounds included.
// Both bounds are required.
func (s *TransactionService) GetByDate(ctx context.Context, r models.DateRange) ([]models.Transaction, error) {
	if !r.Bounded() {
		param := "endDate"
		if r.Start == nil {
			param = "startDate"
		}
		return nil, &InvalidParameterError{Param: param, Message: "is required"}
	}

	where, args := dateFilter(r)
	return s.query(ctx, "get transactions by date",
		"SELECT "+transactionColumns+" FROM transactions"+where+" ORDER BY id",
		args...)
}

// GetCategories returns the distinct categories in use, sorted ascending.
func (s *TransactionService) GetCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT category FROM transactions ORDER BY category ASC")
	if err != nil {
		return nil, storeError("list categories", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, storeError("scan category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list categories", err)
	}
	return categories, nil
}

func (s *TransactionService) query(ctx context.Context, op, query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, storeError(op, err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(op, err)
	}
	return transactions, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	var description sql.NullString
	if err := row.Scan(&t.ID, &t.Type, &t.Amount, &t.Category, &t.Date, &description); err != nil {
		return models.Transaction{}, err
	}
	if description.Valid {
		t.Description = &description.String
	}
	return t, nil
}

func dateFilter(r models.DateRange) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if r.Start != nil {
		conds = append(conds, "date >= ?")
		args = append(args, *r.Start)
	}
	if r.End != nil {
		conds = append(conds, "date <= ?")
		args = append(args, *r.End)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func validateCreate(in models.TransactionInput) error {
	if in.Type == nil {
		return &ValidationError{Field: "type", Message: "is required"}
	}
	if in.Amount == nil {
		return &ValidationError{Field: "amount", Message: "is required"}
	}
	if in.Category == nil {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	if in.Date == nil {
		return &ValidationError{Field: "date", Message: "is required"}
	}
	return validateUpdate(in)
}

// validateUpdate checks the fields that are present.
func validateUpdate(in models.TransactionInput) error {
	if in.Type != nil && !in.Type.Valid() {
		return &ValidationError{Field: "type", Message: "must be one of Income, Expense"}
	}
	if in.Amount != nil && in.Amount.Round(2).Abs().GreaterThanOrEqual(maxAmount) {
		return &ValidationError{Field: "amount", Message: "must be less than 100000000 in magnitude"}
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		return &ValidationError{Field: "category", Message: "must not be empty"}
	}
	return nil
}
