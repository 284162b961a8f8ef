package database

import (
	"database/sql"
	"time"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

const expenseColumns = `id, description, amount, category, expense_date, created_at`

func scanExpense(row interface{ Scan(...interface{}) error }) (*models.Expense, error) {
	e := &models.Expense{}
	var description, category sql.NullString
	var amount sql.NullFloat64
	var expenseDate sql.NullTime

	err := row.Scan(&e.ID, &description, &amount, &category, &expenseDate, &e.CreatedAt)
	if err != nil {
		return nil, err
	}

	e.Description = description.String
	e.Category = category.String
	if amount.Valid {
		e.Amount = &amount.Float64
	}
	if expenseDate.Valid {
		e.ExpenseDate = &expenseDate.Time
	}
	return e, nil
}

func collectExpenses(rows *sql.Rows) ([]*models.Expense, error) {
	defer rows.Close()
	expenses := []*models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// CreateExpense appends an expense to the ledger. All fields are optional;
// the schema permits a fully empty record.
func CreateExpense(db *sql.DB, e *models.Expense) error {
	query := `INSERT INTO expenses (description, amount, category, expense_date)
			  VALUES (NULLIF($1, ''), $2, NULLIF($3, ''), $4)
			  RETURNING id, created_at`
	return db.QueryRow(query, e.Description, e.Amount, e.Category, e.ExpenseDate).
		Scan(&e.ID, &e.CreatedAt)
}

// GetAllExpenses retrieves the full expense ledger, most recent first.
func GetAllExpenses(db *sql.DB) ([]*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY expense_date DESC NULLS LAST, created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

// GetExpensesByCategory retrieves expenses in one category.
func GetExpensesByCategory(db *sql.DB, category string) ([]*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses
			  WHERE category = $1
			  ORDER BY expense_date DESC NULLS LAST, created_at DESC`
	rows, err := db.Query(query, category)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

// GetExpensesByDateRange retrieves expenses whose date falls inside the
// closed interval [start, end]. Undated expenses are excluded.
func GetExpensesByDateRange(db *sql.DB, start, end time.Time) ([]*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses
			  WHERE expense_date >= $1 AND expense_date <= $2
			  ORDER BY expense_date ASC`
	rows, err := db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	return collectExpenses(rows)
}

// GetExpenseByID returns a single expense, or nil when not found.
func GetExpenseByID(db *sql.DB, expenseID string) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	e, err := scanExpense(db.QueryRow(query, expenseID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}
