package database

import (
	"database/sql"
	"time"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

const paymentColumns = `id, student_id, amount, mode, reference, payment_date, created_at`

func scanPayment(row interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	p := &models.Payment{}
	var mode, reference sql.NullString
	var paymentDate sql.NullTime

	err := row.Scan(&p.ID, &p.StudentID, &p.Amount, &mode, &reference, &paymentDate, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	p.Mode = mode.String
	p.Reference = reference.String
	if paymentDate.Valid {
		p.PaymentDate = &paymentDate.Time
	}
	return p, nil
}

func collectPayments(rows *sql.Rows) ([]*models.Payment, error) {
	defer rows.Close()
	payments := []*models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CreatePayment inserts a payment record. The ledger is append-only; there
// is deliberately no update or delete counterpart.
func CreatePayment(db *sql.DB, p *models.Payment) error {
	query := `INSERT INTO payments (student_id, amount, mode, reference, payment_date)
			  VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)
			  RETURNING id, payment_date, created_at`
	date := time.Now()
	if p.PaymentDate != nil {
		date = *p.PaymentDate
	}
	var paymentDate time.Time
	err := db.QueryRow(query, p.StudentID, p.Amount, p.Mode, p.Reference, date).
		Scan(&p.ID, &paymentDate, &p.CreatedAt)
	if err != nil {
		return err
	}
	p.PaymentDate = &paymentDate
	return nil
}

// GetAllPayments retrieves the full payment ledger, most recent first.
func GetAllPayments(db *sql.DB) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC, created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

// GetStudentPayments retrieves all payments recorded for one student.
func GetStudentPayments(db *sql.DB, studentID string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
			  WHERE student_id = $1
			  ORDER BY payment_date DESC, created_at DESC`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

// GetPaymentByID returns a single payment, or nil when not found.
func GetPaymentByID(db *sql.DB, paymentID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(db.QueryRow(query, paymentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
