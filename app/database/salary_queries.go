package database

import (
	"database/sql"
	"time"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

const salaryColumns = `id, staff_id, amount, paid_date, created_at`

func scanSalary(row interface{ Scan(...interface{}) error }) (*models.Salary, error) {
	s := &models.Salary{}
	var paidDate sql.NullTime

	err := row.Scan(&s.ID, &s.StaffID, &s.Amount, &paidDate, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	if paidDate.Valid {
		s.PaidDate = &paidDate.Time
	}
	return s, nil
}

func collectSalaries(rows *sql.Rows) ([]*models.Salary, error) {
	defer rows.Close()
	salaries := []*models.Salary{}
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, err
		}
		salaries = append(salaries, s)
	}
	return salaries, rows.Err()
}

// CreateSalary appends a disbursement record to the salary ledger.
func CreateSalary(db *sql.DB, s *models.Salary) error {
	query := `INSERT INTO salaries (staff_id, amount, paid_date)
			  VALUES ($1, $2, $3)
			  RETURNING id, paid_date, created_at`
	date := time.Now()
	if s.PaidDate != nil {
		date = *s.PaidDate
	}
	var paidDate time.Time
	err := db.QueryRow(query, s.StaffID, s.Amount, date).
		Scan(&s.ID, &paidDate, &s.CreatedAt)
	if err != nil {
		return err
	}
	s.PaidDate = &paidDate
	return nil
}

// GetAllSalaries retrieves the full salary ledger, most recent first.
func GetAllSalaries(db *sql.DB) ([]*models.Salary, error) {
	query := `SELECT ` + salaryColumns + ` FROM salaries ORDER BY paid_date DESC, created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return collectSalaries(rows)
}

// GetStaffSalaries retrieves all disbursements for one staff member.
func GetStaffSalaries(db *sql.DB, staffID string) ([]*models.Salary, error) {
	query := `SELECT ` + salaryColumns + ` FROM salaries
			  WHERE staff_id = $1
			  ORDER BY paid_date DESC, created_at DESC`
	rows, err := db.Query(query, staffID)
	if err != nil {
		return nil, err
	}
	return collectSalaries(rows)
}

// GetSalariesByDateRange retrieves disbursements whose paid date falls inside
// the closed interval [start, end].
func GetSalariesByDateRange(db *sql.DB, start, end time.Time) ([]*models.Salary, error) {
	query := `SELECT ` + salaryColumns + ` FROM salaries
			  WHERE paid_date >= $1 AND paid_date <= $2
			  ORDER BY paid_date ASC`
	rows, err := db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	return collectSalaries(rows)
}

// GetSalaryByID returns a single disbursement, or nil when not found.
func GetSalaryByID(db *sql.DB, salaryID string) (*models.Salary, error) {
	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE id = $1`
	s, err := scanSalary(db.QueryRow(query, salaryID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
