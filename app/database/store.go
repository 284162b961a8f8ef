package database

import (
	"database/sql"
	"time"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

// Store bundles the connection pool behind the narrow interfaces the
// services consume.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetStudentByID(studentID string) (*models.Student, error) {
	return GetStudentByID(s.db, studentID)
}

func (s *Store) UpdateStudentDues(studentID string, dues float64) error {
	return UpdateStudentDues(s.db, studentID, dues)
}

func (s *Store) CreatePayment(p *models.Payment) error {
	return CreatePayment(s.db, p)
}

func (s *Store) GetAllPayments() ([]*models.Payment, error) {
	return GetAllPayments(s.db)
}

func (s *Store) GetAllExpenses() ([]*models.Expense, error) {
	return GetAllExpenses(s.db)
}

func (s *Store) GetExpensesByDateRange(start, end time.Time) ([]*models.Expense, error) {
	return GetExpensesByDateRange(s.db, start, end)
}

func (s *Store) GetAllSalaries() ([]*models.Salary, error) {
	return GetAllSalaries(s.db)
}

func (s *Store) GetSalariesByDateRange(start, end time.Time) ([]*models.Salary, error) {
	return GetSalariesByDateRange(s.db, start, end)
}
