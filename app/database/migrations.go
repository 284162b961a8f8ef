package database

import (
	"database/sql"
	"log"
)

// RunMigrations ensures the five ledger tables and their indexes exist.
// Every statement is idempotent so this runs safely on every startup.
func RunMigrations(db *sql.DB) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			class VARCHAR(50),
			roll_no VARCHAR(50),
			parent_contact VARCHAR(50),
			fee_structure NUMERIC,
			dues NUMERIC DEFAULT 0,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS staff (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			role VARCHAR(100),
			salary NUMERIC,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			amount NUMERIC NOT NULL,
			mode VARCHAR(50),
			reference VARCHAR(64),
			payment_date DATE DEFAULT CURRENT_DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			description TEXT,
			amount NUMERIC,
			category VARCHAR(100),
			expense_date DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS salaries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			staff_id UUID NOT NULL REFERENCES staff(id),
			amount NUMERIC NOT NULL,
			paid_date DATE DEFAULT CURRENT_DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating ledger tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_students_is_active ON students(is_active)`,
		`CREATE INDEX IF NOT EXISTS idx_students_deleted_at ON students(deleted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_staff_deleted_at ON staff(deleted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_payment_date ON payments(payment_date)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_expense_date ON expenses(expense_date)`,
		`CREATE INDEX IF NOT EXISTS idx_salaries_staff_id ON salaries(staff_id)`,
		`CREATE INDEX IF NOT EXISTS idx_salaries_paid_date ON salaries(paid_date)`,
	}

	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			log.Printf("Error creating index: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	return nil
}
