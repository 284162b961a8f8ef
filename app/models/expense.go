package models

import "time"

// Expense represents a school expense. Every business field is optional; the
// schema permits a fully empty record and the ledger is append-only.
type Expense struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	Amount      *float64   `json:"amount,omitempty" gorm:"type:numeric"`
	Category    string     `json:"category,omitempty" gorm:"type:varchar(100);index"`
	ExpenseDate *time.Time `json:"expense_date,omitempty" gorm:"index;type:date"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
}
