package models

import "time"

// Payment represents a single fee payment made by a student. Payments are
// append-only: once recorded they are never updated or deleted.
type Payment struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID   string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount      float64    `json:"amount" gorm:"not null;type:numeric" validate:"required,gt=0"`
	Mode        string     `json:"mode,omitempty" gorm:"type:varchar(50)"`
	Reference   string     `json:"reference,omitempty" gorm:"type:varchar(64);index"`
	PaymentDate *time.Time `json:"payment_date,omitempty" gorm:"index;type:date"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// PaymentInput is the request shape for recording a payment. The date is a
// YYYY-MM-DD string and defaults to today when omitted.
type PaymentInput struct {
	StudentID   string  `json:"student_id" validate:"required,uuid"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Mode        string  `json:"mode,omitempty"`
	PaymentDate string  `json:"payment_date,omitempty"`
}
