package models

import "time"

// Salary represents one payroll disbursement to a staff member. A staff
// member accumulates one record per disbursement across periods.
type Salary struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StaffID   string     `json:"staff_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount    float64    `json:"amount" gorm:"not null;type:numeric" validate:"required,gt=0"`
	PaidDate  *time.Time `json:"paid_date,omitempty" gorm:"index;type:date"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`

	Staff *Staff `json:"staff,omitempty" gorm:"foreignKey:StaffID;references:ID"`
}

// SalaryInput is the request shape for recording a disbursement. The date is
// a YYYY-MM-DD string and defaults to today when omitted.
type SalaryInput struct {
	StaffID  string  `json:"staff_id" validate:"required,uuid"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	PaidDate string  `json:"paid_date,omitempty"`
}
