package models

import "time"

// Staff represents a staff member. Salary here is the nominal reference
// value; actual disbursements live in the salaries ledger.
type Staff struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"not null" validate:"required"`
	Role      string     `json:"role,omitempty" gorm:"type:varchar(100)"`
	Salary    *float64   `json:"salary,omitempty" gorm:"type:numeric"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// StaffPatch carries a partial staff update; only non-nil fields are written.
type StaffPatch struct {
	Name   *string  `json:"name,omitempty"`
	Role   *string  `json:"role,omitempty"`
	Salary *float64 `json:"salary,omitempty"`
}

// IsEmpty reports whether the patch would write nothing.
func (p *StaffPatch) IsEmpty() bool {
	return p.Name == nil && p.Role == nil && p.Salary == nil
}
