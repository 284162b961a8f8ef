package models

import "time"

// Student represents an enrolled student and their current fee standing.
// Dues is a cached outstanding balance maintained by the payment service;
// a nil value means the column was never populated for this row.
type Student struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name          string     `json:"name" gorm:"not null" validate:"required"`
	Class         string     `json:"class,omitempty" gorm:"type:varchar(50)"`
	RollNo        string     `json:"roll_no,omitempty" gorm:"type:varchar(50)"`
	ParentContact string     `json:"parent_contact,omitempty" gorm:"type:varchar(50)"`
	FeeStructure  *float64   `json:"fee_structure,omitempty" gorm:"type:numeric"`
	Dues          *float64   `json:"dues,omitempty" gorm:"type:numeric;default:0"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// StudentPatch carries a partial student update; only non-nil fields are
// written back to the store.
type StudentPatch struct {
	Name          *string  `json:"name,omitempty"`
	Class         *string  `json:"class,omitempty"`
	RollNo        *string  `json:"roll_no,omitempty"`
	ParentContact *string  `json:"parent_contact,omitempty"`
	FeeStructure  *float64 `json:"fee_structure,omitempty"`
	Dues          *float64 `json:"dues,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// IsEmpty reports whether the patch would write nothing.
func (p *StudentPatch) IsEmpty() bool {
	return p.Name == nil && p.Class == nil && p.RollNo == nil &&
		p.ParentContact == nil && p.FeeStructure == nil && p.Dues == nil &&
		p.IsActive == nil
}
