package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

// StudentFilters represents filtering options for student listings.
type StudentFilters struct {
	Search string
	Class  string
	Status string
	Limit  int
	Offset int
}

const studentColumns = `id, name, class, roll_no, parent_contact, fee_structure, dues, is_active, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	var class, rollNo, parentContact sql.NullString
	var feeStructure, dues sql.NullFloat64

	err := row.Scan(
		&s.ID, &s.Name, &class, &rollNo, &parentContact,
		&feeStructure, &dues, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Class = class.String
	s.RollNo = rollNo.String
	s.ParentContact = parentContact.String
	if feeStructure.Valid {
		s.FeeStructure = &feeStructure.Float64
	}
	if dues.Valid {
		s.Dues = &dues.Float64
	}
	return s, nil
}

// GetAllStudents retrieves students, optionally filtered by search text,
// class and active status.
func GetAllStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE deleted_at IS NULL`
	args := []interface{}{}

	if filters.Search != "" {
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		query += fmt.Sprintf(" AND (LOWER(name) LIKE $%d OR LOWER(roll_no) LIKE $%d)", len(args), len(args))
	}
	if filters.Class != "" {
		args = append(args, filters.Class)
		query += fmt.Sprintf(" AND class = $%d", len(args))
	}
	if filters.Status == "active" {
		query += " AND is_active = true"
	} else if filters.Status == "inactive" {
		query += " AND is_active = false"
	}

	query += " ORDER BY name ASC"
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filters.Offset > 0 {
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID returns the student with the given ID, or nil when no such
// student exists.
func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND deleted_at IS NULL`
	s, err := scanStudent(db.QueryRow(query, studentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent enrolls a new student. Dues defaults to 0 when not provided.
func CreateStudent(db *sql.DB, s *models.Student) error {
	if s.Dues == nil {
		zero := 0.0
		s.Dues = &zero
	}
	query := `INSERT INTO students (name, class, roll_no, parent_contact, fee_structure, dues, is_active)
			  VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6, true)
			  RETURNING id, is_active, created_at, updated_at`
	return db.QueryRow(query,
		s.Name, s.Class, s.RollNo, s.ParentContact, s.FeeStructure, s.Dues,
	).Scan(&s.ID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
}

// UpdateStudent applies a partial update and returns the updated row. An
// empty patch is a no-op read.
func UpdateStudent(db *sql.DB, studentID string, patch *models.StudentPatch) (*models.Student, error) {
	if patch.IsEmpty() {
		return GetStudentByID(db, studentID)
	}

	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Class != nil {
		add("class", *patch.Class)
	}
	if patch.RollNo != nil {
		add("roll_no", *patch.RollNo)
	}
	if patch.ParentContact != nil {
		add("parent_contact", *patch.ParentContact)
	}
	if patch.FeeStructure != nil {
		add("fee_structure", *patch.FeeStructure)
	}
	if patch.Dues != nil {
		add("dues", *patch.Dues)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}

	args = append(args, studentID)
	query := fmt.Sprintf(`UPDATE students SET %s, updated_at = NOW()
			  WHERE id = $%d AND deleted_at IS NULL
			  RETURNING `+studentColumns, strings.Join(sets, ", "), len(args))

	s, err := scanStudent(db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateStudentDues writes the dues projection for a student.
func UpdateStudentDues(db *sql.DB, studentID string, dues float64) error {
	query := `UPDATE students SET dues = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`
	result, err := db.Exec(query, dues, studentID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeactivateStudent soft deletes a student. Historical payments keep
// referencing the row.
func DeactivateStudent(db *sql.DB, studentID string) error {
	query := `UPDATE students SET is_active = false, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, studentID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountActiveStudents returns the number of active, non-deleted students.
func CountActiveStudents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL").Scan(&count)
	return count, err
}
