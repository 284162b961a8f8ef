package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

const staffColumns = `id, name, role, salary, created_at, updated_at`

func scanStaff(row interface{ Scan(...interface{}) error }) (*models.Staff, error) {
	st := &models.Staff{}
	var role sql.NullString
	var salary sql.NullFloat64

	err := row.Scan(&st.ID, &st.Name, &role, &salary, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return nil, err
	}

	st.Role = role.String
	if salary.Valid {
		st.Salary = &salary.Float64
	}
	return st, nil
}

// GetAllStaff retrieves all non-deleted staff members.
func GetAllStaff(db *sql.DB) ([]*models.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE deleted_at IS NULL ORDER BY name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := []*models.Staff{}
	for rows.Next() {
		st, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, st)
	}
	return staff, rows.Err()
}

// GetStaffByID returns the staff member with the given ID, or nil when no
// such member exists.
func GetStaffByID(db *sql.DB, staffID string) (*models.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1 AND deleted_at IS NULL`
	st, err := scanStaff(db.QueryRow(query, staffID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// CreateStaff adds a new staff member.
func CreateStaff(db *sql.DB, st *models.Staff) error {
	query := `INSERT INTO staff (name, role, salary)
			  VALUES ($1, NULLIF($2, ''), $3)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, st.Name, st.Role, st.Salary).
		Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
}

// UpdateStaff applies a partial update and returns the updated row.
func UpdateStaff(db *sql.DB, staffID string, patch *models.StaffPatch) (*models.Staff, error) {
	if patch.IsEmpty() {
		return GetStaffByID(db, staffID)
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
	if patch.Role != nil {
		add("role", *patch.Role)
	}
	if patch.Salary != nil {
		add("salary", *patch.Salary)
	}

	args = append(args, staffID)
	query := fmt.Sprintf(`UPDATE staff SET %s, updated_at = NOW()
			  WHERE id = $%d AND deleted_at IS NULL
			  RETURNING `+staffColumns, strings.Join(sets, ", "), len(args))

	st, err := scanStaff(db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// DeleteStaff soft deletes a staff member. Salary history keeps referencing
// the row.
func DeleteStaff(db *sql.DB, staffID string) error {
	query := `UPDATE staff SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, staffID)
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

// CountStaff returns the number of non-deleted staff members.
func CountStaff(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM staff WHERE deleted_at IS NULL").Scan(&count)
	return count, err
}
