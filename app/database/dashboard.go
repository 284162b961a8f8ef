package database

import (
	"database/sql"
)

// DashboardCounts holds the entity counts shown on the admin dashboard.
// Financial figures are derived by the report service, not queried here.
type DashboardCounts struct {
	TotalStudents int
	TotalStaff    int
}

// GetDashboardCounts returns the entity counts for the admin dashboard.
func GetDashboardCounts(db *sql.DB) (*DashboardCounts, error) {
	counts := &DashboardCounts{}

	students, err := CountActiveStudents(db)
	if err != nil {
		return nil, err
	}
	counts.TotalStudents = students

	staff, err := CountStaff(db)
	if err != nil {
		return nil, err
	}
	counts.TotalStaff = staff

	return counts, nil
}
