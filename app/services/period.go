package services

import (
	"fmt"
	"time"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

// Period is a closed calendar-month interval [Start, End]. Month is
// 1-indexed.
type Period struct {
	Month int
	Year  int
}

// NewPeriod validates the (month, year) pair.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1000 || year > 9999 {
		return Period{}, fmt.Errorf("year must be a four-digit value, got %d", year)
	}
	return Period{Month: month, Year: year}, nil
}

// Start returns the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last calendar day of the month.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Contains reports whether t falls inside the period. Comparison is by
// calendar date, so both boundary days are inclusive regardless of the
// time-of-day component.
func (p Period) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(p.Start()) && !d.After(p.End())
}

// ContainsDate parses value and reports whether its calendar date falls
// inside the period. Unparseable values are outside every period.
func (p Period) ContainsDate(value string) bool {
	t, err := ParseDate(value)
	if err != nil {
		return false
	}
	return p.Contains(t)
}

// FilterPayments returns the payments whose date falls inside the period.
// Payments without a date are excluded.
func (p Period) FilterPayments(payments []*models.Payment) []*models.Payment {
	filtered := []*models.Payment{}
	for _, payment := range payments {
		if payment.PaymentDate == nil {
			continue
		}
		if p.Contains(*payment.PaymentDate) {
			filtered = append(filtered, payment)
		}
	}
	return filtered
}

// ParseDate accepts the date formats the ledgers carry: plain dates and
// RFC 3339 timestamps.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
