package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

func TestNewPeriodValidation(t *testing.T) {
	tests := []struct {
		name    string
		month   int
		year    int
		wantErr bool
	}{
		{"valid january", 1, 2024, false},
		{"valid december", 12, 2024, false},
		{"month zero", 0, 2024, true},
		{"month thirteen", 13, 2024, true},
		{"negative month", -1, 2024, true},
		{"three digit year", 999, 1, true},
		{"five digit year", 5, 10000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPeriod(tt.month, tt.year)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		month   int
		year    int
		lastDay int
	}{
		{1, 2024, 31},
		{4, 2024, 30},
		{2, 2023, 28},
		{2, 2024, 29}, // leap year
		{12, 2024, 31},
	}

	for _, tt := range tests {
		p, err := NewPeriod(tt.month, tt.year)
		require.NoError(t, err)

		assert.Equal(t, time.Date(tt.year, time.Month(tt.month), 1, 0, 0, 0, 0, time.UTC), p.Start())
		assert.Equal(t, time.Date(tt.year, time.Month(tt.month), tt.lastDay, 0, 0, 0, 0, time.UTC), p.End())
	}
}

func TestPeriodContainsInclusiveBoundaries(t *testing.T) {
	p, err := NewPeriod(2, 2024)
	require.NoError(t, err)

	// Boundary days are in regardless of time of day.
	assert.True(t, p.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)))

	assert.False(t, p.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodContainsDate(t *testing.T) {
	p, err := NewPeriod(6, 2024)
	require.NoError(t, err)

	assert.True(t, p.ContainsDate("2024-06-01"))
	assert.True(t, p.ContainsDate("2024-06-30"))
	assert.True(t, p.ContainsDate("2024-06-15T10:30:00Z"))
	assert.False(t, p.ContainsDate("2024-07-01"))
	assert.False(t, p.ContainsDate("not a date"))
	assert.False(t, p.ContainsDate(""))
}

func TestFilterPaymentsIsAPartition(t *testing.T) {
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	ledger := []*models.Payment{
		{ID: "a", Amount: 100, PaymentDate: date(2024, 3, 1)},
		{ID: "b", Amount: 200, PaymentDate: date(2024, 3, 31)},
		{ID: "c", Amount: 300, PaymentDate: date(2024, 2, 29)},
		{ID: "d", Amount: 400, PaymentDate: date(2024, 4, 1)},
		{ID: "e", Amount: 500, PaymentDate: nil}, // undated, always out
	}

	p, err := NewPeriod(3, 2024)
	require.NoError(t, err)

	in := p.FilterPayments(ledger)
	require.Len(t, in, 2)

	inIDs := map[string]bool{}
	for _, payment := range in {
		inIDs[payment.ID] = true
	}

	// Every ledger record is either in the filtered subset or outside the
	// period; nothing is counted twice and nothing is lost.
	out := 0
	for _, payment := range ledger {
		if inIDs[payment.ID] {
			require.NotNil(t, payment.PaymentDate)
			assert.True(t, p.Contains(*payment.PaymentDate))
		} else {
			out++
			if payment.PaymentDate != nil {
				assert.False(t, p.Contains(*payment.PaymentDate))
			}
		}
	}
	assert.Equal(t, len(ledger), len(in)+out)
	assert.Equal(t, []string{"a", "b"}, []string{in[0].ID, in[1].ID})
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-05-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseDate("2024-05-07T08:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, parsed.Hour())

	_, err = ParseDate("07/05/2024")
	assert.Error(t, err)
}
