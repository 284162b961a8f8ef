package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

type fakePaymentLedger struct {
	payments []*models.Payment
	err      error
}

func (f *fakePaymentLedger) GetAllPayments() ([]*models.Payment, error) {
	return f.payments, f.err
}

type fakeExpenseLedger struct {
	expenses []*models.Expense
	err      error

	rangeStart time.Time
	rangeEnd   time.Time
}

func (f *fakeExpenseLedger) GetAllExpenses() ([]*models.Expense, error) {
	return f.expenses, f.err
}

func (f *fakeExpenseLedger) GetExpensesByDateRange(start, end time.Time) ([]*models.Expense, error) {
	f.rangeStart, f.rangeEnd = start, end
	return f.expenses, f.err
}

type fakeSalaryLedger struct {
	salaries []*models.Salary
	err      error

	rangeStart time.Time
	rangeEnd   time.Time
}

func (f *fakeSalaryLedger) GetAllSalaries() ([]*models.Salary, error) {
	return f.salaries, f.err
}

func (f *fakeSalaryLedger) GetSalariesByDateRange(start, end time.Time) ([]*models.Salary, error) {
	f.rangeStart, f.rangeEnd = start, end
	return f.salaries, f.err
}

func amount(v float64) *float64 { return &v }

func TestSummarize(t *testing.T) {
	payments := []*models.Payment{{Amount: 100}, {Amount: 200}}
	expenses := []*models.Expense{{Amount: amount(50)}}
	salaries := []*models.Salary{{Amount: 80}}

	summary := Summarize(payments, expenses, salaries)

	assert.Equal(t, 300.0, summary.TotalFeesCollected)
	assert.Equal(t, 50.0, summary.TotalExpenses)
	assert.Equal(t, 80.0, summary.TotalSalaries)
	assert.Equal(t, 130.0, summary.TotalOutgoing)
	assert.Equal(t, 170.0, summary.NetIncome)
	assert.InDelta(t, 56.6666, summary.ProfitMargin, 0.001)
}

func TestSummarizeGuardsZeroFeeDivision(t *testing.T) {
	summary := Summarize(nil,
		[]*models.Expense{{Amount: amount(10)}},
		[]*models.Salary{{Amount: 5}},
	)

	assert.Equal(t, 0.0, summary.TotalFeesCollected)
	assert.Equal(t, 15.0, summary.TotalOutgoing)
	assert.Equal(t, -15.0, summary.NetIncome)
	assert.Equal(t, 0.0, summary.ProfitMargin)
}

func TestSummarizeIsIdempotent(t *testing.T) {
	payments := []*models.Payment{{Amount: 123.45}, {Amount: 0.55}}
	expenses := []*models.Expense{{Amount: amount(12)}, {Amount: nil}}
	salaries := []*models.Salary{{Amount: 99.99}}

	first := Summarize(payments, expenses, salaries)
	second := Summarize(payments, expenses, salaries)

	assert.Equal(t, first, second)
}

func TestSummarizeTreatsMissingAmountsAsZero(t *testing.T) {
	expenses := []*models.Expense{
		{Description: "no amount recorded"},
		{Amount: amount(25)},
		nil,
	}

	summary := Summarize(nil, expenses, nil)
	assert.Equal(t, 25.0, summary.TotalExpenses)
}

func TestGetReportsAggregatesAllLedgers(t *testing.T) {
	svc := NewReportService(
		&fakePaymentLedger{payments: []*models.Payment{{Amount: 100}, {Amount: 200}}},
		&fakeExpenseLedger{expenses: []*models.Expense{{Amount: amount(50)}}},
		&fakeSalaryLedger{salaries: []*models.Salary{{Amount: 80}}},
	)

	report, err := svc.GetReports()
	require.NoError(t, err)

	assert.Len(t, report.FeesCollected, 2)
	assert.Len(t, report.Expenses, 1)
	assert.Len(t, report.Salaries, 1)
	assert.Equal(t, 170.0, report.Summary.NetIncome)
}

func TestGetReportsFailsWhole(t *testing.T) {
	boom := errors.New("ledger unavailable")

	tests := []struct {
		name string
		svc  *ReportService
	}{
		{"payments fetch fails", NewReportService(
			&fakePaymentLedger{err: boom}, &fakeExpenseLedger{}, &fakeSalaryLedger{})},
		{"expenses fetch fails", NewReportService(
			&fakePaymentLedger{}, &fakeExpenseLedger{err: boom}, &fakeSalaryLedger{})},
		{"salaries fetch fails", NewReportService(
			&fakePaymentLedger{}, &fakeExpenseLedger{}, &fakeSalaryLedger{err: boom})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := tt.svc.GetReports()
			assert.Nil(t, report, "no partial report is ever returned")
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestGetMonthlyReportFiltersPayments(t *testing.T) {
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	paymentLedger := &fakePaymentLedger{payments: []*models.Payment{
		{ID: "in-1", Amount: 100, PaymentDate: date(2024, 3, 5)},
		{ID: "in-2", Amount: 200, PaymentDate: date(2024, 3, 31)},
		{ID: "other-month", Amount: 400, PaymentDate: date(2024, 4, 1)},
		{ID: "other-year", Amount: 800, PaymentDate: date(2023, 3, 5)},
		{ID: "undated", Amount: 1600},
	}}
	expenseLedger := &fakeExpenseLedger{expenses: []*models.Expense{{Amount: amount(50)}}}
	salaryLedger := &fakeSalaryLedger{salaries: []*models.Salary{{Amount: 80}}}

	svc := NewReportService(paymentLedger, expenseLedger, salaryLedger)

	report, err := svc.GetMonthlyReport(3, 2024)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Month)
	assert.Equal(t, 2024, report.Year)
	require.Len(t, report.Payments, 2)
	assert.Equal(t, "in-1", report.Payments[0].ID)
	assert.Equal(t, "in-2", report.Payments[1].ID)
	assert.Equal(t, 300.0, report.Summary.TotalFeesCollected)

	// The store-side range queries receive the closed month interval.
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), expenseLedger.rangeStart)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), expenseLedger.rangeEnd)
	assert.Equal(t, expenseLedger.rangeStart, salaryLedger.rangeStart)
	assert.Equal(t, expenseLedger.rangeEnd, salaryLedger.rangeEnd)
}

func TestGetMonthlyReportEmptyPeriod(t *testing.T) {
	svc := NewReportService(&fakePaymentLedger{}, &fakeExpenseLedger{}, &fakeSalaryLedger{})

	report, err := svc.GetMonthlyReport(6, 2024)
	require.NoError(t, err, "an empty month is not an error")

	assert.Empty(t, report.Payments)
	assert.Empty(t, report.Expenses)
	assert.Empty(t, report.Salaries)
	assert.Equal(t, models.FinancialSummary{}, report.Summary)
}

func TestGetMonthlyReportRejectsInvalidPeriod(t *testing.T) {
	svc := NewReportService(&fakePaymentLedger{}, &fakeExpenseLedger{}, &fakeSalaryLedger{})

	_, err := svc.GetMonthlyReport(13, 2024)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetMonthlyReport(5, 99)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
