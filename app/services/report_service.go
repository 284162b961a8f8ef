package services

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

// PaymentLedger reads the payment ledger.
type PaymentLedger interface {
	GetAllPayments() ([]*models.Payment, error)
}

// ExpenseLedger reads the expense ledger, whole or scoped to a date range.
type ExpenseLedger interface {
	GetAllExpenses() ([]*models.Expense, error)
	GetExpensesByDateRange(start, end time.Time) ([]*models.Expense, error)
}

// SalaryLedger reads the salary ledger, whole or scoped to a date range.
type SalaryLedger interface {
	GetAllSalaries() ([]*models.Salary, error)
	GetSalariesByDateRange(start, end time.Time) ([]*models.Salary, error)
}

// ReportService derives financial reports from the three ledgers. It holds
// no state of its own.
type ReportService struct {
	payments PaymentLedger
	expenses ExpenseLedger
	salaries SalaryLedger
}

func NewReportService(payments PaymentLedger, expenses ExpenseLedger, salaries SalaryLedger) *ReportService {
	return &ReportService{payments: payments, expenses: expenses, salaries: salaries}
}

// Summarize computes the financial summary over three ledger snapshots. It
// is a pure function: records with a missing amount contribute 0, and the
// profit margin is 0 when nothing was collected.
func Summarize(payments []*models.Payment, expenses []*models.Expense, salaries []*models.Salary) models.FinancialSummary {
	var summary models.FinancialSummary

	for _, p := range payments {
		if p != nil {
			summary.TotalFeesCollected += p.Amount
		}
	}
	for _, e := range expenses {
		if e != nil && e.Amount != nil {
			summary.TotalExpenses += *e.Amount
		}
	}
	for _, s := range salaries {
		if s != nil {
			summary.TotalSalaries += s.Amount
		}
	}

	summary.TotalOutgoing = summary.TotalExpenses + summary.TotalSalaries
	summary.NetIncome = summary.TotalFeesCollected - summary.TotalOutgoing
	if summary.TotalFeesCollected > 0 {
		summary.ProfitMargin = summary.NetIncome / summary.TotalFeesCollected * 100
	}
	return summary
}

// GetReports builds the full-history financial report. The three ledgers are
// independent, so their reads run concurrently; any failed read fails the
// whole report, never a partial one.
func (s *ReportService) GetReports() (*models.FinancialReport, error) {
	var (
		payments []*models.Payment
		expenses []*models.Expense
		salaries []*models.Salary
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		payments, err = s.payments.GetAllPayments()
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.expenses.GetAllExpenses()
		return err
	})
	g.Go(func() (err error) {
		salaries, err = s.salaries.GetAllSalaries()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch ledgers: %w", err)
	}

	return &models.FinancialReport{
		FeesCollected: payments,
		Expenses:      expenses,
		Salaries:      salaries,
		Summary:       Summarize(payments, expenses, salaries),
	}, nil
}

// GetMonthlyReport scopes the three ledgers to one calendar month. Expenses
// and salaries are range-filtered by the store; payments carry the least
// reliable dates, so the full ledger is fetched and filtered in memory. An
// empty month yields empty ledgers and an all-zero summary.
func (s *ReportService) GetMonthlyReport(month, year int) (*models.MonthlyReport, error) {
	period, err := NewPeriod(month, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		allPayments []*models.Payment
		expenses    []*models.Expense
		salaries    []*models.Salary
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		allPayments, err = s.payments.GetAllPayments()
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.expenses.GetExpensesByDateRange(period.Start(), period.End())
		return err
	})
	g.Go(func() (err error) {
		salaries, err = s.salaries.GetSalariesByDateRange(period.Start(), period.End())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch ledgers: %w", err)
	}

	payments := period.FilterPayments(allPayments)

	return &models.MonthlyReport{
		Month:    period.Month,
		Year:     period.Year,
		Payments: payments,
		Expenses: expenses,
		Salaries: salaries,
		Summary:  Summarize(payments, expenses, salaries),
	}, nil
}
