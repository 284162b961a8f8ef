package models

// FinancialSummary is the derived aggregate over the three ledgers. It is
// never persisted.
type FinancialSummary struct {
	TotalFeesCollected float64 `json:"total_fees_collected"`
	TotalExpenses      float64 `json:"total_expenses"`
	TotalSalaries      float64 `json:"total_salaries"`
	TotalOutgoing      float64 `json:"total_outgoing"`
	NetIncome          float64 `json:"net_income"`
	ProfitMargin       float64 `json:"profit_margin"`
}

// FinancialReport is the full-history report: all three ledgers plus their
// summary.
type FinancialReport struct {
	FeesCollected []*Payment       `json:"fees_collected"`
	Expenses      []*Expense       `json:"expenses"`
	Salaries      []*Salary        `json:"salaries"`
	Summary       FinancialSummary `json:"summary"`
}

// MonthlyReport scopes the three ledgers to one calendar month.
type MonthlyReport struct {
	Month    int              `json:"month"`
	Year     int              `json:"year"`
	Payments []*Payment       `json:"payments"`
	Expenses []*Expense       `json:"expenses"`
	Salaries []*Salary        `json:"salaries"`
	Summary  FinancialSummary `json:"summary"`
}

// DashboardStats backs the admin dashboard.
type DashboardStats struct {
	TotalStudents  int              `json:"total_students"`
	TotalStaff     int              `json:"total_staff"`
	MonthlyRevenue float64          `json:"monthly_revenue"`
	Summary        FinancialSummary `json:"summary"`
}
