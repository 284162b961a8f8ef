package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Maxme77/School-finance-management-system/app/config"
	"github.com/Maxme77/School-finance-management-system/app/database"
	"github.com/Maxme77/School-finance-management-system/app/models"
	"github.com/Maxme77/School-finance-management-system/app/services"
)

func ptr(v float64) *float64 { return &v }

// Seeds a development database with a handful of students, staff and ledger
// entries so the dashboard and reports have something to show.
func main() {
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	students := []*models.Student{
		{Name: "Amina Yusuf", Class: "P.5", RollNo: "P5-014", ParentContact: "+256700111222", FeeStructure: ptr(450000), Dues: ptr(450000)},
		{Name: "Brian Okello", Class: "P.5", RollNo: "P5-021", ParentContact: "+256700333444", FeeStructure: ptr(450000), Dues: ptr(200000)},
		{Name: "Cynthia Nabirye", Class: "P.6", RollNo: "P6-007", FeeStructure: ptr(480000), Dues: ptr(0)},
	}
	for _, s := range students {
		if err := database.CreateStudent(db, s); err != nil {
			log.Fatalf("Failed to create student %s: %v", s.Name, err)
		}
		fmt.Printf("Student created: %s (%s)\n", s.Name, s.ID)
	}

	staff := []*models.Staff{
		{Name: "Grace Namusoke", Role: "Head Teacher", Salary: ptr(1200000)},
		{Name: "Daniel Ssemwanga", Role: "Bursar", Salary: ptr(900000)},
	}
	for _, st := range staff {
		if err := database.CreateStaff(db, st); err != nil {
			log.Fatalf("Failed to create staff member %s: %v", st.Name, err)
		}
		fmt.Printf("Staff created: %s (%s)\n", st.Name, st.ID)
	}

	store := database.NewStore(db)
	paymentService := services.NewPaymentService(store, store)

	today := time.Now().Format("2006-01-02")
	receipt, err := paymentService.RecordPayment(models.PaymentInput{
		StudentID:   students[0].ID,
		Amount:      150000,
		Mode:        "mobile money",
		PaymentDate: today,
	})
	if err != nil {
		log.Fatalf("Failed to record payment: %v", err)
	}
	fmt.Printf("Payment recorded: %s, dues now %.0f\n", receipt.Payment.ID, receipt.Dues)

	expense := &models.Expense{
		Description: "Chalk and exercise books",
		Amount:      ptr(85000),
		Category:    "Scholastic Materials",
	}
	if err := database.CreateExpense(db, expense); err != nil {
		log.Fatalf("Failed to create expense: %v", err)
	}
	fmt.Printf("Expense created: %s\n", expense.ID)

	salary := &models.Salary{StaffID: staff[1].ID, Amount: 900000}
	if err := database.CreateSalary(db, salary); err != nil {
		log.Fatalf("Failed to create salary record: %v", err)
	}
	fmt.Printf("Salary recorded: %s\n", salary.ID)

	fmt.Println("Seed data created successfully")
}
