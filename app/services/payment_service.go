package services

import (
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

// StudentStore is the slice of the student collection the payment service
// needs: a lookup and the dues projection write-back.
type StudentStore interface {
	GetStudentByID(studentID string) (*models.Student, error)
	UpdateStudentDues(studentID string, dues float64) error
}

// PaymentStore persists payment records.
type PaymentStore interface {
	CreatePayment(p *models.Payment) error
}

// PaymentService records fee payments and keeps the paying student's cached
// dues balance consistent with the payment ledger.
type PaymentService struct {
	students StudentStore
	payments PaymentStore
}

func NewPaymentService(students StudentStore, payments PaymentStore) *PaymentService {
	return &PaymentService{students: students, payments: payments}
}

// PaymentReceipt is the outcome of recording a payment. The payment itself
// is always durable when a receipt is returned; DuesAdjusted and DuesNote
// report what happened to the balance projection.
type PaymentReceipt struct {
	Payment      *models.Payment `json:"payment"`
	DuesAdjusted bool            `json:"dues_adjusted"`
	Dues         float64         `json:"dues"`
	DuesNote     string          `json:"dues_note,omitempty"`
}

// RecordPayment persists a payment and then applies its effect on the
// student's dues. The payment write is authoritative: if it fails the whole
// operation fails with ErrPaymentWrite. The dues adjustment is a best-effort
// projection; its failure is logged and noted on the receipt but never fails
// the operation, because the payment ledger is the source of financial truth
// and the balance can be recomputed from it.
func (s *PaymentService) RecordPayment(input models.PaymentInput) (*PaymentReceipt, error) {
	if input.StudentID == "" {
		return nil, fmt.Errorf("%w: student_id is required", ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	payment := &models.Payment{
		StudentID: input.StudentID,
		Amount:    input.Amount,
		Mode:      input.Mode,
		Reference: uuid.NewString(),
	}
	if input.PaymentDate != "" {
		t, err := ParseDate(input.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: payment_date: %v", ErrInvalidInput, err)
		}
		payment.PaymentDate = &t
	}

	if err := s.payments.CreatePayment(payment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentWrite, err)
	}

	receipt := &PaymentReceipt{Payment: payment}
	s.applyDues(receipt)
	return receipt, nil
}

// applyDues reduces the paying student's cached balance, clamped at zero.
// The payment record is already durable at this point; nothing here may
// escalate into an operation failure.
func (s *PaymentService) applyDues(receipt *PaymentReceipt) {
	payment := receipt.Payment

	student, err := s.students.GetStudentByID(payment.StudentID)
	if err != nil {
		receipt.DuesNote = "dues lookup failed: " + err.Error()
		log.Printf("Warning: failed to load student %s for dues update: %v", payment.StudentID, err)
		return
	}
	if student == nil || student.Dues == nil {
		// No balance to project onto; the payment stands on its own.
		return
	}

	newDues := math.Max(0, *student.Dues-payment.Amount)
	if err := s.students.UpdateStudentDues(student.ID, newDues); err != nil {
		receipt.DuesNote = "dues update failed: " + err.Error()
		log.Printf("Warning: failed to update dues for student %s: %v", student.ID, err)
		return
	}

	receipt.DuesAdjusted = true
	receipt.Dues = newDues
}

// OutstandingBalance recomputes a student's balance from the payment ledger
// instead of trusting the cached dues projection.
func OutstandingBalance(feeStructure *float64, payments []*models.Payment) float64 {
	var owed float64
	if feeStructure != nil {
		owed = *feeStructure
	}
	for _, p := range payments {
		owed -= p.Amount
	}
	return math.Max(0, owed)
}
