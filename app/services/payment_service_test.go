package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxme77/School-finance-management-system/app/models"
)

type fakeStudentStore struct {
	student   *models.Student
	getErr    error
	updateErr error

	updateCalls int
	updatedDues float64
}

func (f *fakeStudentStore) GetStudentByID(studentID string) (*models.Student, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.student, nil
}

func (f *fakeStudentStore) UpdateStudentDues(studentID string, dues float64) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedDues = dues
	if f.student != nil {
		f.student.Dues = &dues
	}
	return nil
}

type fakePaymentStore struct {
	err     error
	created []*models.Payment
}

func (f *fakePaymentStore) CreatePayment(p *models.Payment) error {
	if f.err != nil {
		return f.err
	}
	p.ID = "payment-1"
	if p.PaymentDate == nil {
		now := time.Now()
		p.PaymentDate = &now
	}
	p.CreatedAt = time.Now()
	f.created = append(f.created, p)
	return nil
}

func studentWithDues(dues float64) *models.Student {
	return &models.Student{ID: "student-1", Name: "Amina Yusuf", Dues: &dues}
}

func TestRecordPaymentReducesDues(t *testing.T) {
	students := &fakeStudentStore{student: studentWithDues(1000)}
	payments := &fakePaymentStore{}
	svc := NewPaymentService(students, payments)

	receipt, err := svc.RecordPayment(models.PaymentInput{StudentID: "student-1", Amount: 300})
	require.NoError(t, err)

	require.NotNil(t, receipt.Payment)
	assert.Equal(t, "payment-1", receipt.Payment.ID)
	assert.NotEmpty(t, receipt.Payment.Reference)
	assert.True(t, receipt.DuesAdjusted)
	assert.Equal(t, 700.0, receipt.Dues)
	assert.Equal(t, 700.0, students.updatedDues)
	assert.Empty(t, receipt.DuesNote)
}

func TestRecordPaymentClampsDuesAtZero(t *testing.T) {
	students := &fakeStudentStore{student: studentWithDues(200)}
	svc := NewPaymentService(students, &fakePaymentStore{})

	receipt, err := svc.RecordPayment(models.PaymentInput{StudentID: "student-1", Amount: 500})
	require.NoError(t, err)

	assert.True(t, receipt.DuesAdjusted)
	assert.Equal(t, 0.0, receipt.Dues)
	assert.Equal(t, 0.0, students.updatedDues)
}

func TestRecordPaymentFailedWriteSurfacesAndSkipsDues(t *testing.T) {
	students := &fakeStudentStore{student: studentWithDues(1000)}
	payments := &fakePaymentStore{err: errors.New("store unavailable")}
	svc := NewPaymentService(students, payments)

	receipt, err := svc.RecordPayment(models.PaymentInput{StudentID: "student-1", Amount: 300})

	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPaymentWrite)
	assert.Equal(t, 0, students.updateCalls, "dues must stay untouched when the payment write fails")
	assert.Equal(t, 1000.0, *students.student.Dues)
}

func TestRecordPaymentSucceedsWhenDuesLookupFails(t *testing.T) {
	students := &fakeStudentStore{getErr: errors.New("network timeout")}
	payments := &fakePaymentStore{}
	svc := NewPaymentService(students, payments)

	receipt, err := svc.RecordPayment(models.PaymentInput{StudentID: "student-1", Amount: 300})
	require.NoError(t, err, "a failed projection must not fail the payment")

	require.NotNil(t, receipt.Payment)
	assert.False(t, receipt.DuesAdjusted)
	assert.Contains(t, receipt.DuesNote, "dues lookup failed")
	assert.Len(t, payments.created, 1)
}

func TestRecordPaymentSucceedsWhenDuesUpdateFails(t *testing.T) {
	students := &fakeStudentStore{student: studentWithDues(1000), updateErr: errors.New("conflict")}
	svc := NewPaymentService(students, &fakePaymentStore{})

	receipt, err := svc.RecordPayment(models.PaymentInput{StudentID: "student-1", Amount: 300})
	require.NoError(t, err)

	assert.False(t, receipt.DuesAdjusted)
	assert.Contains(t, receipt.DuesNote, "dues update failed")
	assert.Equal(t, 1000.0, *students.student.Dues, "dues must stay at the prior value")
}

func TestRecordPaymentSkipsSilentlyWithoutDuesField(t *testing.T) {
	tests := []struct {
		name    string
		student *models.Student
	}{
		{"student missing", nil},
		{"dues never populated", &models.Student{ID: "student-1", Name: "Amina Yusuf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students := &fakeStudentStore{student: tt.student}
			svc := NewPaymentService(students, &fakePaymentStore{})

			receipt, err := svc.RecordPayment(models.PaymentInput{StudentID: "student-1", Amount: 300})
			require.NoError(t, err)

			assert.False(t, receipt.DuesAdjusted)
			assert.Empty(t, receipt.DuesNote, "skipping is not a failure")
			assert.Equal(t, 0, students.updateCalls)
		})
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	svc := NewPaymentService(&fakeStudentStore{}, &fakePaymentStore{})

	tests := []struct {
		name  string
		input models.PaymentInput
	}{
		{"missing student", models.PaymentInput{Amount: 100}},
		{"zero amount", models.PaymentInput{StudentID: "student-1"}},
		{"negative amount", models.PaymentInput{StudentID: "student-1", Amount: -50}},
		{"bad date", models.PaymentInput{StudentID: "student-1", Amount: 100, PaymentDate: "31/01/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := svc.RecordPayment(tt.input)
			assert.Nil(t, receipt)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRecordPaymentUsesProvidedDate(t *testing.T) {
	students := &fakeStudentStore{student: studentWithDues(100)}
	payments := &fakePaymentStore{}
	svc := NewPaymentService(students, payments)

	receipt, err := svc.RecordPayment(models.PaymentInput{
		StudentID:   "student-1",
		Amount:      50,
		Mode:        "cash",
		PaymentDate: "2024-03-15",
	})
	require.NoError(t, err)

	require.NotNil(t, receipt.Payment.PaymentDate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *receipt.Payment.PaymentDate)
	assert.Equal(t, "cash", receipt.Payment.Mode)
}

func TestOutstandingBalance(t *testing.T) {
	fee := 1500.0

	payments := []*models.Payment{{Amount: 400}, {Amount: 600}}
	assert.Equal(t, 500.0, OutstandingBalance(&fee, payments))

	// Overpayment clamps at zero.
	payments = append(payments, &models.Payment{Amount: 900})
	assert.Equal(t, 0.0, OutstandingBalance(&fee, payments))

	// No fee structure means nothing owed.
	assert.Equal(t, 0.0, OutstandingBalance(nil, payments))
}
