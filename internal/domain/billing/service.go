package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type BillingService struct {
	services ServiceRepository
	payments PaymentRepository
}

func NewBillingService(services ServiceRepository, payments PaymentRepository) *BillingService {
	return &BillingService{services: services, payments: payments}
}

func (s *BillingService) CreateService(ctx context.Context, svc *Service) error {
	if svc.ServiceName == "" {
		return fmt.Errorf("service name is required")
	}
	if svc.Price <= 0 {
		return fmt.Errorf("service price must be positive")
	}
	return s.services.Create(ctx, svc)
}

func (s *BillingService) GetService(ctx context.Context, id uuid.UUID) (*Service, error) {
	return s.services.GetByID(ctx, id)
}

func (s *BillingService) ListServices(ctx context.Context, limit, offset int) ([]*Service, int, error) {
	return s.services.List(ctx, limit, offset)
}

// CreatePayment records the money side of an appointment. The paid amount may
// never exceed the total, and the status always follows from the two amounts.
func (s *BillingService) CreatePayment(ctx context.Context, p *Payment) error {
	if p.PatientID == "" {
		return fmt.Errorf("payment patient id is required")
	}
	if p.AppointmentID == uuid.Nil {
		return fmt.Errorf("payment appointment id is required")
	}
	if p.TotalAmount <= 0 {
		return fmt.Errorf("payment total amount must be positive")
	}
	if p.AmountPaid > p.TotalAmount {
		return fmt.Errorf("amount paid %.2f exceeds total %.2f", p.AmountPaid, p.TotalAmount)
	}
	p.Status = DerivePaymentStatus(p.TotalAmount, p.AmountPaid)
	return s.payments.Create(ctx, p)
}

func (s *BillingService) GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *BillingService) ListPaymentsByPatient(ctx context.Context, patientID string) ([]*Payment, error) {
	return s.payments.ListByPatient(ctx, patientID)
}

// AddBill charges one service line against a payment. TotalCost is always
// recomputed from quantity and unit cost.
func (s *BillingService) AddBill(ctx context.Context, b *Bill) error {
	if b.BillID == uuid.Nil || b.ServiceID == uuid.Nil {
		return fmt.Errorf("bill payment id and service id are required")
	}
	if b.Quantity < 1 {
		return fmt.Errorf("bill quantity must be at least 1")
	}
	b.TotalCost = float64(b.Quantity) * b.UnitCost
	return s.payments.AddBill(ctx, b)
}

func (s *BillingService) GetBills(ctx context.Context, paymentID uuid.UUID) ([]*Bill, error) {
	return s.payments.GetBills(ctx, paymentID)
}
