package billing

import (
	"context"

	"github.com/google/uuid"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*Service, error)
	List(ctx context.Context, limit, offset int) ([]*Service, int, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Payment, error)

	// Bill lines
	AddBill(ctx context.Context, b *Bill) error
	GetBills(ctx context.Context, paymentID uuid.UUID) ([]*Bill, error)
}
