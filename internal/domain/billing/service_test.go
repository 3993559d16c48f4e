package billing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockServiceRepo struct {
	services map[uuid.UUID]*Service
}

func newMockServiceRepo() *mockServiceRepo {
	return &mockServiceRepo{services: make(map[uuid.UUID]*Service)}
}

func (m *mockServiceRepo) Create(ctx context.Context, s *Service) error {
	s.ID = uuid.New()
	m.services[s.ID] = s
	return nil
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*Service, error) {
	s, ok := m.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s not found", id)
	}
	return s, nil
}

func (m *mockServiceRepo) List(ctx context.Context, limit, offset int) ([]*Service, int, error) {
	var out []*Service
	for _, s := range m.services {
		out = append(out, s)
	}
	return out, len(out), nil
}

type mockPaymentRepo struct {
	payments map[uuid.UUID]*Payment
	bills    map[uuid.UUID][]*Bill
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{
		payments: make(map[uuid.UUID]*Payment),
		bills:    make(map[uuid.UUID][]*Bill),
	}
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *Payment) error {
	p.ID = uuid.New()
	m.payments[p.ID] = p
	return nil
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	p, ok := m.payments[id]
	if !ok {
		return nil, fmt.Errorf("payment %s not found", id)
	}
	return p, nil
}

func (m *mockPaymentRepo) ListByPatient(ctx context.Context, patientID string) ([]*Payment, error) {
	var out []*Payment
	for _, p := range m.payments {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepo) AddBill(ctx context.Context, b *Bill) error {
	b.ID = uuid.New()
	m.bills[b.BillID] = append(m.bills[b.BillID], b)
	return nil
}

func (m *mockPaymentRepo) GetBills(ctx context.Context, paymentID uuid.UUID) ([]*Bill, error) {
	return m.bills[paymentID], nil
}

func newTestService() *BillingService {
	return NewBillingService(newMockServiceRepo(), newMockPaymentRepo())
}

func TestDerivePaymentStatus(t *testing.T) {
	if got := DerivePaymentStatus(50000, 50000); got != StatusPaid {
		t.Errorf("full payment: expected PAID, got %s", got)
	}
	if got := DerivePaymentStatus(50000, 42500); got != StatusPart {
		t.Errorf("partial payment: expected PART, got %s", got)
	}
	if got := DerivePaymentStatus(50000, 0); got != StatusPart {
		t.Errorf("zero payment: expected PART, got %s", got)
	}
}

func TestCreatePayment_SetsStatus(t *testing.T) {
	svc := newTestService()

	p := &Payment{
		PatientID:     "pat_1",
		AppointmentID: uuid.New(),
		BillDate:      time.Now(),
		PaymentDate:   time.Now(),
		TotalAmount:   60000,
		AmountPaid:    60000,
		PaymentMethod: MethodCash,
	}
	if err := svc.CreatePayment(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != StatusPaid {
		t.Errorf("expected PAID, got %s", p.Status)
	}

	p2 := &Payment{
		PatientID:     "pat_1",
		AppointmentID: uuid.New(),
		TotalAmount:   60000,
		AmountPaid:    51000,
		PaymentMethod: MethodCard,
	}
	if err := svc.CreatePayment(context.Background(), p2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.Status != StatusPart {
		t.Errorf("expected PART, got %s", p2.Status)
	}
}

func TestCreatePayment_RejectsOverpayment(t *testing.T) {
	svc := newTestService()

	p := &Payment{
		PatientID:     "pat_1",
		AppointmentID: uuid.New(),
		TotalAmount:   60000,
		AmountPaid:    60001,
	}
	if err := svc.CreatePayment(context.Background(), p); err == nil {
		t.Fatal("expected error when amount paid exceeds total")
	}
}

func TestCreateService_Validation(t *testing.T) {
	svc := newTestService()

	if err := svc.CreateService(context.Background(), &Service{Price: 5000}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if err := svc.CreateService(context.Background(), &Service{ServiceName: "X-Ray"}); err == nil {
		t.Fatal("expected error for non-positive price")
	}
	if err := svc.CreateService(context.Background(), &Service{ServiceName: "X-Ray", Price: 15000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddBill_ComputesTotal(t *testing.T) {
	svc := newTestService()

	b := &Bill{
		BillID:      uuid.New(),
		ServiceID:   uuid.New(),
		ServiceDate: time.Now(),
		Quantity:    3,
		UnitCost:    12000,
	}
	if err := svc.AddBill(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.TotalCost != 36000 {
		t.Errorf("expected total 36000, got %.2f", b.TotalCost)
	}
}

func TestAddBill_RequiresQuantity(t *testing.T) {
	svc := newTestService()

	b := &Bill{BillID: uuid.New(), ServiceID: uuid.New(), Quantity: 0, UnitCost: 100}
	if err := svc.AddBill(context.Background(), b); err == nil {
		t.Fatal("expected error for zero quantity")
	}
}
