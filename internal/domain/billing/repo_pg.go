package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// -- Service Repository --

type serviceRepoPG struct {
	q querier
}

func NewServiceRepo(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepoPG{q: pool}
}

const serviceCols = `id, service_name, description, price, created_at, updated_at`

func (r *serviceRepoPG) Create(ctx context.Context, s *Service) error {
	s.ID = uuid.New()
	_, err := r.q.Exec(ctx, `
		INSERT INTO services (id, service_name, description, price)
		VALUES ($1,$2,$3,$4)`,
		s.ID, s.ServiceName, s.Description, s.Price,
	)
	return err
}

func (r *serviceRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Service, error) {
	return scanService(r.q.QueryRow(ctx, `SELECT `+serviceCols+` FROM services WHERE id = $1`, id))
}

func (r *serviceRepoPG) List(ctx context.Context, limit, offset int) ([]*Service, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.q.Query(ctx, `SELECT `+serviceCols+` FROM services ORDER BY service_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var services []*Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, 0, err
		}
		services = append(services, s)
	}
	return services, total, rows.Err()
}

func scanService(row pgx.Row) (*Service, error) {
	var s Service
	err := row.Scan(&s.ID, &s.ServiceName, &s.Description, &s.Price, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// -- Payment Repository --

type paymentRepoPG struct {
	q querier
}

func NewPaymentRepo(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepoPG{q: pool}
}

const paymentCols = `id, patient_id, appointment_id, bill_date, payment_date, discount,
	total_amount, amount_paid, payment_method, status, created_at, updated_at`

func (r *paymentRepoPG) Create(ctx context.Context, p *Payment) error {
	p.ID = uuid.New()
	_, err := r.q.Exec(ctx, `
		INSERT INTO payment (
			id, patient_id, appointment_id, bill_date, payment_date, discount,
			total_amount, amount_paid, payment_method, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		p.ID, p.PatientID, p.AppointmentID, p.BillDate, p.PaymentDate, p.Discount,
		p.TotalAmount, p.AmountPaid, p.PaymentMethod, p.Status,
	)
	return err
}

func (r *paymentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return scanPayment(r.q.QueryRow(ctx, `SELECT `+paymentCols+` FROM payment WHERE id = $1`, id))
}

func (r *paymentRepoPG) ListByPatient(ctx context.Context, patientID string) ([]*Payment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+paymentCols+` FROM payment WHERE patient_id = $1 ORDER BY bill_date`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepoPG) AddBill(ctx context.Context, b *Bill) error {
	b.ID = uuid.New()
	_, err := r.q.Exec(ctx, `
		INSERT INTO patient_bills (id, bill_id, service_id, service_date, quantity, unit_cost, total_cost)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		b.ID, b.BillID, b.ServiceID, b.ServiceDate, b.Quantity, b.UnitCost, b.TotalCost,
	)
	return err
}

func (r *paymentRepoPG) GetBills(ctx context.Context, paymentID uuid.UUID) ([]*Bill, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, bill_id, service_id, service_date, quantity, unit_cost, total_cost, created_at
		FROM patient_bills WHERE bill_id = $1`, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*Bill
	for rows.Next() {
		var b Bill
		if err := rows.Scan(&b.ID, &b.BillID, &b.ServiceID, &b.ServiceDate, &b.Quantity, &b.UnitCost, &b.TotalCost, &b.CreatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, &b)
	}
	return bills, rows.Err()
}

func scanPayment(row pgx.Row) (*Payment, error) {
	var p Payment
	err := row.Scan(
		&p.ID, &p.PatientID, &p.AppointmentID, &p.BillDate, &p.PaymentDate, &p.Discount,
		&p.TotalAmount, &p.AmountPaid, &p.PaymentMethod, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
