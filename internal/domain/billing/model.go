// Package billing covers the priced service catalog, appointment payments,
// and the bill line items charged against each payment.
package billing

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	MethodCash PaymentMethod = "CASH"
	MethodCard PaymentMethod = "CARD"
)

type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "PAID"
	StatusPart   PaymentStatus = "PART"
	StatusUnpaid PaymentStatus = "UNPAID"
)

// Service maps to the services table: a priced catalog item such as an X-Ray
// or a consultation.
type Service struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ServiceName string    `db:"service_name" json:"service_name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Payment maps to the payment table: the money side of one appointment.
type Payment struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	PatientID     string        `db:"patient_id" json:"patient_id"`
	AppointmentID uuid.UUID     `db:"appointment_id" json:"appointment_id"`
	BillDate      time.Time     `db:"bill_date" json:"bill_date"`
	PaymentDate   time.Time     `db:"payment_date" json:"payment_date"`
	Discount      float64       `db:"discount" json:"discount"` // percent, 0-100
	TotalAmount   float64       `db:"total_amount" json:"total_amount"`
	AmountPaid    float64       `db:"amount_paid" json:"amount_paid"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"payment_method"`
	Status        PaymentStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// Bill maps to the patient_bills table: one service line charged against a
// payment.
type Bill struct {
	ID          uuid.UUID `db:"id" json:"id"`
	BillID      uuid.UUID `db:"bill_id" json:"bill_id"`
	ServiceID   uuid.UUID `db:"service_id" json:"service_id"`
	ServiceDate time.Time `db:"service_date" json:"service_date"`
	Quantity    int       `db:"quantity" json:"quantity"`
	UnitCost    float64   `db:"unit_cost" json:"unit_cost"`
	TotalCost   float64   `db:"total_cost" json:"total_cost"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DerivePaymentStatus reports PAID only when the paid amount covers the total
// exactly; any shortfall is a partial payment.
func DerivePaymentStatus(totalAmount, amountPaid float64) PaymentStatus {
	if amountPaid == totalAmount {
		return StatusPaid
	}
	return StatusPart
}
