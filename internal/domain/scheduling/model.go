// Package scheduling manages appointments between patients and doctors.
package scheduling

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment maps to the appointment table. PatientID and DoctorID reference
// the identity records by their provider-issued IDs.
type Appointment struct {
	ID              uuid.UUID         `db:"id" json:"id"`
	PatientID       string            `db:"patient_id" json:"patient_id"`
	DoctorID        string            `db:"doctor_id" json:"doctor_id"`
	AppointmentDate time.Time         `db:"appointment_date" json:"appointment_date"`
	Time            string            `db:"time" json:"time"`
	Status          AppointmentStatus `db:"status" json:"status"`
	Type            string            `db:"type" json:"type"`
	Reason          string            `db:"reason" json:"reason"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time         `db:"updated_at" json:"updated_at"`
}
