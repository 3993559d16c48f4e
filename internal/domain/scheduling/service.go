package scheduling

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	appointments AppointmentRepository
}

func NewService(appointments AppointmentRepository) *Service {
	return &Service{appointments: appointments}
}

func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	if a.PatientID == "" || a.DoctorID == "" {
		return fmt.Errorf("appointment patient id and doctor id are required")
	}
	if a.AppointmentDate.IsZero() {
		return fmt.Errorf("appointment date is required")
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return s.appointments.ListByDoctor(ctx, doctorID)
}

func (s *Service) ListAppointments(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.List(ctx, limit, offset)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status AppointmentStatus) error {
	switch status {
	case StatusPending, StatusScheduled, StatusCompleted, StatusCancelled:
	default:
		return fmt.Errorf("unknown appointment status %q", status)
	}
	return s.appointments.UpdateStatus(ctx, id, status)
}
