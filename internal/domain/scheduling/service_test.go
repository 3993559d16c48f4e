package scheduling

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockAppointmentRepo struct {
	appointments map[uuid.UUID]*Appointment
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[uuid.UUID]*Appointment)}
}

func (m *mockAppointmentRepo) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	m.appointments[a.ID] = a
	return nil
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s not found", id)
	}
	return a, nil
}

func (m *mockAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range m.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range m.appointments {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	var out []*Appointment
	for _, a := range m.appointments {
		out = append(out, a)
	}
	return out, len(out), nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status AppointmentStatus) error {
	a, ok := m.appointments[id]
	if !ok {
		return fmt.Errorf("appointment %s not found", id)
	}
	a.Status = status
	return nil
}

func TestCreateAppointment(t *testing.T) {
	repo := newMockAppointmentRepo()
	svc := NewService(repo)

	a := &Appointment{
		PatientID:       "pat_1",
		DoctorID:        "doc_1",
		AppointmentDate: time.Now().AddDate(0, 0, 7),
		Time:            "10:00",
		Type:            "Checkup",
	}
	if err := svc.CreateAppointment(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if a.Status != StatusScheduled {
		t.Errorf("expected default status SCHEDULED, got %s", a.Status)
	}
}

func TestCreateAppointment_RequiresParties(t *testing.T) {
	svc := NewService(newMockAppointmentRepo())

	a := &Appointment{AppointmentDate: time.Now()}
	if err := svc.CreateAppointment(context.Background(), a); err == nil {
		t.Fatal("expected error for missing patient/doctor")
	}
}

func TestCreateAppointment_KeepsExplicitStatus(t *testing.T) {
	repo := newMockAppointmentRepo()
	svc := NewService(repo)

	a := &Appointment{
		PatientID:       "pat_1",
		DoctorID:        "doc_1",
		AppointmentDate: time.Now(),
		Status:          StatusPending,
	}
	if err := svc.CreateAppointment(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != StatusPending {
		t.Errorf("explicit status overwritten, got %s", a.Status)
	}
}

func TestUpdateStatus_RejectsUnknown(t *testing.T) {
	repo := newMockAppointmentRepo()
	svc := NewService(repo)

	a := &Appointment{PatientID: "pat_1", DoctorID: "doc_1", AppointmentDate: time.Now()}
	if err := svc.CreateAppointment(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), a.ID, "NO_SHOW"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if err := svc.UpdateStatus(context.Background(), a.ID, StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
