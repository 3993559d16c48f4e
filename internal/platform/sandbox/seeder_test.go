package sandbox

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/scheduling"
)

// In-memory stores shared by the repositories below so tests can inspect
// everything a run wrote.
type memStore struct {
	staff        []*identity.Staff
	doctors      []*identity.Doctor
	workingDays  []*identity.WorkingDay
	patients     []*identity.Patient
	services     []*billing.Service
	appointments []*scheduling.Appointment
	payments     []*billing.Payment
	bills        []*billing.Bill
}

type memPatientRepo struct{ store *memStore }

func (m *memPatientRepo) Create(ctx context.Context, p *identity.Patient) error {
	m.store.patients = append(m.store.patients, p)
	return nil
}

func (m *memPatientRepo) GetByID(ctx context.Context, id string) (*identity.Patient, error) {
	for _, p := range m.store.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("patient %s not found", id)
}

func (m *memPatientRepo) Update(ctx context.Context, p *identity.Patient) error { return nil }

func (m *memPatientRepo) List(ctx context.Context, limit, offset int) ([]*identity.Patient, int, error) {
	return m.store.patients, len(m.store.patients), nil
}

type memDoctorRepo struct{ store *memStore }

func (m *memDoctorRepo) Create(ctx context.Context, d *identity.Doctor) error {
	m.store.doctors = append(m.store.doctors, d)
	return nil
}

func (m *memDoctorRepo) GetByID(ctx context.Context, id string) (*identity.Doctor, error) {
	for _, d := range m.store.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("doctor %s not found", id)
}

func (m *memDoctorRepo) List(ctx context.Context, limit, offset int) ([]*identity.Doctor, int, error) {
	return m.store.doctors, len(m.store.doctors), nil
}

func (m *memDoctorRepo) AddWorkingDay(ctx context.Context, wd *identity.WorkingDay) error {
	wd.ID = uuid.New()
	m.store.workingDays = append(m.store.workingDays, wd)
	return nil
}

func (m *memDoctorRepo) GetWorkingDays(ctx context.Context, doctorID string) ([]*identity.WorkingDay, error) {
	var out []*identity.WorkingDay
	for _, wd := range m.store.workingDays {
		if wd.DoctorID == doctorID {
			out = append(out, wd)
		}
	}
	return out, nil
}

type memStaffRepo struct{ store *memStore }

func (m *memStaffRepo) Create(ctx context.Context, s *identity.Staff) error {
	m.store.staff = append(m.store.staff, s)
	return nil
}

func (m *memStaffRepo) GetByID(ctx context.Context, id string) (*identity.Staff, error) {
	for _, s := range m.store.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("staff %s not found", id)
}

func (m *memStaffRepo) List(ctx context.Context, limit, offset int) ([]*identity.Staff, int, error) {
	return m.store.staff, len(m.store.staff), nil
}

type memAppointmentRepo struct{ store *memStore }

func (m *memAppointmentRepo) Create(ctx context.Context, a *scheduling.Appointment) error {
	a.ID = uuid.New()
	m.store.appointments = append(m.store.appointments, a)
	return nil
}

func (m *memAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*scheduling.Appointment, error) {
	for _, a := range m.store.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (m *memAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]*scheduling.Appointment, error) {
	return nil, nil
}

func (m *memAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]*scheduling.Appointment, error) {
	return nil, nil
}

func (m *memAppointmentRepo) List(ctx context.Context, limit, offset int) ([]*scheduling.Appointment, int, error) {
	return m.store.appointments, len(m.store.appointments), nil
}

func (m *memAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status scheduling.AppointmentStatus) error {
	return nil
}

type memServiceRepo struct{ store *memStore }

func (m *memServiceRepo) Create(ctx context.Context, s *billing.Service) error {
	s.ID = uuid.New()
	m.store.services = append(m.store.services, s)
	return nil
}

func (m *memServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*billing.Service, error) {
	for _, s := range m.store.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("service %s not found", id)
}

func (m *memServiceRepo) List(ctx context.Context, limit, offset int) ([]*billing.Service, int, error) {
	return m.store.services, len(m.store.services), nil
}

type memPaymentRepo struct{ store *memStore }

func (m *memPaymentRepo) Create(ctx context.Context, p *billing.Payment) error {
	p.ID = uuid.New()
	m.store.payments = append(m.store.payments, p)
	return nil
}

func (m *memPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	for _, p := range m.store.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("payment %s not found", id)
}

func (m *memPaymentRepo) ListByPatient(ctx context.Context, patientID string) ([]*billing.Payment, error) {
	return nil, nil
}

func (m *memPaymentRepo) AddBill(ctx context.Context, b *billing.Bill) error {
	b.ID = uuid.New()
	m.store.bills = append(m.store.bills, b)
	return nil
}

func (m *memPaymentRepo) GetBills(ctx context.Context, paymentID uuid.UUID) ([]*billing.Bill, error) {
	var out []*billing.Bill
	for _, b := range m.store.bills {
		if b.BillID == paymentID {
			out = append(out, b)
		}
	}
	return out, nil
}

type nopDirectory struct{}

func (nopDirectory) UpdateUser(ctx context.Context, userID, firstName, lastName string) error {
	return nil
}

func runSeeder(t *testing.T, cfg SeedConfig) (*memStore, *SeedResult) {
	t.Helper()
	store := &memStore{}
	idSvc := identity.NewService(
		&memPatientRepo{store: store},
		&memDoctorRepo{store: store},
		&memStaffRepo{store: store},
		nopDirectory{},
		zerolog.Nop(),
	)
	schedSvc := scheduling.NewService(&memAppointmentRepo{store: store})
	billSvc := billing.NewBillingService(&memServiceRepo{store: store}, &memPaymentRepo{store: store})

	seeder := NewSeeder(cfg, idSvc, schedSvc, billSvc, zerolog.Nop())
	result, err := seeder.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store, result
}

func TestSeeder_Counts(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Seed = 42
	store, result := runSeeder(t, cfg)

	if result.Staff != 3 || len(store.staff) != 3 {
		t.Errorf("expected 3 staff, got %d", len(store.staff))
	}
	if result.Doctors != 10 || len(store.doctors) != 10 {
		t.Errorf("expected 10 doctors, got %d", len(store.doctors))
	}
	if result.WorkingDays != 20 || len(store.workingDays) != 20 {
		t.Errorf("expected 20 working days, got %d", len(store.workingDays))
	}
	if result.Patients != 20 || len(store.patients) != 20 {
		t.Errorf("expected 20 patients, got %d", len(store.patients))
	}
	if result.Services != 10 || len(store.services) != 10 {
		t.Errorf("expected 10 services, got %d", len(store.services))
	}
	if result.Appointments != 20 || len(store.appointments) != 20 {
		t.Errorf("expected 20 appointments, got %d", len(store.appointments))
	}
	if result.Payments != 20 || len(store.payments) != 20 {
		t.Errorf("expected 20 payments, got %d", len(store.payments))
	}
	if result.Bills < 40 || result.Bills > 80 {
		t.Errorf("expected 40-80 bills, got %d", result.Bills)
	}
}

func TestSeeder_DoctorAvailability(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Seed = 42
	store, _ := runSeeder(t, cfg)

	perDoctor := make(map[string][]string)
	for _, wd := range store.workingDays {
		perDoctor[wd.DoctorID] = append(perDoctor[wd.DoctorID], wd.Day)
		if wd.StartTime != "08:00" || wd.CloseTime != "17:00" {
			t.Errorf("unexpected hours %s-%s", wd.StartTime, wd.CloseTime)
		}
	}
	for _, d := range store.doctors {
		days := perDoctor[d.ID]
		if len(days) != 2 || days[0] != "Monday" || days[1] != "Wednesday" {
			t.Errorf("doctor %s has days %v", d.ID, days)
		}
	}

	for i, d := range store.doctors {
		want := identity.JobTypeFull
		if i%2 == 1 {
			want = identity.JobTypePart
		}
		if d.Type != want {
			t.Errorf("doctor %d: expected type %s, got %s", i, want, d.Type)
		}
	}
}

func TestSeeder_PatientDemographics(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Seed = 7
	store, _ := runSeeder(t, cfg)

	for i, p := range store.patients {
		wantGender := identity.GenderMale
		if i%2 == 1 {
			wantGender = identity.GenderFemale
		}
		if p.Gender != wantGender {
			t.Errorf("patient %d: expected gender %s, got %s", i, wantGender, p.Gender)
		}
		if p.MaritalStatus != maritalStatuses[i%3] {
			t.Errorf("patient %d: unexpected marital status %s", i, p.MaritalStatus)
		}
		if p.BloodGroup == nil || *p.BloodGroup != bloodGroups[i%4] {
			t.Errorf("patient %d: unexpected blood group", i)
		}
		if !p.PrivacyConsent || !p.ServiceConsent || !p.MedicalConsent {
			t.Errorf("patient %d: consent flags not granted", i)
		}
	}
}

func TestSeeder_ReferentialIntegrity(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Seed = 42
	store, _ := runSeeder(t, cfg)

	patientIDs := make(map[string]bool)
	for _, p := range store.patients {
		patientIDs[p.ID] = true
	}
	doctorIDs := make(map[string]bool)
	for _, d := range store.doctors {
		doctorIDs[d.ID] = true
	}
	appointmentIDs := make(map[uuid.UUID]bool)
	for _, a := range store.appointments {
		if !patientIDs[a.PatientID] {
			t.Errorf("appointment %s references unknown patient %s", a.ID, a.PatientID)
		}
		if !doctorIDs[a.DoctorID] {
			t.Errorf("appointment %s references unknown doctor %s", a.ID, a.DoctorID)
		}
		appointmentIDs[a.ID] = true
	}
	paymentIDs := make(map[uuid.UUID]bool)
	for _, p := range store.payments {
		if !appointmentIDs[p.AppointmentID] {
			t.Errorf("payment %s references unknown appointment %s", p.ID, p.AppointmentID)
		}
		if !patientIDs[p.PatientID] {
			t.Errorf("payment %s references unknown patient %s", p.ID, p.PatientID)
		}
		paymentIDs[p.ID] = true
	}
	serviceIDs := make(map[uuid.UUID]bool)
	for _, s := range store.services {
		serviceIDs[s.ID] = true
	}
	for _, b := range store.bills {
		if !paymentIDs[b.BillID] {
			t.Errorf("bill %s references unknown payment %s", b.ID, b.BillID)
		}
		if !serviceIDs[b.ServiceID] {
			t.Errorf("bill %s references unknown service %s", b.ID, b.ServiceID)
		}
	}
}

func TestSeeder_PaymentInvariants(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Seed = 42
	store, _ := runSeeder(t, cfg)

	for i, p := range store.payments {
		if p.AmountPaid > p.TotalAmount {
			t.Errorf("payment %d: paid %.2f exceeds total %.2f", i, p.AmountPaid, p.TotalAmount)
		}
		if p.Discount < 0 || p.Discount > 15 {
			t.Errorf("payment %d: discount %.2f out of percent range 0-15", i, p.Discount)
		}
		want := billing.DerivePaymentStatus(p.TotalAmount, p.AmountPaid)
		if p.Status != want {
			t.Errorf("payment %d: expected status %s, got %s", i, want, p.Status)
		}
	}
	for i, a := range store.appointments {
		want := scheduling.StatusScheduled
		if i%4 == 0 {
			want = scheduling.StatusPending
		}
		if a.Status != want {
			t.Errorf("appointment %d: expected status %s, got %s", i, want, a.Status)
		}
	}
}

func TestSeeder_Deterministic(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Seed = 99

	first, _ := runSeeder(t, cfg)
	second, _ := runSeeder(t, cfg)

	if len(first.patients) != len(second.patients) {
		t.Fatalf("patient counts differ: %d vs %d", len(first.patients), len(second.patients))
	}
	for i := range first.patients {
		a, b := first.patients[i], second.patients[i]
		if a.ID != b.ID || a.FirstName != b.FirstName || a.LastName != b.LastName {
			t.Errorf("patient %d differs between runs: %s %s vs %s %s", i, a.FirstName, a.LastName, b.FirstName, b.LastName)
		}
	}
	for i := range first.payments {
		a, b := first.payments[i], second.payments[i]
		if a.TotalAmount != b.TotalAmount || a.Discount != b.Discount {
			t.Errorf("payment %d differs between runs", i)
		}
	}
}

func TestSeeder_ServiceCatalog(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Seed = 42
	store, _ := runSeeder(t, cfg)

	for i, s := range store.services {
		if s.ServiceName != serviceNames[i] {
			t.Errorf("service %d: expected %q, got %q", i, serviceNames[i], s.ServiceName)
		}
		if s.Price < 5000 || s.Price > 50000 {
			t.Errorf("service %q: price %.2f out of range", s.ServiceName, s.Price)
		}
		if int(s.Price)%100 != 0 {
			t.Errorf("service %q: price %.2f not a multiple of 100", s.ServiceName, s.Price)
		}
	}
}
