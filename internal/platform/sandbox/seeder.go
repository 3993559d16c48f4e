package sandbox

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/scheduling"
)

// SeedConfig controls the volume of generated data.
type SeedConfig struct {
	DoctorCount      int   `json:"doctorCount"`
	PatientCount     int   `json:"patientCount"`
	AppointmentCount int   `json:"appointmentCount"`
	Seed             int64 `json:"seed"`
}

// DefaultSeedConfig matches the volumes used for developer databases.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		DoctorCount:      10,
		PatientCount:     20,
		AppointmentCount: 20,
	}
}

// SeedResult summarizes one seed run.
type SeedResult struct {
	Staff        int           `json:"staff"`
	Doctors      int           `json:"doctors"`
	WorkingDays  int           `json:"workingDays"`
	Patients     int           `json:"patients"`
	Services     int           `json:"services"`
	Appointments int           `json:"appointments"`
	Payments     int           `json:"payments"`
	Bills        int           `json:"bills"`
	Duration     time.Duration `json:"duration"`
}

// Seeder writes one batch of synthetic data through the domain services, so
// seeded rows pass the same validation as real ones. Runs are additive: rows
// from earlier runs are left in place.
type Seeder struct {
	gen        *DataGenerator
	cfg        SeedConfig
	identity   *identity.Service
	scheduling *scheduling.Service
	billing    *billing.BillingService
	log        zerolog.Logger
}

func NewSeeder(cfg SeedConfig, idSvc *identity.Service, schedSvc *scheduling.Service, billSvc *billing.BillingService, log zerolog.Logger) *Seeder {
	return &Seeder{
		gen:        NewDataGenerator(cfg.Seed),
		cfg:        cfg,
		identity:   idSvc,
		scheduling: schedSvc,
		billing:    billSvc,
		log:        log,
	}
}

// Run executes the batch in dependency order, stopping at the first error.
func (s *Seeder) Run(ctx context.Context) (*SeedResult, error) {
	start := time.Now()
	result := &SeedResult{}

	for _, role := range staffRoles {
		st := s.gen.GenerateStaff(role)
		if err := s.identity.CreateStaff(ctx, st); err != nil {
			return nil, fmt.Errorf("seed staff %s: %w", role, err)
		}
		result.Staff++
	}
	s.log.Info().Int("count", result.Staff).Msg("seeded staff")

	var doctorIDs []string
	for i := 0; i < s.cfg.DoctorCount; i++ {
		d := s.gen.GenerateDoctor(i)
		if err := s.identity.CreateDoctor(ctx, d); err != nil {
			return nil, fmt.Errorf("seed doctor %d: %w", i, err)
		}
		for _, wd := range s.gen.GenerateWorkingDays(d.ID) {
			if err := s.identity.AddWorkingDay(ctx, wd); err != nil {
				return nil, fmt.Errorf("seed working day for doctor %s: %w", d.ID, err)
			}
			result.WorkingDays++
		}
		doctorIDs = append(doctorIDs, d.ID)
		result.Doctors++
	}
	s.log.Info().Int("count", result.Doctors).Msg("seeded doctors")

	var patientIDs []string
	for i := 0; i < s.cfg.PatientCount; i++ {
		p := s.gen.GeneratePatient(i)
		if err := s.identity.CreatePatient(ctx, p); err != nil {
			return nil, fmt.Errorf("seed patient %d: %w", i, err)
		}
		patientIDs = append(patientIDs, p.ID)
		result.Patients++
	}
	s.log.Info().Int("count", result.Patients).Msg("seeded patients")

	var services []*billing.Service
	for _, name := range serviceNames {
		svc := s.gen.GenerateService(name)
		if err := s.billing.CreateService(ctx, svc); err != nil {
			return nil, fmt.Errorf("seed service %s: %w", name, err)
		}
		services = append(services, svc)
		result.Services++
	}
	s.log.Info().Int("count", result.Services).Msg("seeded services")

	if len(doctorIDs) == 0 || len(patientIDs) == 0 {
		result.Duration = time.Since(start)
		return result, nil
	}

	for i := 0; i < s.cfg.AppointmentCount; i++ {
		patientID := patientIDs[s.gen.rng.Intn(len(patientIDs))]
		doctorID := doctorIDs[s.gen.rng.Intn(len(doctorIDs))]

		a := s.gen.GenerateAppointment(i, patientID, doctorID)
		if err := s.scheduling.CreateAppointment(ctx, a); err != nil {
			return nil, fmt.Errorf("seed appointment %d: %w", i, err)
		}
		result.Appointments++

		p := s.gen.GeneratePayment(a)
		if err := s.billing.CreatePayment(ctx, p); err != nil {
			return nil, fmt.Errorf("seed payment for appointment %s: %w", a.ID, err)
		}
		result.Payments++

		lines := 2 + s.gen.rng.Intn(3)
		for j := 0; j < lines; j++ {
			svc := services[s.gen.rng.Intn(len(services))]
			b := s.gen.GenerateBill(p, svc)
			if err := s.billing.AddBill(ctx, b); err != nil {
				return nil, fmt.Errorf("seed bill for payment %s: %w", p.ID, err)
			}
			result.Bills++
		}
	}
	s.log.Info().Int("count", result.Appointments).Msg("seeded appointments")

	result.Duration = time.Since(start)
	return result, nil
}
