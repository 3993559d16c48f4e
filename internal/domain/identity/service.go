package identity

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// UserDirectory is the slice of the identity provider the service needs:
// pushing name changes back to the account that owns a patient record.
type UserDirectory interface {
	UpdateUser(ctx context.Context, userID, firstName, lastName string) error
}

// Service coordinates patient, doctor and staff records and keeps patient
// names in sync with the identity provider.
type Service struct {
	patients PatientRepository
	doctors  DoctorRepository
	staff    StaffRepository
	users    UserDirectory
	log      zerolog.Logger
}

func NewService(patients PatientRepository, doctors DoctorRepository, staff StaffRepository, users UserDirectory, log zerolog.Logger) *Service {
	return &Service{
		patients: patients,
		doctors:  doctors,
		staff:    staff,
		users:    users,
		log:      log,
	}
}

// SavePatient handles a patient form submission for the record keyed by
// patientID. The raw payload is validated first; an invalid payload causes no
// side effects. On a valid payload the first/last name is pushed to the
// identity provider and the full record is written, in that order. Errors
// never escape: every outcome is reported through the SaveResult.
func (s *Service) SavePatient(ctx context.Context, patientID string, raw map[string]interface{}) SaveResult {
	form, err := ParseForm(raw)
	if err != nil {
		s.log.Warn().Err(err).Str("patient_id", patientID).Msg("patient form rejected")
		return SaveResult{Failure: &Failure{Kind: FailureValidation, Msg: "Provide all required fields"}}
	}

	if err := s.users.UpdateUser(ctx, patientID, form.FirstName, form.LastName); err != nil {
		s.log.Error().Err(err).Str("patient_id", patientID).Msg("identity provider update failed")
		return SaveResult{Failure: &Failure{Kind: FailureIdentity, Msg: err.Error()}}
	}

	p := form.Patient(patientID)
	if err := s.patients.Update(ctx, p); err != nil {
		// The identity provider already holds the new name at this point;
		// the drift stands until the next successful save.
		s.log.Error().Err(err).Str("patient_id", patientID).Msg("patient update failed")
		return SaveResult{Failure: &Failure{Kind: FailureStorage, Msg: err.Error()}}
	}

	return SaveResult{Patient: p}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.ID == "" || p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("patient id, first name and last name are required")
	}
	if !p.PrivacyConsent || !p.ServiceConsent || !p.MedicalConsent {
		return fmt.Errorf("patient consent flags must all be granted")
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if d.ID == "" || d.Name == "" || d.Email == "" {
		return fmt.Errorf("doctor id, name and email are required")
	}
	if d.Specialization == "" || d.LicenseNumber == "" {
		return fmt.Errorf("doctor specialization and license number are required")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

func (s *Service) AddWorkingDay(ctx context.Context, wd *WorkingDay) error {
	if wd.DoctorID == "" || wd.Day == "" {
		return fmt.Errorf("working day doctor id and day are required")
	}
	return s.doctors.AddWorkingDay(ctx, wd)
}

func (s *Service) GetWorkingDays(ctx context.Context, doctorID string) ([]*WorkingDay, error) {
	return s.doctors.GetWorkingDays(ctx, doctorID)
}

func (s *Service) CreateStaff(ctx context.Context, st *Staff) error {
	if st.ID == "" || st.Name == "" || st.Email == "" {
		return fmt.Errorf("staff id, name and email are required")
	}
	if st.Role == "" {
		return fmt.Errorf("staff role is required")
	}
	return s.staff.Create(ctx, st)
}

func (s *Service) GetStaff(ctx context.Context, id string) (*Staff, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *Service) ListStaff(ctx context.Context, limit, offset int) ([]*Staff, int, error) {
	return s.staff.List(ctx, limit, offset)
}
