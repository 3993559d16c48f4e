package identity

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

// -- Patient Repository --

type patientRepoPG struct {
	q querier
}

func NewPatientRepo(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{q: pool}
}

const patientCols = `id, first_name, last_name, date_of_birth, gender, phone, email,
	marital_status, address, emergency_contact_name, emergency_contact_number, relation,
	blood_group, allergies, medical_conditions,
	privacy_consent, service_consent, medical_consent, created_at, updated_at`

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	// Patient IDs come from the identity provider, never generated here.
	_, err := r.q.Exec(ctx, `
		INSERT INTO patient (
			id, first_name, last_name, date_of_birth, gender, phone, email,
			marital_status, address, emergency_contact_name, emergency_contact_number, relation,
			blood_group, allergies, medical_conditions,
			privacy_consent, service_consent, medical_consent
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Phone, p.Email,
		p.MaritalStatus, p.Address, p.EmergencyContactName, p.EmergencyContactNumber, p.Relation,
		p.BloodGroup, p.Allergies, p.MedicalConditions,
		p.PrivacyConsent, p.ServiceConsent, p.MedicalConsent,
	)
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, id string) (*Patient, error) {
	return scanPatient(r.q.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.q.Exec(ctx, `
		UPDATE patient SET
			first_name=$2, last_name=$3, date_of_birth=$4, gender=$5, phone=$6, email=$7,
			marital_status=$8, address=$9, emergency_contact_name=$10, emergency_contact_number=$11, relation=$12,
			blood_group=$13, allergies=$14, medical_conditions=$15,
			privacy_consent=$16, service_consent=$17, medical_consent=$18, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Phone, p.Email,
		p.MaritalStatus, p.Address, p.EmergencyContactName, p.EmergencyContactNumber, p.Relation,
		p.BloodGroup, p.Allergies, p.MedicalConditions,
		p.PrivacyConsent, p.ServiceConsent, p.MedicalConsent,
	)
	return err
}

func (r *patientRepoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.q.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY last_name, first_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		patients = append(patients, p)
	}
	return patients, total, rows.Err()
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender, &p.Phone, &p.Email,
		&p.MaritalStatus, &p.Address, &p.EmergencyContactName, &p.EmergencyContactNumber, &p.Relation,
		&p.BloodGroup, &p.Allergies, &p.MedicalConditions,
		&p.PrivacyConsent, &p.ServiceConsent, &p.MedicalConsent, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// -- Doctor Repository --

type doctorRepoPG struct {
	q querier
}

func NewDoctorRepo(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{q: pool}
}

const doctorCols = `id, email, name, specialization, license_number, phone, address,
	department, availability_status, type, created_at, updated_at`

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO doctor (
			id, email, name, specialization, license_number, phone, address,
			department, availability_status, type
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		d.ID, d.Email, d.Name, d.Specialization, d.LicenseNumber, d.Phone, d.Address,
		d.Department, d.AvailabilityStatus, d.Type,
	)
	return err
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id string) (*Doctor, error) {
	return scanDoctor(r.q.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctor WHERE id = $1`, id))
}

func (r *doctorRepoPG) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM doctor`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.q.Query(ctx, `SELECT `+doctorCols+` FROM doctor ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		doctors = append(doctors, d)
	}
	return doctors, total, rows.Err()
}

func (r *doctorRepoPG) AddWorkingDay(ctx context.Context, wd *WorkingDay) error {
	wd.ID = uuid.New()
	_, err := r.q.Exec(ctx, `
		INSERT INTO working_days (id, doctor_id, day, start_time, close_time)
		VALUES ($1,$2,$3,$4,$5)`,
		wd.ID, wd.DoctorID, wd.Day, wd.StartTime, wd.CloseTime,
	)
	return err
}

func (r *doctorRepoPG) GetWorkingDays(ctx context.Context, doctorID string) ([]*WorkingDay, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, doctor_id, day, start_time, close_time
		FROM working_days WHERE doctor_id = $1`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []*WorkingDay
	for rows.Next() {
		var wd WorkingDay
		if err := rows.Scan(&wd.ID, &wd.DoctorID, &wd.Day, &wd.StartTime, &wd.CloseTime); err != nil {
			return nil, err
		}
		days = append(days, &wd)
	}
	return days, rows.Err()
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(
		&d.ID, &d.Email, &d.Name, &d.Specialization, &d.LicenseNumber, &d.Phone, &d.Address,
		&d.Department, &d.AvailabilityStatus, &d.Type, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// -- Staff Repository --

type staffRepoPG struct {
	q querier
}

func NewStaffRepo(pool *pgxpool.Pool) StaffRepository {
	return &staffRepoPG{q: pool}
}

const staffCols = `id, email, name, phone, address, department, role, status, created_at, updated_at`

func (r *staffRepoPG) Create(ctx context.Context, s *Staff) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO staff (id, email, name, phone, address, department, role, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		s.ID, s.Email, s.Name, s.Phone, s.Address, s.Department, s.Role, s.Status,
	)
	return err
}

func (r *staffRepoPG) GetByID(ctx context.Context, id string) (*Staff, error) {
	return scanStaff(r.q.QueryRow(ctx, `SELECT `+staffCols+` FROM staff WHERE id = $1`, id))
}

func (r *staffRepoPG) List(ctx context.Context, limit, offset int) ([]*Staff, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.q.Query(ctx, `SELECT `+staffCols+` FROM staff ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []*Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, s)
	}
	return members, total, rows.Err()
}

func scanStaff(row pgx.Row) (*Staff, error) {
	var s Staff
	err := row.Scan(
		&s.ID, &s.Email, &s.Name, &s.Phone, &s.Address, &s.Department,
		&s.Role, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
