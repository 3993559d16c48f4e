package scheduling

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

type appointmentRepoPG struct {
	q querier
}

func NewAppointmentRepo(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{q: pool}
}

const appointmentCols = `id, patient_id, doctor_id, appointment_date, time, status, type, reason, created_at, updated_at`

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.q.Exec(ctx, `
		INSERT INTO appointment (id, patient_id, doctor_id, appointment_date, time, status, type, reason)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.PatientID, a.DoctorID, a.AppointmentDate, a.Time, a.Status, a.Type, a.Reason,
	)
	return err
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return scanAppointment(r.q.QueryRow(ctx, `SELECT `+appointmentCols+` FROM appointment WHERE id = $1`, id))
}

func (r *appointmentRepoPG) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+appointmentCols+` FROM appointment WHERE patient_id = $1 ORDER BY appointment_date`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *appointmentRepoPG) ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	rows, err := r.q.Query(ctx, `SELECT `+appointmentCols+` FROM appointment WHERE doctor_id = $1 ORDER BY appointment_date`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *appointmentRepoPG) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM appointment`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.q.Query(ctx, `SELECT `+appointmentCols+` FROM appointment ORDER BY appointment_date LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	appts, err := collectAppointments(rows)
	if err != nil {
		return nil, 0, err
	}
	return appts, total, nil
}

func (r *appointmentRepoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status AppointmentStatus) error {
	_, err := r.q.Exec(ctx, `UPDATE appointment SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	return err
}

func collectAppointments(rows pgx.Rows) ([]*Appointment, error) {
	var appts []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(
		&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentDate, &a.Time,
		&a.Status, &a.Type, &a.Reason, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
