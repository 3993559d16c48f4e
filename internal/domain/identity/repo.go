package identity

import "context"

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id string) (*Doctor, error)
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)

	// Working days
	AddWorkingDay(ctx context.Context, wd *WorkingDay) error
	GetWorkingDays(ctx context.Context, doctorID string) ([]*WorkingDay, error)
}

type StaffRepository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id string) (*Staff, error)
	List(ctx context.Context, limit, offset int) ([]*Staff, int, error)
}
