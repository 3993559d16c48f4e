// Package identity holds the people records of the hospital: patients,
// doctors, and staff. Rows are keyed by the Clerk user ID issued when the
// person's login identity is created, so the same opaque identifier addresses
// both the identity provider and the local row.
package identity

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// JobType is a doctor's employment type.
type JobType string

const (
	JobTypeFull JobType = "FULL"
	JobTypePart JobType = "PART"
)

type StaffRole string

const (
	RoleNurse         StaffRole = "NURSE"
	RoleCashier       StaffRole = "CASHIER"
	RoleLabTechnician StaffRole = "LAB_TECHNICIAN"
	RoleAdmin         StaffRole = "ADMIN"
)

type StaffStatus string

const (
	StatusActive   StaffStatus = "ACTIVE"
	StatusInactive StaffStatus = "INACTIVE"
	StatusDormant  StaffStatus = "DORMANT"
)

// Patient maps to the patient table.
type Patient struct {
	ID                     string    `db:"id" json:"id"`
	FirstName              string    `db:"first_name" json:"first_name"`
	LastName               string    `db:"last_name" json:"last_name"`
	DateOfBirth            time.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender                 Gender    `db:"gender" json:"gender"`
	Phone                  string    `db:"phone" json:"phone"`
	Email                  string    `db:"email" json:"email"`
	MaritalStatus          string    `db:"marital_status" json:"marital_status"`
	Address                string    `db:"address" json:"address"`
	EmergencyContactName   string    `db:"emergency_contact_name" json:"emergency_contact_name"`
	EmergencyContactNumber string    `db:"emergency_contact_number" json:"emergency_contact_number"`
	Relation               string    `db:"relation" json:"relation"`
	BloodGroup             *string   `db:"blood_group" json:"blood_group,omitempty"`
	Allergies              *string   `db:"allergies" json:"allergies,omitempty"`
	MedicalConditions      *string   `db:"medical_conditions" json:"medical_conditions,omitempty"`
	PrivacyConsent         bool      `db:"privacy_consent" json:"privacy_consent"`
	ServiceConsent         bool      `db:"service_consent" json:"service_consent"`
	MedicalConsent         bool      `db:"medical_consent" json:"medical_consent"`
	CreatedAt              time.Time `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time `db:"updated_at" json:"updated_at"`
}

// FullName returns the display name used in correspondence.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Doctor maps to the doctor table.
type Doctor struct {
	ID                 string    `db:"id" json:"id"`
	Email              string    `db:"email" json:"email"`
	Name               string    `db:"name" json:"name"`
	Specialization     string    `db:"specialization" json:"specialization"`
	LicenseNumber      string    `db:"license_number" json:"license_number"`
	Phone              string    `db:"phone" json:"phone"`
	Address            string    `db:"address" json:"address"`
	Department         string    `db:"department" json:"department"`
	AvailabilityStatus string    `db:"availability_status" json:"availability_status"`
	Type               JobType   `db:"type" json:"type"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

// WorkingDay maps to the working_days table: one weekly availability window
// for a doctor.
type WorkingDay struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DoctorID  string    `db:"doctor_id" json:"doctor_id"`
	Day       string    `db:"day" json:"day"`
	StartTime string    `db:"start_time" json:"start_time"`
	CloseTime string    `db:"close_time" json:"close_time"`
}

// Staff maps to the staff table.
type Staff struct {
	ID         string      `db:"id" json:"id"`
	Email      string      `db:"email" json:"email"`
	Name       string      `db:"name" json:"name"`
	Phone      string      `db:"phone" json:"phone"`
	Address    string      `db:"address" json:"address"`
	Department string      `db:"department" json:"department"`
	Role       StaffRole   `db:"role" json:"role"`
	Status     StaffStatus `db:"status" json:"status"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`
}
