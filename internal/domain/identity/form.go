package identity

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// PatientForm is the closed, typed shape a patient submission must satisfy.
// A raw submission is an opaque bag of fields until ParseForm accepts it;
// nothing reaches storage or the identity provider on a failed parse.
type PatientForm struct {
	FirstName              string    `mapstructure:"first_name" validate:"required"`
	LastName               string    `mapstructure:"last_name" validate:"required"`
	DateOfBirth            time.Time `mapstructure:"date_of_birth" validate:"required"`
	Gender                 Gender    `mapstructure:"gender" validate:"required,oneof=MALE FEMALE"`
	Phone                  string    `mapstructure:"phone" validate:"required"`
	Email                  string    `mapstructure:"email" validate:"required,email"`
	MaritalStatus          string    `mapstructure:"marital_status" validate:"required"`
	Address                string    `mapstructure:"address" validate:"required"`
	EmergencyContactName   string    `mapstructure:"emergency_contact_name" validate:"required"`
	EmergencyContactNumber string    `mapstructure:"emergency_contact_number" validate:"required"`
	Relation               string    `mapstructure:"relation" validate:"required"`
	BloodGroup             string    `mapstructure:"blood_group"`
	Allergies              string    `mapstructure:"allergies"`
	MedicalConditions      string    `mapstructure:"medical_conditions"`
	PrivacyConsent         bool      `mapstructure:"privacy_consent" validate:"eq=true"`
	ServiceConsent         bool      `mapstructure:"service_consent" validate:"eq=true"`
	MedicalConsent         bool      `mapstructure:"medical_consent" validate:"eq=true"`
}

var formValidator = validator.New(validator.WithRequiredStructEnabled())

// dateHook decodes "2006-01-02" or RFC 3339 strings into time.Time fields.
func dateHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	s := data.(string)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// ParseForm decodes and validates a raw patient submission.
func ParseForm(raw map[string]interface{}) (*PatientForm, error) {
	var form PatientForm
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: dateHook,
		Result:     &form,
	})
	if err != nil {
		return nil, fmt.Errorf("build form decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode patient form: %w", err)
	}
	if err := formValidator.Struct(&form); err != nil {
		return nil, fmt.Errorf("validate patient form: %w", err)
	}
	return &form, nil
}

// Patient materializes the validated form as the patient row stored under id.
func (f *PatientForm) Patient(id string) *Patient {
	p := &Patient{
		ID:                     id,
		FirstName:              f.FirstName,
		LastName:               f.LastName,
		DateOfBirth:            f.DateOfBirth,
		Gender:                 f.Gender,
		Phone:                  f.Phone,
		Email:                  f.Email,
		MaritalStatus:          f.MaritalStatus,
		Address:                f.Address,
		EmergencyContactName:   f.EmergencyContactName,
		EmergencyContactNumber: f.EmergencyContactNumber,
		Relation:               f.Relation,
		PrivacyConsent:         f.PrivacyConsent,
		ServiceConsent:         f.ServiceConsent,
		MedicalConsent:         f.MedicalConsent,
	}
	if f.BloodGroup != "" {
		p.BloodGroup = &f.BloodGroup
	}
	if f.Allergies != "" {
		p.Allergies = &f.Allergies
	}
	if f.MedicalConditions != "" {
		p.MedicalConditions = &f.MedicalConditions
	}
	return p
}
