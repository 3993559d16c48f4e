// Package sandbox populates a development database with synthetic hospital
// data: staff, doctors with weekly availability, patients, a service catalog,
// and appointments with their payments and bill lines.
package sandbox

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/scheduling"
)

var (
	firstNamesMale = []string{
		"Chinedu", "Emeka", "Obinna", "Ifeanyi", "Tunde", "Segun", "Femi",
		"Yusuf", "Ibrahim", "Musa", "Kelechi", "Uche", "Nnamdi", "Ayodele",
		"Olumide", "Abubakar", "Chukwuemeka", "Babatunde", "Adewale", "Sani",
	}
	firstNamesFemale = []string{
		"Ada", "Ngozi", "Chioma", "Amara", "Funmilayo", "Yetunde", "Aisha",
		"Fatima", "Halima", "Nkechi", "Adaeze", "Bisi", "Folake", "Zainab",
		"Chidinma", "Oluwaseun", "Temitope", "Amina", "Ifeoma", "Blessing",
	}
	lastNames = []string{
		"Obi", "Okafor", "Okeke", "Eze", "Adeyemi", "Adebayo", "Okonkwo",
		"Bello", "Abubakar", "Mohammed", "Nwosu", "Chukwu", "Ogunleye",
		"Balogun", "Uzoma", "Onyeka", "Afolabi", "Danjuma", "Igwe", "Lawal",
	}
	streets = []string{
		"14 Marina Road", "22 Awolowo Way", "8 Ahmadu Bello Crescent",
		"31 Herbert Macaulay Street", "5 Nnamdi Azikiwe Avenue",
		"17 Tafawa Balewa Close", "44 Ademola Adetokunbo Street",
		"9 Opebi Link Road", "26 Aminu Kano Crescent", "12 Bourdillon Road",
	}
	cities = []string{
		"Lagos", "Abuja", "Port Harcourt", "Ibadan", "Kano", "Enugu",
		"Benin City", "Kaduna", "Jos", "Calabar",
	}
	specializations = []string{
		"Cardiology", "Pediatrics", "Orthopedics", "Dermatology", "Neurology",
		"Obstetrics and Gynecology", "General Surgery", "Internal Medicine",
		"Ophthalmology", "Psychiatry",
	}
	departments = []string{
		"Outpatient", "Emergency", "Surgery", "Maternity", "Radiology",
		"Laboratory", "Pharmacy", "Pediatrics",
	}
	maritalStatuses = []string{"single", "married", "divorced"}
	bloodGroups     = []string{"A+", "B+", "O+", "AB+"}
	relations       = []string{"mother", "father", "sibling", "spouse"}

	// staffRoles is the fixed set seeded once per run.
	staffRoles = []identity.StaffRole{
		identity.RoleNurse,
		identity.RoleCashier,
		identity.RoleLabTechnician,
	}

	// serviceNames is the fixed catalog seeded once per run.
	serviceNames = []string{
		"Blood Test", "X-Ray", "MRI Scan", "Ultrasound", "Consultation",
		"Surgery", "Drug Prescription", "Physiotherapy", "CT Scan",
		"Vaccination",
	}
)

// DataGenerator produces deterministic synthetic hospital records.
type DataGenerator struct {
	rng     *rand.Rand
	counter uint64
}

// NewDataGenerator returns a generator seeded for reproducibility. If seed is
// 0 a time-based seed is chosen.
func NewDataGenerator(seed int64) *DataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DataGenerator{rng: rand.New(rand.NewSource(seed))}
}

// nextID mints an opaque identifier in the shape the identity provider uses,
// e.g. "pat_1a2b3c4d0001".
func (g *DataGenerator) nextID(prefix string) string {
	g.counter++
	return fmt.Sprintf("%s_%08x%04x", prefix, g.rng.Uint32(), g.counter)
}

func (g *DataGenerator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// randomNaira returns an amount in [min, max] that is a multiple of 100.
func (g *DataGenerator) randomNaira(min, max int) float64 {
	steps := (max - min) / 100
	return float64(min + g.rng.Intn(steps+1)*100)
}

func (g *DataGenerator) randomPhone() string {
	return fmt.Sprintf("+23480%08d", g.rng.Intn(100000000))
}

func (g *DataGenerator) randomBirthDate(minAge, maxAge int) time.Time {
	age := minAge + g.rng.Intn(maxAge-minAge+1)
	year := time.Now().Year() - age
	month := time.Month(1 + g.rng.Intn(12))
	day := 1 + g.rng.Intn(28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// emailFor folds the tail of the generated ID into the local part. The name
// pools are small, so name-only addresses collide within a single run and
// trip the unique constraints on staff and doctor emails.
func emailFor(name, id string) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	if i := strings.IndexByte(id, '_'); i >= 0 {
		id = id[i+1:]
	}
	return local + "." + id + "@hospital.example.com"
}

// GenerateStaff produces one staff member with the given role.
func (g *DataGenerator) GenerateStaff(role identity.StaffRole) *identity.Staff {
	first := g.pick(firstNamesFemale)
	last := g.pick(lastNames)
	name := first + " " + last
	id := g.nextID("staff")
	return &identity.Staff{
		ID:         id,
		Email:      emailFor(name, id),
		Name:       name,
		Phone:      g.randomPhone(),
		Address:    g.pick(streets) + ", " + g.pick(cities),
		Department: g.pick(departments),
		Role:       role,
		Status:     identity.StatusActive,
	}
}

// GenerateDoctor produces the i-th doctor; employment type alternates between
// full and part time.
func (g *DataGenerator) GenerateDoctor(i int) *identity.Doctor {
	first := g.pick(firstNamesMale)
	last := g.pick(lastNames)
	name := "Dr. " + first + " " + last
	jobType := identity.JobTypeFull
	if i%2 == 1 {
		jobType = identity.JobTypePart
	}
	id := g.nextID("doc")
	return &identity.Doctor{
		ID:                 id,
		Email:              emailFor(first+" "+last, id),
		Name:               name,
		Specialization:     g.pick(specializations),
		LicenseNumber:      fmt.Sprintf("MDCN-%06d", g.rng.Intn(1000000)),
		Phone:              g.randomPhone(),
		Address:            g.pick(streets) + ", " + g.pick(cities),
		Department:         g.pick(departments),
		AvailabilityStatus: "available",
		Type:               jobType,
	}
}

// GenerateWorkingDays produces the fixed weekly availability every seeded
// doctor gets: Monday and Wednesday, 08:00 to 17:00.
func (g *DataGenerator) GenerateWorkingDays(doctorID string) []*identity.WorkingDay {
	days := []*identity.WorkingDay{}
	for _, day := range []string{"Monday", "Wednesday"} {
		days = append(days, &identity.WorkingDay{
			DoctorID:  doctorID,
			Day:       day,
			StartTime: "08:00",
			CloseTime: "17:00",
		})
	}
	return days
}

// GeneratePatient produces the i-th patient. Gender alternates, marital
// status cycles through the pool by i%3 and blood group by i%4; consent flags
// are always granted so the records pass the same checks real sign-ups do.
func (g *DataGenerator) GeneratePatient(i int) *identity.Patient {
	gender := identity.GenderMale
	first := g.pick(firstNamesMale)
	if i%2 == 1 {
		gender = identity.GenderFemale
		first = g.pick(firstNamesFemale)
	}
	last := g.pick(lastNames)

	contact := g.pick(firstNamesFemale) + " " + last
	bloodGroup := bloodGroups[i%len(bloodGroups)]
	allergies := "none"
	conditions := "none"

	id := g.nextID("pat")
	return &identity.Patient{
		ID:                     id,
		FirstName:              first,
		LastName:               last,
		DateOfBirth:            g.randomBirthDate(18, 80),
		Gender:                 gender,
		Phone:                  g.randomPhone(),
		Email:                  emailFor(first+" "+last, id),
		MaritalStatus:          maritalStatuses[i%len(maritalStatuses)],
		Address:                g.pick(streets) + ", " + g.pick(cities),
		EmergencyContactName:   contact,
		EmergencyContactNumber: g.randomPhone(),
		Relation:               g.pick(relations),
		BloodGroup:             &bloodGroup,
		Allergies:              &allergies,
		MedicalConditions:      &conditions,
		PrivacyConsent:         true,
		ServiceConsent:         true,
		MedicalConsent:         true,
	}
}

// GenerateService produces one catalog item with a price between 5,000 and
// 50,000 naira in steps of 100.
func (g *DataGenerator) GenerateService(name string) *billing.Service {
	return &billing.Service{
		ServiceName: name,
		Description: name + " service",
		Price:       g.randomNaira(5000, 50000),
	}
}

// GenerateAppointment produces the i-th appointment between the given
// parties, dated within the next 30 days. Every fourth appointment is still
// pending confirmation.
func (g *DataGenerator) GenerateAppointment(i int, patientID, doctorID string) *scheduling.Appointment {
	status := scheduling.StatusScheduled
	if i%4 == 0 {
		status = scheduling.StatusPending
	}
	return &scheduling.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: time.Now().AddDate(0, 0, 1+g.rng.Intn(30)),
		Time:            "10:00",
		Status:          status,
		Type:            "Checkup",
		Reason:          "Routine health check up",
	}
}

// GeneratePayment produces the payment for an appointment: a total between
// 15,000 and 100,000 naira, a discount percent of up to 15, and the paid
// amount following from the two.
func (g *DataGenerator) GeneratePayment(a *scheduling.Appointment) *billing.Payment {
	total := g.randomNaira(15000, 100000)
	discount := float64(g.rng.Intn(16))
	paid := math.Round(total*(1-discount/100)*100) / 100

	method := billing.MethodCash
	if g.rng.Intn(2) == 1 {
		method = billing.MethodCard
	}

	return &billing.Payment{
		PatientID:     a.PatientID,
		AppointmentID: a.ID,
		BillDate:      a.AppointmentDate,
		PaymentDate:   a.AppointmentDate.AddDate(0, 0, g.rng.Intn(6)),
		Discount:      discount,
		TotalAmount:   total,
		AmountPaid:    paid,
		PaymentMethod: method,
	}
}

// GenerateBill produces one line charging a catalog service to a payment.
func (g *DataGenerator) GenerateBill(p *billing.Payment, svc *billing.Service) *billing.Bill {
	qty := 1 + g.rng.Intn(3)
	return &billing.Bill{
		BillID:      p.ID,
		ServiceID:   svc.ID,
		ServiceDate: p.BillDate,
		Quantity:    qty,
		UnitCost:    svc.Price,
		TotalCost:   float64(qty) * svc.Price,
	}
}
