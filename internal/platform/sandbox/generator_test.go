package sandbox

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/hms/hms/internal/domain/scheduling"
)

func TestDataGenerator_UniqueEmails(t *testing.T) {
	// Staff and doctor emails carry unique constraints; the name pools are
	// small enough that name-only addresses repeat within a single run.
	cfg := DefaultSeedConfig()
	for seed := int64(1); seed <= 200; seed++ {
		g := NewDataGenerator(seed)
		seen := make(map[string]string)

		record := func(kind, email string) {
			if prev, ok := seen[email]; ok {
				t.Fatalf("seed %d: %s email %q already used by %s", seed, kind, email, prev)
			}
			seen[email] = kind
		}

		for _, role := range staffRoles {
			record("staff", g.GenerateStaff(role).Email)
		}
		for i := 0; i < cfg.DoctorCount; i++ {
			record("doctor", g.GenerateDoctor(i).Email)
		}
		for i := 0; i < cfg.PatientCount; i++ {
			record("patient", g.GeneratePatient(i).Email)
		}
	}
}

func TestGeneratePayment_DiscountIsPercent(t *testing.T) {
	g := NewDataGenerator(42)
	a := &scheduling.Appointment{ID: uuid.New(), PatientID: "pat_1"}

	for i := 0; i < 100; i++ {
		p := g.GeneratePayment(a)
		if p.Discount < 0 || p.Discount > 15 {
			t.Errorf("discount %.2f out of percent range 0-15", p.Discount)
		}
		want := math.Round(p.TotalAmount*(1-p.Discount/100)*100) / 100
		if p.AmountPaid != want {
			t.Errorf("amount paid %.2f does not follow from total %.2f and discount %.2f%%", p.AmountPaid, p.TotalAmount, p.Discount)
		}
		if p.AmountPaid > p.TotalAmount {
			t.Errorf("amount paid %.2f exceeds total %.2f", p.AmountPaid, p.TotalAmount)
		}
	}
}
