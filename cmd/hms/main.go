package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/platform/clerk"
	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/sandbox"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms",
		Short: "Hospital management data layer",
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	// migrate status
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with synthetic data",
		RunE: func(cmd *cobra.Command, args []string) error {
			doctors, _ := cmd.Flags().GetInt("doctors")
			patients, _ := cmd.Flags().GetInt("patients")
			appointments, _ := cmd.Flags().GetInt("appointments")
			seed, _ := cmd.Flags().GetInt64("seed")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			users := clerk.NewClient(cfg.ClerkAPIURL, cfg.ClerkSecretKey)
			idSvc := identity.NewService(
				identity.NewPatientRepo(pool),
				identity.NewDoctorRepo(pool),
				identity.NewStaffRepo(pool),
				users,
				logger,
			)
			schedSvc := scheduling.NewService(scheduling.NewAppointmentRepo(pool))
			billSvc := billing.NewBillingService(billing.NewServiceRepo(pool), billing.NewPaymentRepo(pool))

			seedCfg := sandbox.SeedConfig{
				DoctorCount:      doctors,
				PatientCount:     patients,
				AppointmentCount: appointments,
				Seed:             seed,
			}
			seeder := sandbox.NewSeeder(seedCfg, idSvc, schedSvc, billSvc, logger)

			result, err := seeder.Run(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("seed run aborted")
				return err
			}

			logger.Info().
				Int("staff", result.Staff).
				Int("doctors", result.Doctors).
				Int("working_days", result.WorkingDays).
				Int("patients", result.Patients).
				Int("services", result.Services).
				Int("appointments", result.Appointments).
				Int("payments", result.Payments).
				Int("bills", result.Bills).
				Dur("duration", result.Duration).
				Msg("seed run complete")
			return nil
		},
	}

	defaults := sandbox.DefaultSeedConfig()
	cmd.Flags().Int("doctors", defaults.DoctorCount, "Number of doctors to create")
	cmd.Flags().Int("patients", defaults.PatientCount, "Number of patients to create")
	cmd.Flags().Int("appointments", defaults.AppointmentCount, "Number of appointments to create")
	cmd.Flags().Int64("seed", 0, "RNG seed (0 picks a time-based seed)")
	return cmd
}
