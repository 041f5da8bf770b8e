package main

import (
	"fmt"
	"time"

	"psicomapa-backend/internal/bootstrap"
	"psicomapa-backend/internal/config"
	"psicomapa-backend/internal/database"
	"psicomapa-backend/internal/logger"
	"psicomapa-backend/internal/repository"
	"psicomapa-backend/internal/service"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(_ *cobra.Command, _ []string) error {
		_, _, err := openDatabase(false)
		if err != nil {
			return err
		}
		logrus.Info("Database schema is up to date")
		return nil
	},
}

var seedTemplatesCmd = &cobra.Command{
	Use:   "seed-templates",
	Short: "Load the built-in questionnaire templates (idempotent)",
	RunE: func(_ *cobra.Command, _ []string) error {
		db, _, err := openDatabase(false)
		if err != nil {
			return err
		}
		questionnaires := service.NewQuestionnaireService(repository.NewQuestionnaireRepository(db), service.NewValidator())
		created, err := questionnaires.SeedTemplates()
		if err != nil {
			return err
		}
		logrus.WithField("created", created).Info("Questionnaire templates seeded")
		return nil
	},
}

// openDatabase loads configuration, sets up logging and opens the database.
// The schema is migrated unless skipMigrate is set.
func openDatabase(skipMigrate bool) (*gorm.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		Driver:      cfg.DatabaseDriver,
		SkipMigrate: skipMigrate,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, cfg, nil
}

var loadDataCmd = &cobra.Command{
	Use:   "load-data",
	Short: "Load organizations, profiles and subscriptions from YAML (idempotent)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		wait, _ := cmd.Flags().GetDuration("wait")

		var db *gorm.DB
		connect := func() error {
			var err error
			db, _, err = openDatabase(false)
			if err != nil {
				logrus.WithError(err).Warn("Database not ready, retrying")
			}
			return err
		}
		policy := backoff.NewExponentialBackOff()
		policy.MaxElapsedTime = wait
		if err := backoff.Retry(connect, policy); err != nil {
			return err
		}

		result, err := bootstrap.Load(db, dir)
		if err != nil {
			return fmt.Errorf("failed to load data from %s: %w", dir, err)
		}
		logrus.WithFields(logrus.Fields{
			"organizations": result.Organizations,
			"profiles":      result.Profiles,
			"subscriptions": result.Subscriptions,
		}).Info("Data load complete")
		return nil
	},
}

func init() {
	loadDataCmd.Flags().String("dir", "scripts/data", "directory holding organizations.yaml, profiles.yaml and subscriptions.yaml")
	loadDataCmd.Flags().Duration("wait", time.Minute, "how long to wait for the database to accept connections")
}
