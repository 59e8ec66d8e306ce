package main

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/txn-integrity/internal/config"
	"github.com/carson-networks/txn-integrity/internal/logging"
	"github.com/carson-networks/txn-integrity/internal/service"
	"github.com/carson-networks/txn-integrity/internal/storage"
	"github.com/carson-networks/txn-integrity/internal/storage/migrations"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logger := logging.SetupLogging(env.LogLevel)

	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		logger.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	result, err := migrations.Up(db)
	if err != nil {
		logger.WithError(err).Fatal("migrations.Up")
		return
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")

	// Audit logging is not needed to read and validate records.
	integrity := service.NewIntegrityService(storage.NewPostgresStorage(db), nil, logger, nil)
	report, err := integrity.RunIntegrityCheck(context.Background(), "post-migration")
	if err != nil {
		logger.WithError(err).Fatal("RunIntegrityCheck")
		return
	}
	if !report.Passed {
		logger.WithField("invalid", report.Invalid).Fatal("post-migration integrity check failed")
	}
}
