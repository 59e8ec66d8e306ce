package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/txn-integrity/api"
	"github.com/carson-networks/txn-integrity/internal/audit"
	"github.com/carson-networks/txn-integrity/internal/config"
	"github.com/carson-networks/txn-integrity/internal/logging"
	"github.com/carson-networks/txn-integrity/internal/metrics"
	"github.com/carson-networks/txn-integrity/internal/service"
	"github.com/carson-networks/txn-integrity/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("storageBackend", envConfig.StorageBackend).Info("txn-integrity starting")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	auditLogger := audit.NewLogger(store.Changes, logger, m, audit.Options{
		Workers:   envConfig.AuditWorkers,
		QueueSize: envConfig.AuditQueueSize,
		KeepCount: envConfig.AuditKeepCount,
	})
	auditLogger.Start()
	defer auditLogger.Stop()

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Service:  service.NewService(store, auditLogger, logger, m),
		Storage:  store,
		Registry: registry,
	}
	httpRest.Serve()
}
