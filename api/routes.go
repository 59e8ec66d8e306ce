package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/txn-integrity/internal/handlers/v1/integrity"
	"github.com/carson-networks/txn-integrity/internal/handlers/v1/status"
	"github.com/carson-networks/txn-integrity/internal/handlers/v1/transaction"
	"github.com/carson-networks/txn-integrity/internal/logging"
	"github.com/carson-networks/txn-integrity/internal/service"
	"github.com/carson-networks/txn-integrity/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Storage  *storage.Storage
	Registry *prometheus.Registry
}

// Routes builds the mux. It is separate from Serve so tests can drive it directly.
func (r *Rest) Routes() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/metrics", promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{Registry: r.Registry}))

	api := humago.New(mux, huma.DefaultConfig("Transaction Integrity API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	transaction.NewSubmitCandidateHandler(r.Service.Integrity).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewSetMerchantOverrideHandler(r.Service.Integrity).Register(api)
	transaction.NewListChangesHandler(r.Service.Transaction).Register(api)
	integrity.NewRunCheckHandler(r.Service.Integrity).Register(api)

	return mux
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
