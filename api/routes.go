package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/members-ledger/internal/handlers/v1/member"
	"github.com/carson-networks/members-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/members-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/members-ledger/internal/logging"
	"github.com/carson-networks/members-ledger/internal/operator"
	"github.com/carson-networks/members-ledger/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator

	server *http.Server
}

// NewRest builds the HTTP server up front so Shutdown is safe to call from
// another goroutine at any point, including before Serve runs.
func NewRest(logger *logrus.Logger, port string, svc *service.Service, op *operator.OperatorDelegator) *Rest {
	r := &Rest{
		Logger:   logger,
		Port:     port,
		Service:  svc,
		Operator: op,
	}
	r.server = &http.Server{
		Addr:              ":" + port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}
	return r
}

// Routes builds the handler tree: /status on the plain mux, everything
// versioned through Huma.
func (r *Rest) Routes() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Members Ledger API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	member.NewListMembersHandler(r.Service.Member).Register(api)
	member.NewGetMemberHandler(r.Service.Member).Register(api)
	member.NewCreateMemberHandler(r.Operator).Register(api)
	member.NewSetMemberHandler(r.Operator).Register(api)
	member.NewMemberTotalsHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Operator).Register(api)

	return mux
}

// Serve blocks until the server stops. It returns straight away when
// Shutdown already ran.
func (r *Rest) Serve() {
	r.Logger.Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (r *Rest) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
