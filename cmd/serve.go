package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/theabolton/abcdb/ast"
	"github.com/theabolton/abcdb/canonify"
	"github.com/theabolton/abcdb/log"
	"github.com/theabolton/abcdb/metrics"
)

func init() {
	var addr string
	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "Run abcdb as an HTTP canonify service",
		Long: "Exposes POST /v1/canonify, GET /healthz, and GET /metrics. This is a " +
			"convenience surface for exercising the canonifier over the network; it is " +
			"not part of the core library's contract.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}
	serveCommand.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	RootCommand.AddCommand(serveCommand)
}

func runServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/canonify", withRequestID(handleCanonify))
	mux.HandleFunc("/healthz", handleHealthz)
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("abcdb serve listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// withRequestID stamps each request with a correlation ID the way a
// shared service, rather than a single FFI call, needs to for
// troubleshooting — logged alongside the parse outcome.
func withRequestID(h func(http.ResponseWriter, *http.Request, *log.Entry)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()
		logger := log.WithField("request_id", reqID)
		w.Header().Set("X-Request-Id", reqID)
		h(w, r, logger)
	}
}

func handleCanonify(w http.ResponseWriter, r *http.Request, logger *log.Entry) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	start := time.Now()
	result, cerr := canonifyRecovered(string(body))
	metrics.CanonifyDuration.Observe(time.Since(start).Seconds())

	if cerr == nil {
		metrics.CanonifyTotal.WithLabelValues("ok").Inc()
		logger.Debug("canonify ok")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, result)
		return
	}

	metrics.CanonifyTotal.WithLabelValues(cerr.Code.String()).Inc()
	logger.WithField("code", cerr.Code.String()).Warn("canonify failed")

	status := http.StatusUnprocessableEntity
	if ast.IsCode(ast.PanicErr, cerr) {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, cerr.Error())
}

// canonifyRecovered adds a second, handler-local panic trap around
// canonify.Canonify: Canonify already recovers internally and reports
// PanicErr, but a handler serving concurrent requests is the one place in
// this system where an unrecovered panic would also take down unrelated
// in-flight requests, so the boundary traps again rather than trusting a
// single layer of defense.
func canonifyRecovered(input string) (result string, err *ast.Error) {
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = ast.NewError(ast.PanicErr, nil, "internal error: %v", r)
		}
	}()
	return canonify.Canonify(input)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}
