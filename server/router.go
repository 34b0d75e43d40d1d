// Package server exposes the app catalog over HTTP.
package server

import (
	"net/http"

	"playstore/shared"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Options struct {
	Logger      *zap.Logger
	Metrics     *Metrics
	CORSOrigins []string
}

// NewRouter builds the API handler: GET /apps behind logging, metrics and
// CORS.
func NewRouter(src RecordSource, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()
	r.HandleFunc("/apps", appsHandler(src)).Methods(string(shared.GET))

	r.Use(loggingMiddleware(logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{string(shared.GET), string(shared.OPTIONS)},
	})

	return c.Handler(r)
}
