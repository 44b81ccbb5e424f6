package middleware

import (
	appcontext "github.com/SeakMengs/ClubCert/internal/app_context"
	"github.com/prometheus/client_golang/prometheus"
)

type Middleware struct {
	app          *appcontext.Application
	requestCount *prometheus.CounterVec
}

func NewMiddleware(app *appcontext.Application, reg prometheus.Registerer) (*Middleware, error) {
	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)
	if err := reg.Register(requestCount); err != nil {
		return nil, err
	}

	return &Middleware{app: app, requestCount: requestCount}, nil
}
