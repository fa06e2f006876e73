package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// the websocket needs the raw connection: no gzip, no timeout
	router.Get("/ws", h.watch)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/board", h.getBoard)
		r.Get("/api/deadline", h.getDeadline)
		r.Get("/api/countdown", h.getCountdown)
		r.Post("/api/countdown/start", h.startCountdown)

		r.Route("/api/submissions", func(r chi.Router) {
			r.Get("/", h.listSubmissions)
			r.Post("/", h.submit)
			r.Get("/{team}", h.getSubmission)
			r.Put("/{team}", h.editSubmission)
			r.Post("/{team}/reveal", h.manualReveal)
		})

		r.Route("/api/commissioner", func(r chi.Router) {
			r.Post("/login", h.commissionerLogin)

			// routes with authorization
			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Put("/deadline", h.setDeadline)
				r.Delete("/deadline", h.clearDeadline)
				r.Post("/force-reveal", h.forceReveal)
				r.Post("/reveal-all", h.revealAll)
				r.Post("/test-countdown", h.testCountdown)
				r.Delete("/submissions", h.clearSubmissions)
				r.Delete("/state", h.reset)
				r.With(h.withSignature).Get("/export", h.export)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader, signatureHeader},
	}).Handler(router)
}
