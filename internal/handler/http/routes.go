package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/user/password", h.changePassword)
		r.Post("/api/user/refresh", h.refreshToken)

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.saveProfile)

		r.With(h.planIntegrity).Post("/api/plans", h.appendPlan)
		r.Get("/api/plans", h.listPlans)
		r.Delete("/api/plans", h.clearPlans)

		r.Post("/api/logs", h.addWorkoutLog)
		r.Get("/api/logs", h.listWorkoutLogs)
		r.Get("/api/logs/summary", h.workoutSummary)
		r.Patch("/api/logs/{id}", h.updateWorkoutLog)
		r.Delete("/api/logs/{id}", h.deleteWorkoutLog)
		r.Delete("/api/logs", h.clearAllWorkoutData)

		r.Post("/api/weights", h.addWeightEntry)
		r.Get("/api/weights", h.listWeightHistory)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
