package lessons

import "github.com/go-chi/chi/v5"

// SetupRoutes mounts the lesson endpoints.
func SetupRoutes(r chi.Router, h *Handlers) {
	r.Get("/api/curriculum", h.Curriculum)
	r.Route("/api/lessons/{moduleID}/{lessonID}", func(r chi.Router) {
		r.Get("/", h.Open)
		r.Post("/attempts", h.Attempt)
		r.Post("/hint", h.Hint)
		r.Post("/solution", h.Solution)
	})
}
