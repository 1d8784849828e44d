package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withHashing)

	router.Route("/api/property", func(r chi.Router) {
		r.Get("/", h.listProperties)
		r.Post("/deed", h.prepareFromFields)
		r.Post("/deed/document", h.prepareFromDocument)
		r.Post("/confirm", h.confirm)
		r.Post("/token", h.setToken)
		r.Get("/{idHex}", h.revealProperty)
		r.Post("/{idHex}/details", h.updateDetails)
	})

	router.Post("/api/payload/open", h.openPayload)
	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
