package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/parisxmas/qanda/internal/handler"
	mw "github.com/parisxmas/qanda/internal/middleware"
)

func New(
	questionH *handler.QuestionHandler,
	answerH *handler.AnswerHandler,
	pageH *handler.PageHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)
	r.Use(chimw.StripSlashes)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.NotFound)

	// Page
	r.Get("/", pageH.Index)
	r.Get("/index.html", pageH.Index)

	// API
	r.Route("/api", func(r chi.Router) {
		r.Get("/questions", questionH.List)
		r.Get("/answers", answerH.List)
		r.Post("/answers", answerH.Create)
	})

	return r
}
