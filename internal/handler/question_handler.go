package handler

import (
	"net/http"

	"github.com/parisxmas/qanda/internal/service"
)

type QuestionHandler struct {
	svc *service.SurveyService
}

func NewQuestionHandler(svc *service.SurveyService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"questions": h.svc.Questions()})
}
