package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/parisxmas/qanda/internal/service"
)

const (
	errInvalidJSON    = "Invalid JSON body"
	errAnswersMissing = `Request body must include an "answers" object`
	errSaveFailed     = "Failed to save answers"
)

type AnswerHandler struct {
	svc     *service.SurveyService
	maxBody int64
}

// NewAnswerHandler limits submitted bodies to maxBody bytes; zero or less
// means unlimited.
func NewAnswerHandler(svc *service.SurveyService, maxBody int64) *AnswerHandler {
	return &AnswerHandler{svc: svc, maxBody: maxBody}
}

func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"answers": h.svc.Answers()})
}

func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	body := io.Reader(r.Body)
	if h.maxBody > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}

	answers, status, msg := parseAnswers(raw)
	if status != 0 {
		writeError(w, status, msg)
		return
	}

	entry, err := h.svc.Submit(answers)
	if err != nil {
		log.Printf("Warning: save answers: %v", err)
		writeError(w, http.StatusInternalServerError, errSaveFailed)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Answers saved",
		"entry":   entry,
	})
}

// parseAnswers extracts the "answers" object from a request body. A body
// with no bytes at all counts as {}; whitespace alone is invalid JSON. On
// failure it returns the status and message to send.
func parseAnswers(raw []byte) (map[string]json.RawMessage, int, string) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		return nil, http.StatusBadRequest, errInvalidJSON
	}

	var req map[string]json.RawMessage
	if raw[0] != '{' || json.Unmarshal(raw, &req) != nil {
		return nil, http.StatusBadRequest, errAnswersMissing
	}

	payload := bytes.TrimSpace(req["answers"])
	if len(payload) == 0 || payload[0] != '{' {
		return nil, http.StatusBadRequest, errAnswersMissing
	}
	var answers map[string]json.RawMessage
	if err := json.Unmarshal(payload, &answers); err != nil {
		return nil, http.StatusBadRequest, errAnswersMissing
	}
	return answers, 0, ""
}
