package handler

import (
	"log"
	"net/http"
)

// PageHandler serves the survey page loaded at startup.
type PageHandler struct {
	html []byte
}

func NewPageHandler(html []byte) *PageHandler {
	return &PageHandler{html: html}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.html); err != nil {
		log.Printf("Warning: write page: %v", err)
	}
}
