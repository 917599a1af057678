package models

import "encoding/json"

// Response pairs a question id with the submitted value. Response holds the
// raw JSON exactly as the client sent it; nil is encoded as null.
type Response struct {
	QuestionID string          `json:"questionId"`
	Response   json.RawMessage `json:"response"`
}

// Entry is one persisted survey submission.
type Entry struct {
	ID          string     `json:"id"`
	SubmittedAt string     `json:"submittedAt"`
	Responses   []Response `json:"responses"`
}
