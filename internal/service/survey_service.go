package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/parisxmas/qanda/internal/models"
)

// SubmittedAtLayout matches the ISO-8601 form browsers produce with
// Date.prototype.toISOString.
const SubmittedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// AnswerStore is the persistence the survey needs.
type AnswerStore interface {
	List() []json.RawMessage
	Append(entry models.Entry) error
}

type SurveyService struct {
	questions []models.Question
	answers   AnswerStore

	now   func() time.Time
	newID func() string
}

func NewSurveyService(questions []models.Question, answers AnswerStore) *SurveyService {
	return &SurveyService{
		questions: questions,
		answers:   answers,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *SurveyService) Questions() []models.Question {
	return s.questions
}

// Answers returns the stored elements as they are on disk.
func (s *SurveyService) Answers() []json.RawMessage {
	return s.answers.List()
}

// Submit turns the answers map into an Entry with one response per known
// question, in question order, and appends it to the store. Keys that are
// not question ids are ignored; missing ones are stored as null.
func (s *SurveyService) Submit(answers map[string]json.RawMessage) (*models.Entry, error) {
	responses := make([]models.Response, 0, len(s.questions))
	for _, q := range s.questions {
		responses = append(responses, models.Response{
			QuestionID: q.ID,
			Response:   answers[q.ID],
		})
	}

	entry := models.Entry{
		ID:          s.newID(),
		SubmittedAt: s.now().UTC().Format(SubmittedAtLayout),
		Responses:   responses,
	}

	if err := s.answers.Append(entry); err != nil {
		return nil, fmt.Errorf("append entry: %w", err)
	}
	return &entry, nil
}
