package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/parisxmas/qanda/internal/models"
)

type memStore struct {
	entries []models.Entry
	err     error
}

func (m *memStore) List() []json.RawMessage {
	raw := make([]json.RawMessage, 0, len(m.entries))
	for _, e := range m.entries {
		el, _ := json.Marshal(e)
		raw = append(raw, el)
	}
	return raw
}

func (m *memStore) Append(entry models.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

var testQuestions = []models.Question{
	{ID: "role", Text: "Role?", Type: "single-choice"},
	{ID: "notes", Text: "Notes", Type: "free-text"},
}

func newTestService(store AnswerStore) *SurveyService {
	s := NewSurveyService(testQuestions, store)
	s.now = func() time.Time { return time.Date(2026, 10, 19, 8, 30, 0, 123456789, time.FixedZone("IDT", 3*3600)) }
	s.newID = func() string { return "entry-1" }
	return s
}

func TestSubmitBuildsResponsesInQuestionOrder(t *testing.T) {
	store := &memStore{}
	s := newTestService(store)

	entry, err := s.Submit(map[string]json.RawMessage{
		"notes":   json.RawMessage(`"hello"`),
		"role":    json.RawMessage(`"vet"`),
		"unknown": json.RawMessage(`1`),
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if entry.ID != "entry-1" {
		t.Fatalf("expected id entry-1, got %s", entry.ID)
	}
	if entry.SubmittedAt != "2026-10-19T05:30:00.123Z" {
		t.Fatalf("unexpected submittedAt %s", entry.SubmittedAt)
	}
	if len(entry.Responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(entry.Responses))
	}
	if entry.Responses[0].QuestionID != "role" || string(entry.Responses[0].Response) != `"vet"` {
		t.Fatalf("unexpected first response %+v", entry.Responses[0])
	}
	if entry.Responses[1].QuestionID != "notes" || string(entry.Responses[1].Response) != `"hello"` {
		t.Fatalf("unexpected second response %+v", entry.Responses[1])
	}
	if len(store.entries) != 1 {
		t.Fatalf("expected entry to be stored, got %d", len(store.entries))
	}
}

func TestSubmitMissingAnswersAreNull(t *testing.T) {
	s := newTestService(&memStore{})

	entry, err := s.Submit(map[string]json.RawMessage{"role": json.RawMessage(`"vet"`)})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	data, err := json.Marshal(entry.Responses)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"questionId":"role","response":"vet"},{"questionId":"notes","response":null}]`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	boom := errors.New("disk full")
	s := newTestService(&memStore{err: boom})

	if _, err := s.Submit(map[string]json.RawMessage{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestSubmitDefaultIDIsUUID(t *testing.T) {
	s := NewSurveyService(testQuestions, &memStore{})

	a, err := s.Submit(nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Submit(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.ID) != 36 || a.ID == b.ID {
		t.Fatalf("expected distinct uuids, got %q and %q", a.ID, b.ID)
	}
	if _, err := time.Parse(time.RFC3339Nano, a.SubmittedAt); err != nil {
		t.Fatalf("submittedAt not ISO-8601: %v", err)
	}
}
