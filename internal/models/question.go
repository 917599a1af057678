package models

// Question is a static survey prompt. The list is loaded once at startup
// and never mutated afterwards.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Type    string   `json:"type" yaml:"type"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}
