package models

import (
	"regexp"
	"strings"
)

// ProjectStatus is a dashboard-managed status label. Projects reference it
// by key, so a status stays alive as long as any project points at it.
type ProjectStatus struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Label string `json:"label"`
}

func (s *ProjectStatus) Validate() error {
	if s.Key == "" {
		return ErrStatusKeyRequired
	}
	if s.Label == "" {
		return ErrStatusLabelRequired
	}
	return nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeStatusKey lower-cases a status key and replaces whitespace
// runs with hyphens: "In Progress" becomes "in-progress".
func NormalizeStatusKey(key string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(key), "-")
}

// NormalizeLabel upper-cases a status or type label.
func NormalizeLabel(label string) string {
	return strings.ToUpper(label)
}

var (
	ErrStatusKeyRequired   = &ValidationError{Field: "key", Message: "Key and label are required"}
	ErrStatusLabelRequired = &ValidationError{Field: "label", Message: "Key and label are required"}
)
