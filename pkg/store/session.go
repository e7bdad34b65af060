package store

import (
	"time"

	"lms-presentation-be/pkg/editor"
)

// Session is an open editing session held in memory
type Session struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	PresentationID string    `json:"presentation_id"`
	Mode           string    `json:"mode"` // "EDIT" | "VIEW"
	OpenedAt       time.Time `json:"opened_at"`

	// the working copy; never serialized with the descriptor
	Editor *editor.Session `json:"-"`
}

const (
	// Owner sessions may edit and save
	ModeEdit = "EDIT"
	// Sessions on someone else's public presentation are read-only
	ModeView = "VIEW"
)

func (s *Session) CanEdit() bool {
	return s.Mode == ModeEdit
}
