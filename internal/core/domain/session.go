package domain

import "github.com/google/uuid"

type SessionID string

func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

func ValidateSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
