package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewSession(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	session, err := NewSession("opaque-token", userID)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if session.Token != "opaque-token" {
		t.Errorf("Expected token opaque-token, got %s", session.Token)
	}

	if session.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, session.UserID)
	}

	if session.IssuedAt.IsZero() {
		t.Error("Expected non-zero IssuedAt time")
	}

	// Test invalid token
	_, err = NewSession("", userID)
	if err != ErrEmptySessionToken {
		t.Errorf("Expected error %v, got %v", ErrEmptySessionToken, err)
	}

	// Test invalid user ID
	_, err = NewSession("opaque-token", uuid.Nil)
	if err != ErrEmptySessionUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptySessionUserID, err)
	}
}
