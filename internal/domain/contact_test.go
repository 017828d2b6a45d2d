package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string {
	return &s
}

func TestNewContact(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	// Test contact with all fields
	contact, err := NewContact(userID, "John", strPtr("Doe"), strPtr("john@example.com"), strPtr("555-0100"))

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if contact.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if contact.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, contact.UserID)
	}

	if contact.FirstName != "John" {
		t.Errorf("Expected first name John, got %s", contact.FirstName)
	}

	if contact.LastName == nil || *contact.LastName != "Doe" {
		t.Errorf("Expected last name Doe, got %v", contact.LastName)
	}

	if contact.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test contact with only the required field; optional fields stay nil
	minimal, err := NewContact(userID, "Solo", nil, nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if minimal.LastName != nil || minimal.Email != nil || minimal.Phone != nil {
		t.Errorf("Expected nil optional fields, got %v %v %v",
			minimal.LastName, minimal.Email, minimal.Phone)
	}

	// Test invalid user ID
	_, err = NewContact(uuid.Nil, "John", nil, nil, nil)
	if err != ErrEmptyContactUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyContactUserID, err)
	}

	// Test invalid first name
	_, err = NewContact(userID, "", nil, nil, nil)
	if err != ErrEmptyFirstName {
		t.Errorf("Expected error %v, got %v", ErrEmptyFirstName, err)
	}

	_, err = NewContact(userID, strings.Repeat("f", MaxContactNameLength+1), nil, nil, nil)
	if err != ErrFirstNameTooLong {
		t.Errorf("Expected error %v, got %v", ErrFirstNameTooLong, err)
	}

	// Test optional field bounds
	_, err = NewContact(userID, "John", strPtr(strings.Repeat("l", MaxContactNameLength+1)), nil, nil)
	if err != ErrLastNameTooLong {
		t.Errorf("Expected error %v, got %v", ErrLastNameTooLong, err)
	}

	_, err = NewContact(userID, "John", nil, strPtr(strings.Repeat("e", MaxContactEmailLength+1)), nil)
	if err != ErrContactEmailTooLong {
		t.Errorf("Expected error %v, got %v", ErrContactEmailTooLong, err)
	}

	_, err = NewContact(userID, "John", nil, nil, strPtr(strings.Repeat("5", MaxContactPhoneLength+1)))
	if err != ErrContactPhoneTooLong {
		t.Errorf("Expected error %v, got %v", ErrContactPhoneTooLong, err)
	}
}

func TestContactValidate(t *testing.T) {
	t.Parallel()
	validContact := Contact{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		FirstName: "John",
	}

	// Test valid contact
	if err := validContact.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidContact := validContact
	invalidContact.ID = uuid.Nil
	if err := invalidContact.Validate(); err != ErrEmptyContactID {
		t.Errorf("Expected error %v, got %v", ErrEmptyContactID, err)
	}

	// Test invalid UserID
	invalidContact = validContact
	invalidContact.UserID = uuid.Nil
	if err := invalidContact.Validate(); err != ErrEmptyContactUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyContactUserID, err)
	}

	// Test invalid FirstName
	invalidContact = validContact
	invalidContact.FirstName = ""
	if err := invalidContact.Validate(); err != ErrEmptyFirstName {
		t.Errorf("Expected error %v, got %v", ErrEmptyFirstName, err)
	}
}
