package session

import (
	"testing"
)

func TestTokenFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	sessionID := NewSessionID()

	token, err := GenerateToken(sessionID, "student-42")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	extractedSessionID, extractedUserID, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if extractedSessionID != sessionID {
		t.Fatalf("Expected sessionID %s, got %s", sessionID, extractedSessionID)
	}

	if extractedUserID != "student-42" {
		t.Fatalf("Expected userID student-42, got %s", extractedUserID)
	}
}

func TestTokenFlow_AnonymousSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	token, err := GenerateToken(NewSessionID(), "")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	_, userID, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if userID != "" {
		t.Fatalf("Expected empty userID, got %s", userID)
	}
}

func TestGenerateToken_EmptySessionID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", ""); err == nil {
		t.Fatal("expected error for empty sessionID")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
