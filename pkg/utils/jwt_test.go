package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	SetSecret("test-secret")

	userID := primitive.NewObjectID()
	roleIDs := []string{primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()}

	token, err := GenerateToken(userID, "manager@example.com", roleIDs)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != userID.Hex() {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID.Hex())
	}
	if claims.Email != "manager@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "manager@example.com")
	}
	if len(claims.RoleIDs) != 2 || claims.RoleIDs[0] != roleIDs[0] || claims.RoleIDs[1] != roleIDs[1] {
		t.Errorf("RoleIDs = %v, want %v", claims.RoleIDs, roleIDs)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken(primitive.NewObjectID(), "user@example.com", nil)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	SetSecret("second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected validation failure after secret change")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SetSecret("test-secret")
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation failure for malformed token")
	}
}
