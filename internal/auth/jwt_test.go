package auth

import (
	"testing"
	"time"
)

func TestJwtRoundTrip(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		Audience: "overseer/operators",
		Email:    "operator@example.com",
		Ext:      map[string]string{"ip": "127.0.0.1"},
		Id:       "session-1",
		Issuer:   "overseer/controller",
		Secret:   "test-secret",
		Subject:  "operator",
		Ttl:      time.Hour,
		UserId:   "user-1",
	})
	if err != nil {
		t.Fatalf("GenerateJwt returned error: %v", err)
	}
	claims, err := ValidateJwt("test-secret", token)
	if err != nil {
		t.Fatalf("ValidateJwt returned error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected userId[user-1], got %s", claims.UserID)
	}
	if claims.Email != "operator@example.com" {
		t.Errorf("expected email[operator@example.com], got %s", claims.Email)
	}
	if claims.Ext["ip"] != "127.0.0.1" {
		t.Errorf("expected ext ip[127.0.0.1], got %s", claims.Ext["ip"])
	}
	if claims.ID != "session-1" {
		t.Errorf("expected id[session-1], got %s", claims.ID)
	}
}

func TestJwtWrongSecret(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		Secret: "correct-secret",
		Ttl:    time.Hour,
		UserId: "user-1",
	})
	if err != nil {
		t.Fatalf("GenerateJwt returned error: %v", err)
	}
	if _, err := ValidateJwt("wrong-secret", token); err == nil {
		t.Errorf("expected validation with the wrong secret to fail")
	}
}

func TestJwtExpired(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		Secret: "test-secret",
		Ttl:    -time.Minute,
		UserId: "user-1",
	})
	if err != nil {
		t.Fatalf("GenerateJwt returned error: %v", err)
	}
	if _, err := ValidateJwt("test-secret", token); err == nil {
		t.Errorf("expected validation of an expired token to fail")
	}
}
