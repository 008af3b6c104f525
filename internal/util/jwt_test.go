package util_test

import (
	"testing"
	"time"

	"quiz_backend/internal/util"
)

const testSecret = "unit-test-secret-not-for-production"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := util.GenerateJWT(42, testSecret, 24*time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := util.ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user 42, got %d", claims.UserID)
	}
}

func TestParseJWTExpired(t *testing.T) {
	token, err := util.GenerateJWT(42, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := util.ParseJWT(token, testSecret); err == nil {
		t.Fatal("expired token must not verify")
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := util.GenerateJWT(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := util.ParseJWT(token, "some-other-secret"); err == nil {
		t.Fatal("token signed with another key must not verify")
	}
}

func TestParseJWTMalformed(t *testing.T) {
	if _, err := util.ParseJWT("not-a-token", testSecret); err == nil {
		t.Fatal("malformed token must not verify")
	}
}
