package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lvogel/admithub/internal/app/models"
)

func testAccount() *models.Account {
	return &models.Account{
		ID:    uuid.New(),
		Email: "reviewer@admithub.app",
		Roles: []string{models.RoleReviewer},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "admithub.app",
	})
	account := testAccount()

	access, refresh, expiresIn, err := service.GenerateTokenPair(account)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty token in generated pair")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := service.ValidateToken(access)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.AccountID != account.ID {
		t.Errorf("accountID = %v, want %v", claims.AccountID, account.ID)
	}
	if claims.Email != account.Email {
		t.Errorf("email = %q, want %q", claims.Email, account.Email)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != models.RoleReviewer {
		t.Errorf("roles = %v, want [reviewer]", claims.Roles)
	}
	if claims.Issuer != "admithub.app" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuing := NewJWTService(JWTConfig{SecretKey: "secret-a", AccessTokenExp: time.Hour})
	validating := NewJWTService(JWTConfig{SecretKey: "secret-b", AccessTokenExp: time.Hour})

	access, _, _, err := issuing.GenerateTokenPair(testAccount())
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	if _, err := validating.ValidateToken(access); err == nil {
		t.Error("ValidateToken accepted a token signed with a different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	service := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
	})

	access, _, _, err := service.GenerateTokenPair(testAccount())
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	if _, err := service.ValidateToken(access); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
