package auth

import (
	"testing"
	"time"

	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
)

func testJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test-issuer",
	})
}

func TestGenerateTokenPairClaims(t *testing.T) {
	service := testJWTService()

	studentID := int64(3)
	user := &models.User{ID: 7, Username: "ana.gomez", Email: "ana.gomez@mail.com"}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := service.GenerateTokenPair(user, []string{"alumno"}, &studentID)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if refreshToken == "" {
		t.Error("refresh token is empty")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != 86400 {
		t.Errorf("refreshExpiresIn = %d, want 86400", refreshExpiresIn)
	}

	claims, err := service.ValidateAndExtractClaims(accessToken)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Username != "ana.gomez" {
		t.Errorf("Username = %q, want %q", claims.Username, "ana.gomez")
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "alumno" {
		t.Errorf("Roles = %v, want [alumno]", claims.Roles)
	}
	if claims.StudentID == nil || *claims.StudentID != 3 {
		t.Errorf("StudentID = %v, want 3", claims.StudentID)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "test-issuer")
	}
}

func TestGenerateTokenPairNilStudentID(t *testing.T) {
	service := testJWTService()

	user := &models.User{ID: 1, Username: "admin", Email: "admin@inscripciones.edu"}
	accessToken, _, _, _, err := service.GenerateTokenPair(user, []string{"admin"}, nil)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	claims, err := service.ValidateAndExtractClaims(accessToken)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}
	if claims.StudentID != nil {
		t.Errorf("StudentID = %v, want nil", claims.StudentID)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	service := testJWTService()
	other := NewJWTService(JWTConfig{
		SecretKey:       "other-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test-issuer",
	})

	user := &models.User{ID: 1, Username: "admin", Email: "admin@inscripciones.edu"}
	accessToken, _, _, _, err := service.GenerateTokenPair(user, nil, nil)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Error("ValidateToken() accepted a token signed with another secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"with bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
