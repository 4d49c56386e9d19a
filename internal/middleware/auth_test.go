package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{"exp": expiresAt.Unix()}
	if subject != "" {
		claims["sub"] = subject
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("falha ao assinar token de teste: %v", err)
	}
	return token
}

func TestJwtServiceVerify(t *testing.T) {
	t.Parallel()

	svc := middleware.NewJwtService(testSecret)

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid token",
			token: signToken(t, testSecret, "user-123", time.Now().Add(time.Hour)),
			want:  "user-123",
		},
		{
			name:    "wrong secret",
			token:   signToken(t, "outro-segredo", "user-123", time.Now().Add(time.Hour)),
			wantErr: true,
		},
		{
			name:    "expired token",
			token:   signToken(t, testSecret, "user-123", time.Now().Add(-time.Hour)),
			wantErr: true,
		},
		{
			name:    "missing subject",
			token:   signToken(t, testSecret, "", time.Now().Add(time.Hour)),
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   "not-a-token",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			subject, err := svc.Verify(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if subject != tt.want {
				t.Fatalf("subject = %q, want %q", subject, tt.want)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(middleware.AuthMiddleware(middleware.NewJwtService(testSecret)))
		router.GET("/whoami", func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString("user_id"))
		})
		return router
	}

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-123", time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()

		newRouter().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if rec.Body.String() != "user-123" {
			t.Fatalf("user_id = %q, want user-123", rec.Body.String())
		}
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		rec := httptest.NewRecorder()

		newRouter().ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer invalido")
		rec := httptest.NewRecorder()

		newRouter().ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})
}
