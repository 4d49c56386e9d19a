package middleware

import (
	"strings"

	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier valida uma credencial e devolve o identificador do usuário.
// A emissão de tokens fica fora desta API; aqui apenas verificamos.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JwtService verifica tokens HMAC assinados com o segredo configurado. O
// identificador do usuário vem da claim "sub".
type JwtService struct {
	secret []byte
}

var _ TokenVerifier = (*JwtService)(nil)

func NewJwtService(secret string) *JwtService {
	return &JwtService{secret: []byte(secret)}
}

func (s *JwtService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", appErrors.ErrUnauthorized.WithError(err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", appErrors.ErrUnauthorized
	}

	return subject, nil
}

// AuthMiddleware extrai o bearer token, verifica e publica o user_id no
// contexto. Credencial ausente ou inválida responde 401.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c)
			return
		}

		userID, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(appErrors.ErrUnauthorized.StatusCode, gin.H{
		"error":   appErrors.ErrUnauthorized.Code,
		"message": appErrors.ErrUnauthorized.Message,
	})
	c.Abort()
}
