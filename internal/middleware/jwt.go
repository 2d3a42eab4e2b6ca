package middleware

import (
	"strings"
	"time"

	"Foreceipt/config"
	"Foreceipt/internal/domain/user"
	appErrors "Foreceipt/internal/errors"
	"Foreceipt/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

type JwtService struct {
	secret      []byte
	issuer      string
	duration    time.Duration
	userService *user.Service
}

func NewJwtService(cfg config.JWT, userService *user.Service) *JwtService {
	return &JwtService{
		secret:      []byte(cfg.Secret),
		issuer:      cfg.Issuer,
		duration:    cfg.Duration,
		userService: userService,
	}
}

func (s *JwtService) GenerateToken(userID ulid.ULID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

func (s *JwtService) parseToken(tokenString string) (ulid.ULID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	return pkg.ParseULID(claims.Subject)
}

// AuthMiddleware valida o token Bearer e injeta user_id no contexto da requisição.
func AuthMiddleware(s *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			appErr := appErrors.ErrUnauthorized
			c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
				"error":   appErr.Code,
				"message": "Token de autenticação não informado",
			})
			return
		}

		userID, err := s.parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			appErr := appErrors.ErrUnauthorized
			c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
				"error":   appErr.Code,
				"message": "Token inválido ou expirado",
			})
			return
		}

		if s.userService != nil {
			if err := s.userService.Exists(c.Request.Context(), userID); err != nil {
				appErr := appErrors.ErrUnauthorized
				c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
					"error":   appErr.Code,
					"message": "Usuário do token não existe mais",
				})
				return
			}
		}

		c.Set("user_id", userID.String())
		c.Next()
	}
}
