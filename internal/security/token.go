package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

var (
	ErrTokenExpired = errors.New("Token süresi dolmuş")
	ErrTokenInvalid = errors.New("Geçersiz token")
)

// Claims is the kinea bearer token payload: who and at which privilege.
// The role claim only hints at the frontend; authorization re-reads the
// account row on every request.
type Claims struct {
	UserID string   `json:"user_id"`
	Role   api.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 bearer token for the user.
func GenerateToken(secret string, userID string, role api.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a bearer token and returns its claims. Expired
// and malformed tokens map to the sentinel errors above.
func ParseToken(tokenStr string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
