package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vita/internal/shared/biztime"
)

// ProfileClaims carries the active-profile selection across requests.
type ProfileClaims struct {
	UserID   uint   `json:"uid"`
	UserName string `json:"name"`
	jwt.RegisteredClaims
}

// ProfileTokenService signs and verifies the active-profile cookie token.
type ProfileTokenService struct {
	secret  []byte
	expDays int
}

func NewProfileTokenService(secret string, expDays int) *ProfileTokenService {
	return &ProfileTokenService{
		secret:  []byte(secret),
		expDays: expDays,
	}
}

// Generate signs a token for the given profile. Returns the token and
// its expiry for the cookie's max-age.
func (s *ProfileTokenService) Generate(userID uint, userName string) (string, time.Time, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.expDays) * 24 * time.Hour)

	claims := &ProfileClaims{
		UserID:   userID,
		UserName: userName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign profile token: %w", err)
	}

	return tokenString, exp, nil
}

// Verify parses and validates a profile token.
func (s *ProfileTokenService) Verify(tokenString string) (*ProfileClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ProfileClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*ProfileClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
