package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the authenticated subject extracted from a verified token.
type Claims struct {
	UserID    int64
	Email     string
	ExpiresAt time.Time
}

// JWTService issues and verifies bearer tokens
type JWTService interface {
	GenerateToken(userID int64, email string) (string, time.Time, error)
	ValidateToken(token string) (*Claims, error)
}

type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

func NewJWTService(secret, issuer, audience string, expiry time.Duration) JWTService {
	return &jwtService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}
}

func (s *jwtService) GenerateToken(userID int64, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiry)

	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"email": email,
		"jti":   uuid.New().String(),
		"iss":   s.issuer,
		"aud":   s.audience,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.audience), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("token missing subject")
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token")
	}

	email, _ := mapClaims["email"].(string)

	claims := &Claims{UserID: userID, Email: email}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return claims, nil
}
