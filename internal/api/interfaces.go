package api

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/duoday/daily/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.PublicUser) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}
