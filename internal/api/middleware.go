package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/duoday/daily/internal/error_values"
)

type contextKey string

var (
	requestIDContextKey = contextKey("Request-ID")
	loggerContextKey    = contextKey("Logger")
	uidContextKey       = contextKey("User-ID")
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// UserContextMiddleware picks the caller's identity out of an optional
// bearer token. Every endpoint stays open; a valid token only attaches
// the uid to the request context and its logger.
func (s *Server) UserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		now := time.Now()
		if tokenClaims.ExpiresAt.Time.Before(now) || tokenClaims.NotBefore.Time.After(now) {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context()).With(slog.Int("uid", tokenClaims.UserID))
		ctx := context.WithValue(r.Context(), uidContextKey, tokenClaims.UserID)
		ctx = context.WithValue(ctx, loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (int, error) {
	uid, ok := r.Context().Value(uidContextKey).(int)
	if !ok {
		return 0, errors.New("uid invalid or doesn't exist")
	}
	return uid, nil
}
