package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-comments-api/domain"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Claims are the token claims identifying an actor.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token for the given user.
func SignToken(secret string, userID int64, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// OptionalAuth resolves the actor from a bearer token. Requests without a
// valid token continue as anonymous. An empty secret accepts no token.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || secret == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			logrus.Debug("malformed Authorization header, continuing as anonymous")
			c.Next()
			return
		}

		claims := &Claims{}
		_, err := jwt.ParseWithClaims(parts[1], claims, func(*jwt.Token) (any, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || claims.UserID <= 0 {
			logrus.Debugf("rejected bearer token: %v", err)
			c.Next()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// ActorFrom returns the actor OptionalAuth stored on the request.
func ActorFrom(c *gin.Context) domain.Actor {
	uid, ok := c.Get(CtxUserID)
	if !ok {
		return domain.Anonymous
	}
	id, ok := uid.(int64)
	if !ok || id <= 0 {
		return domain.Anonymous
	}
	return domain.Actor{ID: id, Role: c.GetString(CtxRole)}
}
