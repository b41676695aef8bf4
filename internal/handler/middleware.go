package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth_claims"

// JWTAuthMiddleware guards the operator API. Tokens come from
// POST /api/auth/login and are presented as a bearer header.
func JWTAuthMiddleware(secret string) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, errResp("missing bearer token"))
			}

			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errResp("invalid or expired token"))
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				c.Set(claimsContextKey, claims)
			}
			return next(c)
		}
	}
}

// tokenClaims returns the verified claims placed by JWTAuthMiddleware.
func tokenClaims(c echo.Context) jwt.MapClaims {
	if claims, ok := c.Get(claimsContextKey).(jwt.MapClaims); ok {
		return claims
	}
	return jwt.MapClaims{}
}
