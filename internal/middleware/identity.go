package middleware

// identity.go holds helpers shared across middleware files: extracting a
// stable user identifier for rate-limit and cache keys.  The value may have
// been set by JWTAuth as any of several types depending on how the claim
// decoded; anonymous requests key as "anon".

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's id as a string, or "anon"
// when no user is attached to the request.
func currentUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return fmt.Sprintf("%.0f", t)
	case uint64, int64, int:
		return fmt.Sprint(t)
	}
	return "anon"
}
