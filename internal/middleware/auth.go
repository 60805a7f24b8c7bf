package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/auth/login"

// unprotectedRoutes may be loaded without a session.
var unprotectedRoutes = []string{
	"/auth/login",
	"/auth/sign-up",
	"/auth/verify",
}

// Decision is the guard's verdict for one request.
type Decision struct {
	Redirect string
}

// Decide is the access check for page loads: the fixed allowlist passes
// unauthenticated, API-style routes dispatch directly, and every other
// path requires a session with a user id. Pure function of path and
// user id.
func Decide(path, userID string) Decision {
	for _, route := range unprotectedRoutes {
		if path == route {
			return Decision{}
		}
	}

	// API calls carry their own inputs and are not gated on a session,
	// matching the page-load-only scope of the guard.
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/auth/") ||
		strings.HasPrefix(path, "/create/") || path == "/health" {
		return Decision{}
	}

	if userID == "" {
		return Decision{Redirect: LoginPath}
	}
	return Decision{}
}

// AccessGuard redirects unauthenticated page loads to the login page.
// userIDFromRequest resolves the current session's user id, empty when
// there is none.
func AccessGuard(userIDFromRequest func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := Decide(c.Request.URL.Path, userIDFromRequest(c))
		if decision.Redirect != "" {
			c.Redirect(http.StatusTemporaryRedirect, decision.Redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}
