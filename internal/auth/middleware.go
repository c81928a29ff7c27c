package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DefaultRealm is announced in the WWW-Authenticate challenge
const DefaultRealm = "Secure Area"

// Gate returns middleware enforcing HTTP Basic auth on prefix and everything
// below it. Other paths pass through untouched. Every failure produces the
// same 401 challenge so callers cannot tell which check failed.
func Gate(prefix, realm string, checker Checker, log zerolog.Logger) gin.HandlerFunc {
	prefix = "/" + strings.Trim(prefix, "/")
	challenge := "Basic realm=" + strconv.Quote(realm)
	log = log.With().Str("component", "auth").Logger()

	return func(c *gin.Context) {
		if !underPrefix(c.Request.URL.Path, prefix) {
			c.Next()
			return
		}

		user, password, ok := c.Request.BasicAuth()
		if ok && checker.Check(user, password) {
			c.Next()
			return
		}

		log.Warn().
			Bool("header_present", c.GetHeader("Authorization") != "").
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Msg("Admin authentication failed")

		c.Header("WWW-Authenticate", challenge)
		c.Data(http.StatusUnauthorized, "text/plain; charset=utf-8", []byte("Authentication required"))
		c.Abort()
	}
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
