package handlers

import (
	"net/http"
	"strings"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"
	"rpa_chamados/pkg"

	"github.com/gin-gonic/gin"
)

const callerContextKey = "caller"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// AuthRequired verifies the Authorization bearer token and stores the caller
// identity in the request context for the handlers downstream.
func AuthRequired(verifier interfaces.IIdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(callerContextKey, identity)
		c.Next()
	}
}

// callerIdentity reads the identity stored by AuthRequired. Routes that skip
// the middleware get a zero identity, which the access policy rejects.
func callerIdentity(c *gin.Context) entities.Identity {
	v, ok := c.Get(callerContextKey)
	if !ok {
		return entities.Identity{}
	}
	identity, _ := v.(entities.Identity)
	return identity
}
