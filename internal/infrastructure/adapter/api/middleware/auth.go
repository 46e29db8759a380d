package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/api/dto"
)

// Context keys set by the auth middleware
const (
	// ContextUID is the authenticated caller's user ID
	ContextUID = "auth_uid"
	// ContextProjectID is the shard the caller authenticated against
	ContextProjectID = "auth_project_id"
)

// ProjectIDHeader names the shard whose auth endpoint issued the caller's
// token. Each shard is a separate Firebase project, so tokens can only be
// verified against their issuing project.
const ProjectIDHeader = "X-Project-ID"

// TokenVerifier checks a caller-supplied ID token and returns the caller's UID
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// Auth authenticates callable-API requests: it resolves the caller's shard
// from the project header, verifies the bearer token against that shard's
// verifier and stores the caller identity on the request context.
func Auth(verifiers map[string]TokenVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.GetHeader(ProjectIDHeader)
		if projectID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Kind:    domainerr.KindInvalidArgument,
				Message: "Missing required header: " + ProjectIDHeader,
			})
			return
		}

		verifier, ok := verifiers[projectID]
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{
				Kind:    domainerr.KindNotFound,
				Message: "Unknown project: " + projectID,
			})
			return
		}

		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Kind:    domainerr.KindUnauthenticated,
				Message: "Only authenticated users can call this endpoint",
			})
			return
		}

		uid, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			logger.Warn("ID token verification failed", map[string]any{
				"project_id": projectID,
				"error":      err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Kind:    domainerr.KindUnauthenticated,
				Message: "Invalid or expired credentials",
			})
			return
		}

		c.Set(ContextUID, uid)
		c.Set(ContextProjectID, projectID)
		c.Next()
	}
}
