package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientIDKey is the gin context key under which the resolved client id lives.
const ClientIDKey = "clientID"

// ClientIDHeader carries the browser's draft-store identity. Drafts written
// under one client id are only visible to requests bearing the same id.
const ClientIDHeader = "X-Client-ID"

// ClientIDMiddleware resolves the caller's client id, minting a fresh one for
// first-time callers. The id is echoed back on every response so the browser
// can persist it.
func ClientIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetHeader(ClientIDHeader)
		if clientID == "" {
			clientID = uuid.New().String()
		}
		c.Set(ClientIDKey, clientID)
		c.Header(ClientIDHeader, clientID)
		c.Next()
	}
}

// ClientID reads the resolved client id off the request context.
func ClientID(c *gin.Context) string {
	return c.GetString(ClientIDKey)
}
