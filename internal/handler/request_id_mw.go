package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags every request with an identifier, generating one
// when the caller did not supply it.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Set("requestID", requestID)
	c.Header(requestIDHeader, requestID)

	c.Next()
}
