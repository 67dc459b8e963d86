package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func (h *Handler) health(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "details": "store is not connected"})
		return
	}

	if err := h.db.Ping(c.Request.Context(), readpref.Primary()); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
