package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// DirectivesHandler returns the recent directive-looking server lines,
// oldest first.
func (h *Handlers) DirectivesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"directives": h.directives.Recent(),
	})
}
