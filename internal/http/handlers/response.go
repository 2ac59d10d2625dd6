package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcruz7/deckbuilder/internal/domain"
)

// All responses share the {status, data|message} envelope.

// respondSuccess writes the success envelope
func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondList writes the success envelope for listings, including the
// result count
func respondList(c *gin.Context, results int, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": results,
		"data":    data,
	})
}

// respondError maps an error to the error envelope. AppErrors carry their
// own status; anything else is an unexpected 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, gin.H{
			"status":  "error",
			"message": appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error",
	})
}

// ErrorResponse documents the error envelope for swagger
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Deck not found"`
}
