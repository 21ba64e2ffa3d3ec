package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// RespondError maps the error taxonomy onto HTTP status codes and a
// problem-detail style body. Validation errors additionally carry a
// field -> message map.
func RespondError(c *gin.Context, err error) {
	var (
		notFound   *NotFoundError
		notAvail   *RoomNotAvailableError
		status     *BookingStatusError
		dateOrder  *DateOrderError
		dateFormat *DateFormatError
		validation *ValidationError
		conflict   *ConflictError
	)

	switch {
	case errors.As(err, &notFound):
		JSONError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &notAvail), errors.As(err, &status),
		errors.As(err, &dateOrder), errors.As(err, &dateFormat):
		JSONError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   validation.Message,
			"errors":  validation.Fields,
		})
	case errors.As(err, &conflict):
		JSONError(c, http.StatusConflict, err.Error())
	default:
		JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
