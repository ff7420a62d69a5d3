package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"speedboat-api/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

// SendValidationErrors renders a 422 whose body is the field-to-messages
// map itself, e.g. {"model_number": ["can't be blank"]}.
func SendValidationErrors(c *gin.Context, errs models.ValidationErrors) {
	c.JSON(http.StatusUnprocessableEntity, errs)
}
