package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"speedboat-api/models"
	"speedboat-api/repositories"
	"speedboat-api/utils"
)

type SpeedboatController struct {
	repo *repositories.SpeedboatRepository
}

func NewSpeedboatController(db *gorm.DB) *SpeedboatController {
	return &SpeedboatController{repo: repositories.NewSpeedboatRepository(db)}
}

// createSpeedboatRequest is the wrapped body of a create: {"speedboat": {...}}.
type createSpeedboatRequest struct {
	Speedboat models.SpeedboatParams `json:"speedboat"`
}

// updateSpeedboatRequest keeps the inner object raw so a partial update can
// tell an omitted attribute apart from an explicit null.
type updateSpeedboatRequest struct {
	Speedboat map[string]interface{} `json:"speedboat"`
}

func (sc *SpeedboatController) ListSpeedboats(c *gin.Context) {
	boats, err := sc.repo.ListAll()
	if err != nil {
		_ = c.Error(err)
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch speedboats")
		return
	}

	c.JSON(http.StatusOK, boats)
}

func (sc *SpeedboatController) GetSpeedboat(c *gin.Context) {
	id, ok := sc.speedboatID(c)
	if !ok {
		return
	}

	boat, err := sc.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusNotFound, "Speedboat not found")
		return
	}
	if err != nil {
		_ = c.Error(err)
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch speedboat")
		return
	}

	c.JSON(http.StatusOK, boat)
}

func (sc *SpeedboatController) CreateSpeedboat(c *gin.Context) {
	var req createSpeedboatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	boat, err := sc.repo.Create(req.Speedboat)
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		utils.SendValidationErrors(c, verrs)
		return
	}
	if err != nil {
		_ = c.Error(err)
		utils.SendError(c, http.StatusInternalServerError, "Failed to create speedboat")
		return
	}

	c.Header("Location", fmt.Sprintf("/api/speedboats/%d", boat.ID))
	c.JSON(http.StatusCreated, boat)
}

func (sc *SpeedboatController) UpdateSpeedboat(c *gin.Context) {
	id, ok := sc.speedboatID(c)
	if !ok {
		return
	}

	var req updateSpeedboatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := sc.repo.Update(id, req.Speedboat)
	var verrs models.ValidationErrors
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.SendError(c, http.StatusNotFound, "Speedboat not found")
	case errors.As(err, &verrs):
		utils.SendValidationErrors(c, verrs)
	case err != nil:
		_ = c.Error(err)
		utils.SendError(c, http.StatusInternalServerError, "Failed to update speedboat")
	default:
		c.Status(http.StatusNoContent)
	}
}

func (sc *SpeedboatController) DeleteSpeedboat(c *gin.Context) {
	id, ok := sc.speedboatID(c)
	if !ok {
		return
	}

	err := sc.repo.Delete(id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.SendError(c, http.StatusNotFound, "Speedboat not found")
	case err != nil:
		_ = c.Error(err)
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete speedboat")
	default:
		c.Status(http.StatusNoContent)
	}
}

// speedboatID parses the :id path parameter. A non-integer id can never
// resolve to a record, so it is reported as not found.
func (sc *SpeedboatController) speedboatID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Speedboat not found")
		return 0, false
	}
	return id, true
}
