// internal/handlers/robot.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agrikom/agrimarket-backend/internal/services"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type RobotHandler struct {
	robotService *services.RobotService
}

func NewRobotHandler(robotService *services.RobotService) *RobotHandler {
	return &RobotHandler{robotService: robotService}
}

func robotLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 200 {
		return 50
	}
	return limit
}

// GET /robot/:id/status
func (h *RobotHandler) GetStatus(c *gin.Context) {
	status, err := h.robotService.Status(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Robot")
		return
	}
	utils.SuccessResponse(c, status)
}

// GET /robot/:id/activities
func (h *RobotHandler) GetActivities(c *gin.Context) {
	activities, err := h.robotService.Activities(c.Param("id"), robotLimit(c))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, activities)
}

// GET /robot/:id/logs
func (h *RobotHandler) GetLogs(c *gin.Context) {
	logs, err := h.robotService.Logs(c.Param("id"), robotLimit(c))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, logs)
}
