package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	requestsRepo "meetwise/database/repository/requests"
	"meetwise/models"
	"meetwise/services/scheduling"
	"meetwise/utils"
)

// SchedulingSvc is assigned at startup before routes are registered.
var SchedulingSvc scheduling.SchedulingService

// RecordRepo archives every resolved request. Archiving is best effort and
// never fails the request itself.
var RecordRepo requestsRepo.ScheduleRecordRepository

// ReceiveMeetingRequest handles POST /receive. It resolves a meeting slot for
// the sender and all attendees and returns the scheduled event together with
// each participant's updated calendar.
func ReceiveMeetingRequest(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	started := time.Now()
	resp, err := SchedulingSvc.ScheduleMeeting(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidDuration):
			utils.JSONError(c, http.StatusBadRequest, "invalid meeting duration", err.Error())
		case errors.Is(err, scheduling.ErrNoParticipants):
			utils.JSONError(c, http.StatusBadRequest, "no participants", err.Error())
		default:
			logger.Error("Failed to schedule meeting",
				zap.String("requestId", req.RequestID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to schedule meeting", err.Error())
		}
		return
	}

	logger.Info("Resolved meeting request",
		zap.String("requestId", req.RequestID),
		zap.String("eventStart", resp.EventStart),
		zap.Duration("elapsed", time.Since(started)))

	archiveRecord(c, req, resp)

	c.JSON(http.StatusOK, resp)
}

// GetScheduleRecord handles GET /records/:requestID.
func GetScheduleRecord(c *gin.Context) {
	requestID := c.Param("requestID")
	if RecordRepo == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "archive unavailable", "record repository not configured")
		return
	}
	record, err := RecordRepo.GetByRequestID(c.Request.Context(), requestID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "record not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListScheduleRecords handles GET /records.
func ListScheduleRecords(c *gin.Context) {
	if RecordRepo == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "archive unavailable", "record repository not configured")
		return
	}
	records, err := RecordRepo.ListRecent(c.Request.Context(), 50)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list records", err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

// HealthCheck returns the latest health snapshot of external services.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}

func archiveRecord(c *gin.Context, req models.ScheduleRequest, resp models.ScheduleResponse) {
	if RecordRepo == nil {
		return
	}
	status := models.RecordStatusScheduled
	if resp.EventStart == "" {
		status = models.RecordStatusNotFound
	}
	record := models.ScheduleRecord{
		RequestID: req.RequestID,
		Request:   req,
		Response:  resp,
		Status:    status,
	}
	if _, err := RecordRepo.Create(c.Request.Context(), record); err != nil {
		utils.GetLogger().Warn("Failed to archive schedule record",
			zap.String("requestId", req.RequestID), zap.Error(err))
	}
}
