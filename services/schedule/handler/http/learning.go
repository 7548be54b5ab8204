package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/middleware"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/internal/utils"
	"github.com/bimbelin/bimbelin/services/schedule"
)

// CreateAssignment handles assignment creation by teachers
func (h *ScheduleHandler) CreateAssignment(c echo.Context) error {
	teacherID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var assignment models.Assignment
	if err := c.Bind(&assignment); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.scheduleUC.CreateAssignment(c.Request().Context(), teacherID, &assignment)
	if err != nil {
		h.log.WithError(err).Warn("assignment creation rejected")
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Assignment created successfully", created)
}

// SubmitAssignment handles student submissions
func (h *ScheduleHandler) SubmitAssignment(c echo.Context) error {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid assignment ID")
	}

	var req models.SubmissionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	submission, err := h.scheduleUC.SubmitAssignment(c.Request().Context(), assignmentID, studentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNotFound):
			return utils.NotFoundResponse(c, "Assignment not found")
		case errors.Is(err, schedule.ErrPastDue):
			return utils.UnprocessableEntityResponse(c, "Assignment is past due")
		default:
			h.log.WithError(err).Error("failed to submit assignment")
			return utils.InternalServerErrorResponse(c, "Failed to submit assignment")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignment submitted successfully", submission)
}

// RecordResult handles assessment grading by teachers
func (h *ScheduleHandler) RecordResult(c echo.Context) error {
	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid assessment ID")
	}

	var req models.ResultRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.scheduleUC.RecordResult(c.Request().Context(), assessmentID, &req)
	if err != nil {
		h.log.WithError(err).Warn("result recording rejected")
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Result recorded successfully", result)
}

// GetStudentProgress handles progress aggregation requests
func (h *ScheduleHandler) GetStudentProgress(c echo.Context) error {
	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student ID")
	}
	teacherID, err := uuid.Parse(c.QueryParam("teacher_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid teacher ID")
	}

	progress, err := h.scheduleUC.GetStudentProgress(c.Request().Context(), studentID, teacherID)
	if err != nil {
		h.log.WithError(err).Error("failed to get student progress")
		return utils.InternalServerErrorResponse(c, "Failed to retrieve progress")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Progress retrieved successfully", progress)
}
