package handler

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetingmind-team/meetingmind/errors"
	meetingDTO "github.com/meetingmind-team/meetingmind/internal/adapter/dto/meeting"
	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
	meetingUsecase "github.com/meetingmind-team/meetingmind/internal/usecase/meeting"
	summaryUsecase "github.com/meetingmind-team/meetingmind/internal/usecase/summary"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService *meetingUsecase.Service
	summaryService *summaryUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService *meetingUsecase.Service, summaryService *summaryUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		summaryService: summaryService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /api/meetings
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meeting, err := h.meetingService.Create(req.Title, req.Participants)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMeetingCreationFailed(err))
	}

	return HandleSuccess(h.logger, c, meetingDTO.CreateMeetingResponse{
		MeetingID:    meeting.ID,
		Status:       string(meeting.Status),
		WebsocketURL: fmt.Sprintf("ws://%s/ws/%s", c.Request().Host, meeting.ID),
	})
}

// ListMeetings handles GET /api/meetings
func (h *Meeting) ListMeetings(c echo.Context) error {
	meetings := h.meetingService.List()

	responses := make([]meetingDTO.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, meetingDTO.ToMeetingResponse(m))
	}

	return HandleSuccess(h.logger, c, meetingDTO.ListMeetingsResponse{
		Meetings: responses,
		Total:    len(responses),
	})
}

// GetMeeting handles GET /api/meetings/:id
func (h *Meeting) GetMeeting(c echo.Context) error {
	id := c.Param("id")

	meeting, err := h.meetingService.Get(id)
	if err != nil {
		return HandleError(h.logger, c, meetingError(id, err))
	}

	return HandleSuccess(h.logger, c, meetingDTO.ToMeetingResponse(meeting))
}

// UpdateMeetingStatus handles PATCH /api/meetings/:id/status
func (h *Meeting) UpdateMeetingStatus(c echo.Context) error {
	id := c.Param("id")

	var req meetingDTO.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meeting, err := h.meetingService.UpdateStatus(id, entities.MeetingStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, meetingError(id, err))
	}

	return HandleSuccess(h.logger, c, meetingDTO.ToMeetingResponse(meeting))
}

// DeleteMeeting handles DELETE /api/meetings/:id
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	id := c.Param("id")

	if err := h.meetingService.Delete(id); err != nil {
		return HandleError(h.logger, c, meetingError(id, err))
	}

	return HandleSuccess(h.logger, c, map[string]string{"meeting_id": id, "status": "deleted"})
}

// AnalyzeText handles POST /api/analyze/text
func (h *Meeting) AnalyzeText(c echo.Context) error {
	var req meetingDTO.AnalyzeTextRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.meetingService.AnalyzeText(c.Request().Context(), req.MeetingID, req.Text, req.Speaker)
	if err != nil {
		if stdErrors.Is(err, entities.ErrEmptyText) {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("Text is required"))
		}
		if stdErrors.Is(err, context.DeadlineExceeded) {
			return HandleError(h.logger, c, errors.ErrAnalysisTimeout())
		}
		return HandleError(h.logger, c, errors.ErrAnalysisFailed(err))
	}

	return HandleSuccess(h.logger, c, result)
}

// GenerateSummary handles POST /api/meetings/:id/summary
func (h *Meeting) GenerateSummary(c echo.Context) error {
	id := c.Param("id")

	summary, err := h.summaryService.Generate(c.Request().Context(), id)
	if err != nil {
		switch {
		case stdErrors.Is(err, entities.ErrMeetingNotFound):
			return HandleError(h.logger, c, errors.ErrMeetingNotFound(id))
		case stdErrors.Is(err, entities.ErrEmptyTranscript):
			return HandleError(h.logger, c, errors.ErrInvalidArgument("Meeting has no transcript to summarize"))
		case stdErrors.Is(err, context.DeadlineExceeded):
			return HandleError(h.logger, c, errors.ErrAnalysisTimeout())
		}
		return HandleError(h.logger, c, errors.ErrSummaryFailed(err))
	}

	return HandleSuccess(h.logger, c, summary)
}

// GetSummary handles GET /api/meetings/:id/summary
func (h *Meeting) GetSummary(c echo.Context) error {
	id := c.Param("id")

	meeting, err := h.meetingService.Get(id)
	if err != nil {
		return HandleError(h.logger, c, meetingError(id, err))
	}
	if meeting.Summary == nil {
		return HandleError(h.logger, c, errors.ErrNotFound("Summary"))
	}

	return HandleSuccess(h.logger, c, meeting.Summary)
}

// ExportSummary handles GET /api/meetings/:id/summary/export
func (h *Meeting) ExportSummary(c echo.Context) error {
	id := c.Param("id")
	format := c.QueryParam("format")
	if format == "" {
		format = "markdown"
	}

	result, err := h.summaryService.Export(c.Request().Context(), id, format)
	if err != nil {
		switch {
		case stdErrors.Is(err, entities.ErrMeetingNotFound):
			return HandleError(h.logger, c, errors.ErrMeetingNotFound(id))
		case stdErrors.Is(err, entities.ErrSummaryNotFound):
			return HandleError(h.logger, c, errors.ErrNotFound("Summary"))
		case stdErrors.Is(err, entities.ErrUnsupportedFormat):
			return HandleError(h.logger, c, errors.ErrUnsupportedExportFormat(format))
		}
		return HandleError(h.logger, c, errors.ErrExportFailed(format, err))
	}

	return HandleSuccess(h.logger, c, meetingDTO.ExportResponse{
		Filename:    result.Document.Filename,
		Format:      format,
		ContentType: result.Document.ContentType,
		Content:     result.Document.Content,
		URL:         result.URL,
	})
}

// meetingError maps domain errors to API errors
func meetingError(id string, err error) error {
	switch {
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(id)
	case stdErrors.Is(err, entities.ErrMeetingAlreadyExists):
		return errors.ErrMeetingAlreadyExists(id)
	case stdErrors.Is(err, entities.ErrInvalidStatus):
		return errors.ErrInvalidArgument("Invalid meeting status")
	}
	return err
}
