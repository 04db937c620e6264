package entities

import "errors"

// Domain errors
var (
	// Meeting errors
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrMeetingAlreadyExists = errors.New("meeting already exists")
	ErrInvalidMeetingID     = errors.New("invalid meeting id")
	ErrInvalidStatus        = errors.New("invalid meeting status")

	// Analysis errors
	ErrEmptyText      = errors.New("text is empty")
	ErrAnalysisFailed = errors.New("analysis failed")

	// Summary errors
	ErrEmptyTranscript   = errors.New("transcript is empty")
	ErrSummaryNotFound   = errors.New("summary not generated")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
