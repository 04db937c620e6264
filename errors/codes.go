package errors

// ErrorCode identifies an application error category
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	ErrorCode_MEETING_NOT_FOUND       ErrorCode = 2000
	ErrorCode_MEETING_ALREADY_EXISTS  ErrorCode = 2001
	ErrorCode_MEETING_CREATION_FAILED ErrorCode = 2002

	ErrorCode_ROOM_NOT_FOUND    ErrorCode = 3000
	ErrorCode_CONNECTION_CLOSED ErrorCode = 3001
	ErrorCode_UPGRADE_FAILED    ErrorCode = 3002

	ErrorCode_AI_ANALYSIS_FAILED     ErrorCode = 4000
	ErrorCode_AI_ANALYSIS_TIMEOUT    ErrorCode = 4001
	ErrorCode_AI_SUMMARY_FAILED      ErrorCode = 4002
	ErrorCode_AI_SERVICE_UNAVAILABLE ErrorCode = 4003

	ErrorCode_EXPORT_FAILED              ErrorCode = 5000
	ErrorCode_EXPORT_UNSUPPORTED_FORMAT  ErrorCode = 5001
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5002
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 5003
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:          "HTTP_OK",
	ErrorCode_INTERNAL:         "INTERNAL",
	ErrorCode_INVALID_ARGUMENT: "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:        "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:   "ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:  "INVALID_PAYLOAD",

	ErrorCode_MEETING_NOT_FOUND:       "MEETING_NOT_FOUND",
	ErrorCode_MEETING_ALREADY_EXISTS:  "MEETING_ALREADY_EXISTS",
	ErrorCode_MEETING_CREATION_FAILED: "MEETING_CREATION_FAILED",

	ErrorCode_ROOM_NOT_FOUND:    "ROOM_NOT_FOUND",
	ErrorCode_CONNECTION_CLOSED: "CONNECTION_CLOSED",
	ErrorCode_UPGRADE_FAILED:    "UPGRADE_FAILED",

	ErrorCode_AI_ANALYSIS_FAILED:     "AI_ANALYSIS_FAILED",
	ErrorCode_AI_ANALYSIS_TIMEOUT:    "AI_ANALYSIS_TIMEOUT",
	ErrorCode_AI_SUMMARY_FAILED:      "AI_SUMMARY_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE: "AI_SERVICE_UNAVAILABLE",

	ErrorCode_EXPORT_FAILED:              "EXPORT_FAILED",
	ErrorCode_EXPORT_UNSUPPORTED_FORMAT:  "EXPORT_UNSUPPORTED_FORMAT",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
