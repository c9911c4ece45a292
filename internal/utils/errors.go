package utils

// AppError is the error value actors respond with and handlers translate
// into HTTP statuses.
type AppError struct {
	Code    string
	Message string
	Origin  error // Original error that caused this error, if any
}

func (appErr *AppError) Error() string {
	if appErr.Origin != nil {
		return appErr.Message + ": " + appErr.Origin.Error()
	}
	return appErr.Message
}

func (appErr *AppError) Unwrap() error {
	return appErr.Origin
}

// Standard error codes for the application
const (
	// Resource errors
	ErrPostNotFound = "POST_NOT_FOUND"

	// Input errors
	ErrValidation   = "VALIDATION_FAILED"
	ErrInvalidInput = "INVALID_INPUT"

	// Session errors
	ErrUnauthorized = "UNAUTHORIZED"

	// Infrastructure errors
	ErrActorTimeout  = "ACTOR_TIMEOUT"
	ErrStorageParse  = "STORAGE_PARSE"
	ErrStorageFailed = "STORAGE_FAILED"
)

// NewAppError builds an AppError with the given code and message.
func NewAppError(code string, message string, originalErr error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Origin:  originalErr,
	}
}

// NewPostNotFoundError reports an operation referencing a post id that is not
// in the feed.
func NewPostNotFoundError(postID string) *AppError {
	return &AppError{
		Code:    ErrPostNotFound,
		Message: "post not found: " + postID,
	}
}

// NewValidationError reports a rejected user intent, e.g. a missing required
// registration field.
func NewValidationError(reason string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: reason,
	}
}

// IsErrorCode checks whether err is an AppError carrying the given code.
func IsErrorCode(err error, code string) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// AppErrorToHTTPStatus converts an AppError code to an HTTP status code.
func AppErrorToHTTPStatus(errorCode string) int {
	switch errorCode {
	case ErrPostNotFound:
		return 404 // http.StatusNotFound
	case ErrValidation, ErrInvalidInput:
		return 400 // http.StatusBadRequest
	case ErrUnauthorized:
		return 401 // http.StatusUnauthorized
	case ErrActorTimeout, ErrStorageParse, ErrStorageFailed:
		return 500 // http.StatusInternalServerError
	default:
		return 500 // http.StatusInternalServerError for unknown errors
	}
}
