package errors

// Error code constants. Errors carry code + message; clients decide whether to
// refresh data or change input based on the code, never on message text.

// Auth error codes.
const (
	CodeNotAuthenticated   = "NOT_AUTHENTICATED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeForbidden          = "FORBIDDEN"
)

// Resource error codes.
const (
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeTeamNotFound         = "TEAM_NOT_FOUND"
	CodeSystemNotFound       = "SYSTEM_NOT_FOUND"
	CodeCycleNotFound        = "CYCLE_NOT_FOUND"
	CodeApplicationNotFound  = "APPLICATION_NOT_FOUND"
	CodeAvailabilityNotFound = "AVAILABILITY_NOT_FOUND"
	CodeInterviewNotFound    = "INTERVIEW_NOT_FOUND"
	CodeNameExists           = "NAME_ALREADY_EXISTS"
)

// Recruitment flow error codes.
const (
	CodeStageClosed      = "STAGE_CLOSED"
	CodeStageMismatch    = "STAGE_MISMATCH"
	CodeStageRegression  = "STAGE_REGRESSION"
	CodeDuplicateBooking = "DUPLICATE_BOOKING"
	CodeSlotConflict     = "SLOT_CONFLICT"
	CodeSlotInPast       = "SLOT_IN_PAST"
)

// Validation error codes.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidDate      = "INVALID_DATE"
	CodeInvalidWindow    = "INVALID_WINDOW"
	CodeTooManyChoices   = "TOO_MANY_SYSTEM_CHOICES"
)

// Internal error codes.
const (
	CodeInternal = "INTERNAL_ERROR"
)
