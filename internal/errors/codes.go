package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthInvalidToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthRefreshFailed      ErrorCode = "AUTH_004"
	AuthNoAccessToken      ErrorCode = "AUTH_005"
	AuthBankTokenExpired   ErrorCode = "AUTH_006"
)

// Bank connection error codes (CONNECTION_*)
const (
	ConnectionNotFound      ErrorCode = "CONNECTION_001"
	ConnectionPersistFailed ErrorCode = "CONNECTION_002"
)

// Aggregator data error codes (ACCOUNTS_*)
const (
	AccountsNotFound ErrorCode = "ACCOUNTS_001"
	AccountsUpstream ErrorCode = "ACCOUNTS_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral     ErrorCode = "VALIDATION_001"
	ValidationMissingCode ErrorCode = "VALIDATION_002"
)

// Savings goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalInvalidAmount ErrorCode = "GOAL_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages.
// Several of these are part of the API contract the dashboard front-end
// matches on, so the exact wording matters.
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Missing authentication token",
	AuthInvalidToken:       "Invalid authentication token",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthRefreshFailed:      "Failed to refresh access token.",
	AuthNoAccessToken:      "No access token available. Please reconnect your bank account.",
	AuthBankTokenExpired:   "Token expired. Please reconnect your bank account",

	// Bank connection errors
	ConnectionNotFound:      "No bank connection found. Please connect your bank account.",
	ConnectionPersistFailed: "Failed to save bank connection",

	// Aggregator data errors
	AccountsNotFound: "No accounts found",
	AccountsUpstream: "Failed to fetch accounts",

	// Validation errors
	ValidationGeneral:     "Validation failed",
	ValidationMissingCode: "Missing code",

	// Savings goal errors
	GoalNotFound:      "Savings goal not found",
	GoalInvalidAmount: "Goal amounts must be greater than or equal to zero",

	// System errors
	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
