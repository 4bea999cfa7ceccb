package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-facing message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts store and driver errors into user-facing codes.
// Sensitive details stay out of the response; the raw error is for logs only.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// 2. PostgreSQL constraint violations

	// 2-1. Unique constraint violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		if strings.Contains(errStrLower, "email") || strings.Contains(errStrLower, "idx_users_email") {
			return ErrorInfo{
				Code:    AuthEmailAlreadyExists,
				Message: "This email is already in use",
			}
		}
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "This record already exists",
		}
	}

	// 2-2. Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		if strings.Contains(errStrLower, "restaurant_id") {
			return ErrorInfo{
				Code:    RestaurantNotFound,
				Message: "Restaurant does not exist",
			}
		}
		if strings.Contains(errStrLower, "user_id") {
			return ErrorInfo{
				Code:    ResourceNotFound,
				Message: "User does not exist",
			}
		}
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "Related data prevents this operation",
		}
	}

	// 2-3. Not null constraint violation (23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	// 3. Connection-level failures surface as a generic store error; the caller
	// decides whether to retry, this layer never does.
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The service is temporarily unavailable. Please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "Something went wrong. Please try again later",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "registration") {
		return "Registration request not found"
	}
	if strings.Contains(contextLower, "restaurant") {
		return "Restaurant not found"
	}
	if strings.Contains(contextLower, "subscription") {
		return "Subscription not found"
	}
	if strings.Contains(contextLower, "package") {
		return "Subscription package not found"
	}
	if strings.Contains(contextLower, "user") {
		return "User not found"
	}

	return "The requested data was not found"
}

// ParseAndRespond parses an error and writes the response in one call
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
