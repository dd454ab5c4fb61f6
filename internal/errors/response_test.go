package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(AuthNoAccessToken, "trace-123")

	s.Equal("No access token available. Please reconnect your bank account.", resp.Error)
	s.Equal(string(AuthNoAccessToken), resp.Code)
	s.Equal("trace-123", resp.TraceID)
	s.Empty(resp.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMessage() {
	resp := NewErrorResponse(AccountsUpstream, "trace-123", WithMessage("provider unavailable"))

	s.Equal("provider unavailable", resp.Error)
	s.Equal(string(AccountsUpstream), resp.Code)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	resp := NewErrorResponse(ValidationGeneral, "trace-123", WithDetails("name: is required"))

	s.Equal([]string{"name: is required"}, resp.Details)
}

// TestErrorField_IsPlainString verifies the wire contract: the top-level
// "error" field must serialize as a string, never a nested object.
func (s *ResponseTestSuite) TestErrorField_IsPlainString() {
	resp := NewErrorResponse(AuthBankTokenExpired, "")
	body, err := resp.ToJSON()
	s.NoError(err)

	var decoded map[string]interface{}
	s.NoError(json.Unmarshal(body, &decoded))
	s.Equal("Token expired. Please reconnect your bank account", decoded["error"])
}

func (s *ResponseTestSuite) TestNewValidationError() {
	resp := NewValidationError(map[string]string{"target_amount": "must be greater than 0"}, "trace-123")

	s.Equal("Validation failed", resp.Error)
	s.Len(resp.Details, 1)
	s.Contains(resp.Details[0], "target_amount")
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	inner := http.ErrBodyNotAllowed
	resp, err := WrapSystemError(inner, "trace-123")

	s.Equal(inner, err)
	s.Equal("An unexpected error occurred", resp.Error)
	s.Equal(string(SystemInternalError), resp.Code)
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthRefreshFailed, http.StatusUnauthorized},
		{AuthNoAccessToken, http.StatusUnauthorized},
		{AuthBankTokenExpired, http.StatusUnauthorized},
		{ConnectionNotFound, http.StatusNotFound},
		{AccountsNotFound, http.StatusNotFound},
		{GoalNotFound, http.StatusNotFound},
		{ValidationMissingCode, http.StatusBadRequest},
		{AccountsUpstream, http.StatusBadGateway},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), string(tc.code))
	}
}

func (s *ResponseTestSuite) TestIsClientError_IsServerError() {
	s.True(NewErrorResponse(AuthMissingToken, "").IsClientError())
	s.False(NewErrorResponse(AuthMissingToken, "").IsServerError())
	s.True(NewErrorResponse(SystemInternalError, "").IsServerError())
}
