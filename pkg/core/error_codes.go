package core

import (
	"errors"

	"github.com/bytedance/sonic"
)

// ErrorCode is a Betfair error identifier: an APING exception errorCode or a loginStatus.
type ErrorCode string

// APING exception codes returned in fault bodies by the Accounts and Betting APIs.
const (
	ErrCodeTooMuchData               ErrorCode = "TOO_MUCH_DATA"
	ErrCodeInvalidInputData          ErrorCode = "INVALID_INPUT_DATA"
	ErrCodeInvalidSessionInformation ErrorCode = "INVALID_SESSION_INFORMATION"
	ErrCodeNoAppKey                  ErrorCode = "NO_APP_KEY"
	ErrCodeNoSession                 ErrorCode = "NO_SESSION"
	ErrCodeUnexpectedError           ErrorCode = "UNEXPECTED_ERROR"
	ErrCodeInvalidAppKey             ErrorCode = "INVALID_APP_KEY"
	ErrCodeTooManyRequests           ErrorCode = "TOO_MANY_REQUESTS"
	ErrCodeServiceBusy               ErrorCode = "SERVICE_BUSY"
	ErrCodeTimeoutError              ErrorCode = "TIMEOUT_ERROR"
	ErrCodeRequestSizeExceedsLimit   ErrorCode = "REQUEST_SIZE_EXCEEDS_LIMIT"
	ErrCodeAccessDenied              ErrorCode = "ACCESS_DENIED"
)

// Login statuses reported by the identity service.
const (
	ErrCodeInvalidUsernameOrPassword ErrorCode = "INVALID_USERNAME_OR_PASSWORD"
	ErrCodeAccountNowLocked          ErrorCode = "ACCOUNT_NOW_LOCKED"
	ErrCodeAccountAlreadyLocked      ErrorCode = "ACCOUNT_ALREADY_LOCKED"
	ErrCodeCertAuthRequired          ErrorCode = "CERT_AUTH_REQUIRED"
	ErrCodeTemporaryBanTooManyReq    ErrorCode = "TEMPORARY_BAN_TOO_MANY_REQUESTS"
	ErrCodePendingAuth               ErrorCode = "PENDING_AUTH"
	ErrCodeSecurityQuestionWrong     ErrorCode = "SECURITY_QUESTION_WRONG_3X"
)

// IsErrorCode checks if the error is an APIError carrying the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return ErrorCode(apiErr.Code) == code
	}
	return false
}

// ParseFaultCode extracts the errorCode from a Betfair fault body such as
// {"detail":{"APINGException":{"errorCode":"NO_APP_KEY"}}}. It returns "" when the
// body is not a fault.
func ParseFaultCode(body []byte) ErrorCode {
	if len(body) == 0 {
		return ""
	}
	// exceptionname sits next to the exception objects as a plain string, so decode loosely.
	var raw struct {
		Detail map[string]any `json:"detail"`
	}
	if err := sonic.Unmarshal(body, &raw); err != nil {
		return ""
	}
	for _, v := range raw.Detail {
		exception, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if code, ok := exception["errorCode"].(string); ok && code != "" {
			return ErrorCode(code)
		}
	}
	return ""
}
