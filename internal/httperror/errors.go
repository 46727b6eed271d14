package httperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gyejin/reactboard-server/internal/service/auth"
	"github.com/gyejin/reactboard-server/internal/service/comment"
	"github.com/gyejin/reactboard-server/internal/service/post"
	"github.com/gyejin/reactboard-server/internal/service/user"
)

// ErrorCode 는 API 오류 코드다.
type ErrorCode string

const (
	// ErrorCodeInternal 는 내부 오류 코드다.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrorCodeValidation 는 검증 오류 코드다.
	ErrorCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrorCodeUnauthorized 는 인증 오류 코드다.
	ErrorCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrorCodeForbidden 는 권한 오류 코드다.
	ErrorCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrorCodeNotFound 는 리소스 미존재 코드다.
	ErrorCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrorCodeConflict 는 중복 리소스 코드다.
	ErrorCodeConflict ErrorCode = "CONFLICT"
	// ErrorCodeAccountLocked 는 로그인 잠금 코드다.
	ErrorCodeAccountLocked ErrorCode = "ACCOUNT_LOCKED"
	// ErrorCodeInvalidInput 는 입력 오류 코드다.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrorCodeMissingField 는 필드 누락 코드다.
	ErrorCodeMissingField ErrorCode = "MISSING_FIELD"
)

// ErrorResponse 는 API 오류 응답 본문이다.
type ErrorResponse struct {
	ErrorCode string         `json:"error_code"`
	ErrorType string         `json:"error_type"`
	Message   string         `json:"message"`
	RequestID *string        `json:"request_id"`
	Details   map[string]any `json:"details"`
}

// Error 는 내부 표준 오류 타입이다.
type Error struct {
	Code    ErrorCode
	Status  int
	Type    string
	Message string
	Details map[string]any
}

// Error 는 오류 메시지를 반환한다.
func (e *Error) Error() string {
	return e.Message
}

// Response 는 오류를 HTTP 응답으로 변환한다.
func Response(err error, requestID string) (int, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = NewInternalError("unknown error")
	}

	var requestIDPtr *string
	if requestID != "" {
		requestIDPtr = &requestID
	}

	return apiErr.Status, ErrorResponse{
		ErrorCode: string(apiErr.Code),
		ErrorType: apiErr.Type,
		Message:   apiErr.Message,
		RequestID: requestIDPtr,
		Details:   apiErr.Details,
	}
}

// FromError 는 서비스 계층의 오류를 내부 오류 타입으로 변환한다.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return NewUnauthorized("로그인 정보가 올바르지 않습니다.")
	case errors.Is(err, auth.ErrInvalidToken):
		return NewUnauthorized("유효하지 않은 토큰입니다.")
	case errors.Is(err, auth.ErrAccountLocked):
		return NewAccountLocked()
	case errors.Is(err, user.ErrUsernameTaken), errors.Is(err, user.ErrNicknameTaken):
		return NewConflict("이미 존재하는 아이디 또는 닉네임입니다.")
	case errors.Is(err, user.ErrUserNotFound):
		return NewNotFound("사용자를 찾을 수 없습니다.")
	case errors.Is(err, post.ErrPostNotFound):
		return NewNotFound("게시글을 찾을 수 없습니다.")
	case errors.Is(err, post.ErrUserNotFound):
		return NewNotFound("사용자를 찾을 수 없습니다.")
	case errors.Is(err, post.ErrForbidden):
		return NewForbidden("이 게시글에 대한 권한이 없습니다.")
	case errors.Is(err, comment.ErrCommentNotFound):
		return NewNotFound("댓글을 찾을 수 없습니다.")
	case errors.Is(err, comment.ErrPostNotFound):
		return NewNotFound("게시글을 찾을 수 없습니다.")
	case errors.Is(err, comment.ErrForbidden):
		return NewForbidden("이 댓글에 대한 권한이 없습니다.")
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationError(err)
	}

	return NewInternalError(err.Error())
}

// NewInternalError 는 내부 오류를 생성한다.
func NewInternalError(message string) *Error {
	return &Error{
		Code:    ErrorCodeInternal,
		Status:  http.StatusInternalServerError,
		Type:    "InternalError",
		Message: message,
		Details: nil,
	}
}

// NewValidationError 는 검증 오류를 생성한다.
func NewValidationError(err error) *Error {
	return &Error{
		Code:    ErrorCodeValidation,
		Status:  http.StatusUnprocessableEntity,
		Type:    "ValidationError",
		Message: "Input validation failed",
		Details: validationDetails(err),
	}
}

// NewMissingField 는 누락 필드 오류를 생성한다.
func NewMissingField(field string) *Error {
	return &Error{
		Code:    ErrorCodeMissingField,
		Status:  http.StatusBadRequest,
		Type:    "MissingFieldError",
		Message: fmt.Sprintf("Field '%s' required", field),
		Details: map[string]any{"field": field},
	}
}

// NewInvalidInput 는 입력 오류를 생성한다.
func NewInvalidInput(message string) *Error {
	return &Error{
		Code:    ErrorCodeInvalidInput,
		Status:  http.StatusBadRequest,
		Type:    "InvalidInputError",
		Message: message,
		Details: nil,
	}
}

// NewUnauthorized 는 인증 오류를 생성한다.
func NewUnauthorized(message string) *Error {
	return &Error{
		Code:    ErrorCodeUnauthorized,
		Status:  http.StatusUnauthorized,
		Type:    "UnauthorizedError",
		Message: message,
		Details: nil,
	}
}

// NewForbidden 는 권한 오류를 생성한다.
func NewForbidden(message string) *Error {
	return &Error{
		Code:    ErrorCodeForbidden,
		Status:  http.StatusForbidden,
		Type:    "ForbiddenError",
		Message: message,
		Details: nil,
	}
}

// NewNotFound 는 리소스 미존재 오류를 생성한다.
func NewNotFound(message string) *Error {
	return &Error{
		Code:    ErrorCodeNotFound,
		Status:  http.StatusNotFound,
		Type:    "NotFoundError",
		Message: message,
		Details: nil,
	}
}

// NewConflict 는 중복 리소스 오류를 생성한다.
func NewConflict(message string) *Error {
	return &Error{
		Code:    ErrorCodeConflict,
		Status:  http.StatusConflict,
		Type:    "ConflictError",
		Message: message,
		Details: nil,
	}
}

// NewAccountLocked 는 로그인 잠금 오류를 생성한다.
func NewAccountLocked() *Error {
	return &Error{
		Code:    ErrorCodeAccountLocked,
		Status:  http.StatusTooManyRequests,
		Type:    "AccountLockedError",
		Message: "로그인 시도가 너무 많습니다. 잠시 후 다시 시도해주세요.",
		Details: nil,
	}
}

// FieldError 는 필드 오류 상세 정보다.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

func validationDetails(err error) map[string]any {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]FieldError, 0, len(validationErrors))
		for _, validationErr := range validationErrors {
			fields = append(fields, FieldError{
				Field:   validationErr.Field(),
				Message: validationErr.Error(),
				Value:   validationErr.Value(),
			})
		}
		return map[string]any{"errors": fields}
	}

	return map[string]any{
		"errors": []FieldError{
			{
				Field:   "body",
				Message: err.Error(),
				Value:   nil,
			},
		},
	}
}
