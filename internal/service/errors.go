package service

import (
	"errors"
	"fmt"
)

// 錯誤種類，以 errors.Is 判斷
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrPolicy     = errors.New("policy violation")
	ErrAuth       = errors.New("authentication failed")
	ErrConflict   = errors.New("conflict")
)

// Error 帶有種類與可回給客戶端的訊息
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// 固定的 policy 錯誤，handler 可用 errors.Is 區分狀態碼
var (
	ErrProjectPrivate     = &Error{Kind: ErrPolicy, Message: "project is not public"}
	ErrNoVacancies        = &Error{Kind: ErrPolicy, Message: "project has no vacancies"}
	ErrAlreadyParticipant = &Error{Kind: ErrPolicy, Message: "user is already a participant of this project"}
	ErrOwnerCannotLeave   = &Error{Kind: ErrPolicy, Message: "project owner cannot leave the project"}
	ErrNotProjectOwner    = &Error{Kind: ErrPolicy, Message: "only the project owner can do this"}
	ErrRemoveForbidden    = &Error{Kind: ErrPolicy, Message: "only the project owner or the participant can remove a participation"}

	ErrProjectNotFound         = &Error{Kind: ErrNotFound, Message: "project not found"}
	ErrProjectNotFoundOrDenied = &Error{Kind: ErrNotFound, Message: "project not found or forbidden"}
	ErrInvalidCredentials      = &Error{Kind: ErrAuth, Message: "invalid username or password"}
	ErrUserNotFound            = &Error{Kind: ErrAuth, Message: "user no longer exists"}
)

// Message 取出可回給客戶端的訊息；非 *Error 則回傳 fallback
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return fallback
}
