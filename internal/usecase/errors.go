package usecase

import (
	"errors"

	"github.com/xavierca1/produtora-site/internal/entity"
)

const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeSubmissionFailed     = "SUBMISSION_FAILED"
	CodeSubmissionInProgress = "SUBMISSION_IN_PROGRESS"
	CodeLeadNotFound         = "LEAD_NOT_FOUND"
	CodeContentNotFound      = "CONTENT_NOT_FOUND"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodeNotesUnchanged       = "NOTES_UNCHANGED"
	CodeDeleteNotConfirmed   = "DELETE_NOT_CONFIRMED"
	CodeEditorClosed         = "EDITOR_CLOSED"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeDatabase             = "DATABASE_ERROR"
	CodeStorage              = "STORAGE_ERROR"
	CodeAuthProvider         = "AUTH_PROVIDER_ERROR"
)

const submissionFailedMessage = "Erro ao enviar mensagem. Tente novamente ou entre em contato pelo WhatsApp."

// DomainError is an expected failure the user can act on.
type DomainError struct {
	Code    string
	Field   string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError wraps a backend failure. Message is safe to show; Err keeps
// the underlying cause for logs.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// ErrorCode extracts the code of a domain or technical error, "" otherwise.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	var te *TechnicalError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

func unauthorized() error {
	return &DomainError{Code: CodeUnauthorized, Message: "sessão ausente ou expirada"}
}

func forbidden() error {
	return &DomainError{Code: CodeForbidden, Message: "acesso restrito a administradores"}
}

func leadNotFound() error {
	return &DomainError{Code: CodeLeadNotFound, Message: "Lead não encontrado. Ele pode ter sido excluído."}
}

func contentNotFound() error {
	return &DomainError{Code: CodeContentNotFound, Message: "Registro não encontrado. Ele pode ter sido excluído."}
}

func databaseError(err error) error {
	return &TechnicalError{Code: CodeDatabase, Message: err.Error(), Err: err}
}

// requireAdmin guards every admin surface operation.
func requireAdmin(sess *entity.Session) error {
	if sess == nil || sess.AccessToken == "" {
		return unauthorized()
	}
	if !sess.IsAdmin {
		return forbidden()
	}
	return nil
}
