package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/produtora-site/internal/logger"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

var statusByCode = map[string]int{
	usecase.CodeValidation:           http.StatusBadRequest,
	usecase.CodeInvalidStatus:        http.StatusBadRequest,
	usecase.CodeNotesUnchanged:       http.StatusConflict,
	usecase.CodeSubmissionInProgress: http.StatusConflict,
	usecase.CodeDeleteNotConfirmed:   http.StatusConflict,
	usecase.CodeEditorClosed:         http.StatusConflict,
	usecase.CodeLeadNotFound:         http.StatusNotFound,
	usecase.CodeContentNotFound:      http.StatusNotFound,
	usecase.CodeUnauthorized:         http.StatusUnauthorized,
	usecase.CodeInvalidCredentials:   http.StatusUnauthorized,
	usecase.CodeForbidden:            http.StatusForbidden,
	usecase.CodeSubmissionFailed:     http.StatusInternalServerError,
	usecase.CodeDatabase:             http.StatusInternalServerError,
	usecase.CodeStorage:              http.StatusBadGateway,
	usecase.CodeAuthProvider:         http.StatusBadGateway,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeErrorResponse converte erros de domínio/técnicos no corpo
// {"error": code, "message": msg}.
func writeErrorResponse(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: "INTERNAL_ERROR", Message: "Erro interno"}

	var de *usecase.DomainError
	var te *usecase.TechnicalError
	switch {
	case errors.As(err, &de):
		resp = ErrorResponse{Error: de.Code, Message: de.Message, Field: de.Field}
	case errors.As(err, &te):
		resp = ErrorResponse{Error: te.Code, Message: te.Message}
	default:
		logger.Log.Error().Err(err).Msg("erro não classificado")
	}

	status, ok := statusByCode[resp.Error]
	if !ok {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, resp)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: usecase.CodeValidation, Message: msg})
}
