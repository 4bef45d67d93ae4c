package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/infra/http/middleware"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

type AdminLeadHandler struct {
	adminUC *usecase.LeadAdminUseCase
}

func NewAdminLeadHandler(adminUC *usecase.LeadAdminUseCase) *AdminLeadHandler {
	return &AdminLeadHandler{adminUC: adminUC}
}

type statusRequest struct {
	Status entity.LeadStatus `json:"status"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

// List (GET /admin/leads?q=&status=)
func (h *AdminLeadHandler) List(w http.ResponseWriter, r *http.Request) {
	q := usecase.LeadListQuery{
		Search: r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
	}

	view, err := h.adminUC.View(r.Context(), middleware.SessionFrom(r.Context()), q)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Stats (GET /admin/leads/stats)
func (h *AdminLeadHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminUC.Stats(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stats":    stats,
		"statuses": entity.LeadStatuses,
	})
}

// Get (GET /admin/leads/{id})
func (h *AdminLeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.adminUC.Get(r.Context(), middleware.SessionFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leadDetail(lead))
}

// SetStatus (PATCH /admin/leads/{id}/status)
func (h *AdminLeadHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	editor, err := h.adminUC.OpenEditor(r.Context(), middleware.SessionFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	if err := editor.ChangeStatus(r.Context(), req.Status); err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leadDetail(editor.Lead()))
}

// SetNotes (PUT /admin/leads/{id}/notes). Notas iguais às salvas não geram escrita.
func (h *AdminLeadHandler) SetNotes(w http.ResponseWriter, r *http.Request) {
	var req notesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "JSON inválido")
		return
	}

	editor, err := h.adminUC.OpenEditor(r.Context(), middleware.SessionFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	editor.EditNotes(req.Notes)
	if editor.Dirty() {
		if err := editor.SaveNotes(r.Context()); err != nil {
			writeErrorResponse(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, leadDetail(editor.Lead()))
}

// Delete (DELETE /admin/leads/{id}?confirm={id})
func (h *AdminLeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	editor, err := h.adminUC.OpenEditor(r.Context(), middleware.SessionFrom(r.Context()), id)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	if r.URL.Query().Get("confirm") == id {
		editor.RequestDelete()
	}
	if err := editor.ConfirmDelete(r.Context()); err != nil {
		writeErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type leadDetailResponse struct {
	*entity.Lead
	StatusLabel string `json:"status_label"`
	StatusColor string `json:"status_color"`
}

func leadDetail(l *entity.Lead) leadDetailResponse {
	info := l.Status.Info()
	return leadDetailResponse{Lead: l, StatusLabel: info.Label, StatusColor: info.Color}
}
