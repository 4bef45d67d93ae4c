package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/produtora-site/internal/infra/http/middleware"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

const maxUploadBytes = 20 << 20

type ContentHandler struct {
	contentUC *usecase.ContentUseCase
}

func NewContentHandler(contentUC *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{contentUC: contentUC}
}

func respond(w http.ResponseWriter, status int, v any, err error) {
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, status, v)
}

func respondNoContent(w http.ResponseWriter, err error) {
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, "JSON inválido")
		return false
	}
	return true
}

// Vitrine pública: só registros ativos.

func (h *ContentHandler) PublicVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.contentUC.PublicVideos(r.Context())
	respond(w, http.StatusOK, videos, err)
}

func (h *ContentHandler) PublicPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.contentUC.PublicPhotos(r.Context())
	respond(w, http.StatusOK, photos, err)
}

func (h *ContentHandler) PublicTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.contentUC.PublicTeam(r.Context())
	respond(w, http.StatusOK, members, err)
}

func (h *ContentHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.contentUC.ListVideos(r.Context(), middleware.SessionFrom(r.Context()))
	respond(w, http.StatusOK, videos, err)
}

func (h *ContentHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var in usecase.VideoInput
	if !decode(w, r, &in) {
		return
	}
	v, err := h.contentUC.AddVideo(r.Context(), middleware.SessionFrom(r.Context()), in)
	respond(w, http.StatusCreated, v, err)
}

func (h *ContentHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	var in usecase.VideoInput
	if !decode(w, r, &in) {
		return
	}
	v, err := h.contentUC.UpdateVideo(r.Context(), middleware.SessionFrom(r.Context()), chi.URLParam(r, "id"), in)
	respond(w, http.StatusOK, v, err)
}

func (h *ContentHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	err := h.contentUC.DeleteVideo(r.Context(), middleware.SessionFrom(r.Context()), chi.URLParam(r, "id"))
	respondNoContent(w, err)
}

func (h *ContentHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.contentUC.ListPhotos(r.Context(), middleware.SessionFrom(r.Context()))
	respond(w, http.StatusOK, photos, err)
}

func (h *ContentHandler) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var in usecase.PhotoInput
	if !decode(w, r, &in) {
		return
	}
	p, err := h.contentUC.AddPhoto(r.Context(), middleware.SessionFrom(r.Context()), in)
	respond(w, http.StatusCreated, p, err)
}

func (h *ContentHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	var in usecase.PhotoInput
	if !decode(w, r, &in) {
		return
	}
	p, err := h.contentUC.UpdatePhoto(r.Context(), middleware.SessionFrom(r.Context()), chi.URLParam(r, "id"), in)
	respond(w, http.StatusOK, p, err)
}

func (h *ContentHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	err := h.contentUC.DeletePhoto(r.Context(), middleware.SessionFrom(r.Context()), chi.URLParam(r, "id"))
	respondNoContent(w, err)
}

func (h *ContentHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.contentUC.ListTeam(r.Context(), middleware.SessionFrom(r.Context()))
	respond(w, http.StatusOK, members, err)
}

func (h *ContentHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var in usecase.TeamMemberInput
	if !decode(w, r, &in) {
		return
	}
	m, err := h.contentUC.AddTeamMember(r.Context(), middleware.SessionFrom(r.Context()), in)
	respond(w, http.StatusCreated, m, err)
}

func (h *ContentHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var in usecase.TeamMemberInput
	if !decode(w, r, &in) {
		return
	}
	m, err := h.contentUC.UpdateTeamMember(r.Context(), middleware.SessionFrom(r.Context()), chi.URLParam(r, "id"), in)
	respond(w, http.StatusOK, m, err)
}

func (h *ContentHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	err := h.contentUC.DeleteTeamMember(r.Context(), middleware.SessionFrom(r.Context()), chi.URLParam(r, "id"))
	respondNoContent(w, err)
}

// Upload (POST /admin/uploads/{kind}), multipart com o campo "file".
func (h *ContentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		badRequest(w, "Arquivo inválido ou maior que 20MB")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "Campo 'file' é obrigatório")
		return
	}
	defer file.Close()

	url, err := h.contentUC.UploadMedia(
		r.Context(),
		middleware.SessionFrom(r.Context()),
		chi.URLParam(r, "kind"),
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if usecase.IsTechnicalError(err) {
		middleware.RecordIntegrationError("storage")
	}
	respond(w, http.StatusCreated, map[string]string{"url": url}, err)
}
