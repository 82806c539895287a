package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quantity262/Myweb/internal/api/httpx"
	"github.com/quantity262/Myweb/internal/api/validate"
	"github.com/quantity262/Myweb/internal/middleware"
	"github.com/quantity262/Myweb/internal/services"
)

// AdminHandler serves the /admin routes. The router guards them all with
// Auth + RequireRole(admin).
type AdminHandler struct {
	users    *services.UserService
	catalog  *services.CatalogService
	messages *services.MessageService
}

func NewAdminHandler(users *services.UserService, catalog *services.CatalogService, messages *services.MessageService) *AdminHandler {
	return &AdminHandler{users: users, catalog: catalog, messages: messages}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// ---------- users ----------

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

type resetPasswordReq struct {
	NewPassword string `json:"newPassword"`
}

func (h *AdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid user id", nil)
		return
	}
	var req resetPasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	if err := h.users.ResetPassword(r.Context(), id, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "password reset"})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid user id", nil)
		return
	}
	if err := h.users.DeleteUser(r.Context(), claims.UserID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

type updateRoleReq struct {
	Role string `json:"role"`
}

func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid user id", nil)
		return
	}
	var req updateRoleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	if err := h.users.UpdateUserRole(r.Context(), claims.UserID, id, req.Role); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "role updated"})
}

// ---------- documents ----------

func (h *AdminHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.catalog.ListStored(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

type upsertDocumentReq struct {
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

func (h *AdminHandler) UpsertDocument(w http.ResponseWriter, r *http.Request) {
	var req upsertDocumentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	var errs validate.Errs
	for _, e := range []*validate.ErrField{
		validate.Required("title", req.Title),
		validate.Required("filename", req.Filename),
	} {
		if e != nil {
			errs = append(errs, *e)
		}
	}
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "title and filename are required", errs)
		return
	}

	id, updated, err := h.catalog.UpsertDocument(r.Context(), req.Title, req.Filename, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	msg := "document created"
	if updated {
		msg = "document updated"
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": msg, "id": id})
}

func (h *AdminHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid document id", nil)
		return
	}
	if err := h.catalog.DeleteStored(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "document deleted"})
}

func (h *AdminHandler) SyncDocuments(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalog.SyncFromFilesystem(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "sync complete",
		"results": results,
	})
}

// ---------- messages ----------

func (h *AdminHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.AdminList(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}
