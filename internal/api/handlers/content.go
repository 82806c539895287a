package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quantity262/Myweb/internal/api/httpx"
	"github.com/quantity262/Myweb/internal/services"
)

type ContentHandler struct {
	catalog *services.CatalogService
}

func NewContentHandler(catalog *services.CatalogService) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

// ListDocuments serves the merged filesystem+database catalog. It always
// succeeds; unreachable sources degrade to an empty list.
func (h *ContentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := h.catalog.ListCatalog(r.Context())
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (h *ContentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	content, source, err := h.catalog.GetDocument(r.Context(), filename)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"content": content,
		"source":  source,
	})
}
