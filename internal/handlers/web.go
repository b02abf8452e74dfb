package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/serroba/shortlink/internal/events"
	"github.com/serroba/shortlink/internal/messaging"
	"github.com/serroba/shortlink/internal/middleware"
	"github.com/serroba/shortlink/internal/shortener"
	"go.uber.org/zap"
)

// WebHandler serves the HTML UI and the public redirect route.
type WebHandler struct {
	service        *shortener.Service
	baseURL        string
	publishCreated messaging.Publish[events.MappingCreated]
	logger         *zap.Logger
}

// NewWebHandler creates the UI handler.
func NewWebHandler(
	service *shortener.Service,
	baseURL string,
	publishCreated messaging.Publish[events.MappingCreated],
	logger *zap.Logger,
) *WebHandler {
	return &WebHandler{
		service:        service,
		baseURL:        baseURL,
		publishCreated: publishCreated,
		logger:         logger,
	}
}

// Welcome renders the public info page.
func (h *WebHandler) Welcome(w http.ResponseWriter, _ *http.Request) {
	h.renderPage(w, http.StatusOK, "welcome", nil)
}

// CreateForm renders the short link creation form.
func (h *WebHandler) CreateForm(w http.ResponseWriter, _ *http.Request) {
	h.renderPage(w, http.StatusOK, "form", nil)
}

// Create handles the form submission, rendering a success page or a plain
// text error.
func (h *WebHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form submission", http.StatusBadRequest)

		return
	}

	originalURL := r.PostFormValue("url")
	customCode := r.PostFormValue("custom_code")

	mapping, err := h.service.Create(r.Context(), customCode, originalURL)
	if err != nil {
		// All known create failures are the caller's to see: validation,
		// a taken custom code, or store detail.
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	meta := middleware.RequestMetaFromContext(r.Context())
	event := &events.MappingCreated{
		Code:        string(mapping.Code),
		OriginalURL: mapping.OriginalURL,
		Custom:      customCode != "",
		Source:      "ui",
		CreatedAt:   mapping.CreatedAt,
		RequestID:   meta.RequestID,
		ClientIP:    meta.ClientIP,
	}

	if err := h.publishCreated(event); err != nil {
		h.logger.Error("failed to publish mapping created event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	h.renderPage(w, http.StatusOK, "success", map[string]string{
		"ShortURL":    fmt.Sprintf("%s/%s", h.baseURL, mapping.Code),
		"OriginalURL": mapping.OriginalURL,
	})
}

// Redirect treats the request path as a short code and redirects to the
// stored URL. Unknown codes render a 404 page. No auth on this route.
func (h *WebHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := strings.Trim(r.URL.Path, "/")

	mapping, err := h.service.Lookup(r.Context(), code)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			h.renderPage(w, http.StatusNotFound, "notfound", map[string]string{"Code": code})

			return
		}

		h.logger.Error("redirect lookup failed",
			zap.String("code", code),
			zap.Error(err),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	http.Redirect(w, r, mapping.OriginalURL, http.StatusFound)
}

func (h *WebHandler) renderPage(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("failed to render page",
			zap.String("page", name),
			zap.Error(err),
		)
	}
}
