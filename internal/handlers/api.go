package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortlink/internal/events"
	"github.com/serroba/shortlink/internal/messaging"
	"github.com/serroba/shortlink/internal/middleware"
	"github.com/serroba/shortlink/internal/shortener"
	"go.uber.org/zap"
)

// APIHandler serves the programmatic mapping operations under /api-short.
type APIHandler struct {
	service        *shortener.Service
	baseURL        string
	publishCreated messaging.Publish[events.MappingCreated]
	publishDeleted messaging.Publish[events.MappingDeleted]
	logger         *zap.Logger
}

// NewAPIHandler creates the API handler.
func NewAPIHandler(
	service *shortener.Service,
	baseURL string,
	publishCreated messaging.Publish[events.MappingCreated],
	publishDeleted messaging.Publish[events.MappingDeleted],
	logger *zap.Logger,
) *APIHandler {
	return &APIHandler{
		service:        service,
		baseURL:        baseURL,
		publishCreated: publishCreated,
		publishDeleted: publishDeleted,
		logger:         logger,
	}
}

// CreateMapping creates a new mapping, generating a code unless the caller
// chose one.
func (h *APIHandler) CreateMapping(ctx context.Context, req *CreateMappingRequest) (*CreateMappingResponse, error) {
	// Every known create failure is caller-visible: validation, a taken
	// custom code (the message names it), or a store failure with detail.
	mapping, err := h.service.Create(ctx, req.Body.CustomCode, req.Body.URL)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	meta := middleware.RequestMetaFromContext(ctx)
	event := &events.MappingCreated{
		Code:        string(mapping.Code),
		OriginalURL: mapping.OriginalURL,
		Custom:      req.Body.CustomCode != "",
		Source:      "api",
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

	resp := &CreateMappingResponse{}
	resp.Body.Success = true
	resp.Body.ShortCode = string(mapping.Code)
	resp.Body.ShortURL = fmt.Sprintf("%s/%s", h.baseURL, mapping.Code)
	resp.Body.OriginalURL = mapping.OriginalURL

	return resp, nil
}

// LookupMapping returns the mapping for a code.
func (h *APIHandler) LookupMapping(ctx context.Context, req *LookupMappingRequest) (*LookupMappingResponse, error) {
	if req.Code == "" {
		return nil, huma.Error400BadRequest("invalid request: code parameter is required")
	}

	mapping, err := h.service.Lookup(ctx, req.Code)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("short code %q not found", req.Code))
		}

		return nil, huma.Error400BadRequest(err.Error())
	}

	resp := &LookupMappingResponse{}
	resp.Body.ShortCode = string(mapping.Code)
	resp.Body.OriginalURL = mapping.OriginalURL
	resp.Body.CreatedAt = mapping.CreatedAt

	return resp, nil
}

// DeleteMapping removes the mapping for a code. Deleting an absent code is
// a success.
func (h *APIHandler) DeleteMapping(ctx context.Context, req *DeleteMappingRequest) (*DeleteMappingResponse, error) {
	if req.Code == "" {
		return nil, huma.Error400BadRequest("invalid request: code parameter is required")
	}

	if err := h.service.Delete(ctx, req.Code); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	meta := middleware.RequestMetaFromContext(ctx)
	event := &events.MappingDeleted{
		Code:      req.Code,
		DeletedAt: time.Now(),
		RequestID: meta.RequestID,
		ClientIP:  meta.ClientIP,
	}

	if err := h.publishDeleted(event); err != nil {
		h.logger.Error("failed to publish mapping deleted event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	resp := &DeleteMappingResponse{}
	resp.Body.Success = true

	return resp, nil
}
