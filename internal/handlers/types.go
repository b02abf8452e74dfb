package handlers

import "time"

// CreateMappingRequest is the request body for creating a mapping through
// the API. Both fields are validated in the handler so that failures
// surface as 400 with the standard error body.
type CreateMappingRequest struct {
	Body struct {
		URL        string `doc:"The URL to shorten"                 example:"https://example.com/very/long/path" json:"url,omitempty"`
		CustomCode string `doc:"Optional caller-chosen short code"  example:"abc123"                             json:"custom_code,omitempty"`
	}
}

// CreateMappingResponse is the response for a successfully created mapping.
type CreateMappingResponse struct {
	Body struct {
		Success     bool   `doc:"Always true on success"  json:"success"`
		ShortCode   string `doc:"The accepted short code" example:"abc123"                       json:"short_code"`
		ShortURL    string `doc:"The full short URL"      example:"http://localhost:8888/abc123" json:"short_url"`
		OriginalURL string `doc:"The original URL"        json:"original_url"`
	}
}

// LookupMappingRequest identifies a mapping by short code.
type LookupMappingRequest struct {
	Code string `doc:"The short code to look up" example:"abc123" query:"code"`
}

// LookupMappingResponse is the response for a successful lookup.
type LookupMappingResponse struct {
	Body struct {
		ShortCode   string    `doc:"The short code"    json:"short_code"`
		OriginalURL string    `doc:"The original URL"  json:"original_url"`
		CreatedAt   time.Time `doc:"Creation time"     json:"created_at"`
	}
}

// DeleteMappingRequest identifies a mapping to delete by short code.
type DeleteMappingRequest struct {
	Code string `doc:"The short code to delete" example:"abc123" query:"code"`
}

// DeleteMappingResponse is the response for a delete. Deleting an absent
// code is still a success.
type DeleteMappingResponse struct {
	Body struct {
		Success bool `doc:"Always true on success" json:"success"`
	}
}
