package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/serroba/shortlink/internal/auth"
)

// RegisterRoutes wires the API operations, the UI routes, and the wildcard
// redirect onto the shared mux. Static routes win over the wildcard, so
// registered paths are never treated as short codes.
func RegisterRoutes(
	router *chi.Mux,
	api huma.API,
	apiHandler *APIHandler,
	webHandler *WebHandler,
	creds auth.Credentials,
) {
	requireKey := huma.Middlewares{auth.RequireAPIKey(api, creds)}

	huma.Register(api, huma.Operation{
		OperationID: "create-mapping",
		Method:      http.MethodPost,
		Path:        "/api-short",
		Summary:     "Create short link",
		Description: "Creates a mapping for the given URL, generating a short code unless custom_code is supplied.",
		Tags:        []string{"Mappings"},
		Middlewares: requireKey,
	}, apiHandler.CreateMapping)

	huma.Register(api, huma.Operation{
		OperationID: "lookup-mapping",
		Method:      http.MethodGet,
		Path:        "/api-short",
		Summary:     "Look up short link",
		Description: "Returns the mapping for the short code in the code query parameter.",
		Tags:        []string{"Mappings"},
		Middlewares: requireKey,
	}, apiHandler.LookupMapping)

	huma.Register(api, huma.Operation{
		OperationID: "delete-mapping",
		Method:      http.MethodDelete,
		Path:        "/api-short",
		Summary:     "Delete short link",
		Description: "Deletes the mapping for the short code in the code query parameter. Deleting an absent code succeeds.",
		Tags:        []string{"Mappings"},
		Middlewares: requireKey,
	}, apiHandler.DeleteMapping)

	router.Get("/", webHandler.Welcome)

	router.Group(func(r chi.Router) {
		r.Use(auth.RequireBasic(creds))
		r.Get("/short", webHandler.CreateForm)
		r.Post("/short", webHandler.Create)
	})

	// Everything else is a short code lookup.
	router.NotFound(webHandler.Redirect)
}
