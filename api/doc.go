// Package api provides the HTTP view layer for the library admin panel.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: table views, record forms, dashboard and feedback handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - OpenAPI document available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type ViewParams struct {
//	    Page     int    `query:"page" minimum:"0"`
//	    PageSize int    `query:"page_size" minimum:"0" maximum:"100"`
//	    Query    string `query:"q"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - Prometheus request metrics served at /metrics
// - CORS handling
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	api.Register(humaAPI,
//	    handlers.NewDashboardHandler(dash, finder, center, flags),
//	    handlers.NewViewHandler(screens, center, store, flags, logger),
//	    handlers.NewFeedbackHandler(center, overlay),
//	)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 422,
//	    "title": "Unprocessable Entity",
//	    "detail": "Please fill in all required fields correctly",
//	    "errors": [{"location": "body.ISBN", "message": "ISBN is required"}]
//	}
//
// Backend client errors keep their status and message. Backend outages
// become 502 Bad Gateway.
package api
