// Package core contains the client-side logic of the library admin panel.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or terminal UI.
//
// The core package is organized into several sub-packages:
//
// - domain: resources, records, notifications and dashboard models
// - request: JSON helper for the backend REST API
// - notify, busy: toast notifications and the loading overlay
// - pagination, tablesort, table: paging controls, column sorting and table state
// - records, dashboard: backend services per resource and for the dashboard
// - screen: entity screens tying services, forms and feedback together
// - viewstate: persistence of table preferences
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Busy:       busy.NewOverlay(nil),
//	    Logger:     myLogger,
//	}
//	helper := request.NewHelper("http://localhost:5000", deps)
//
//	screens := screen.NewSet(helper, notify.NewCenter(), myLogger)
//	books, _ := screens.Lookup(domain.ResourceBooks)
//	if err := books.Load(ctx); err != nil {
//	    // the failure was already shown as a toast
//	}
//	view := books.View()
package core
