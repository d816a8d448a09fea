// Package api is the HTTP resource layer. It authenticates requests,
// decodes and validates payloads, calls the service facade and renders
// responses. Business rules live in the facade; this package only maps
// their errors to status codes and safe messages.
package api
