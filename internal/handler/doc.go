// Package handler provides HTTP request handlers for the Biblio API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the dependencies needed to serve
// requests for a specific feature area (authentication, catalog, lending).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependency as
//     an interface defined in this package, so tests can substitute mocks
//   - Methods handle specific HTTP endpoints; routing method checks live in
//     the ServeMux patterns
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses via
//     MapServiceError
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: Paginated list of resources
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Most handlers require authentication via JWT tokens. The auth middleware
// extracts the member's identity and makes it available via
// middleware.GetMemberID and middleware.GetRole.
package handler
