// Package middleware provides HTTP middleware for the Biblio API.
//
// The middleware package contains reusable middleware components for
// authentication, authorization, rate limiting, and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: JWT token validation and member extraction
//   - RequireRole: role-based access control on top of Auth
//   - RateLimit: request rate limiting per member/IP
//   - RequestID, Logger, Recovery, CORS, Compress: request plumbing
//
// # Authentication
//
// The auth middleware validates bearer tokens and stores the member's
// identity in the request context. After authentication, handlers can
// access it via helper functions:
//
//	memberID := middleware.GetMemberID(r.Context())
//	role := middleware.GetRole(r.Context())
//
// # Authorization
//
// RequireRole gates a route on the authenticated member's role:
//
//	staffOnly := middleware.RequireRole(model.MemberRoleLibrarian, model.MemberRoleAdmin)
//
// Admins always pass a librarian check; the reverse is not true.
package middleware
