// Package service implements the business logic layer for the Biblio API.
//
// The service package contains all domain logic, lending policy, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts its repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Lending Policy
//
// The lending rules live in this package as constants: a member may hold at
// most three active loans, and every loan is due fourteen days after the
// borrow date. The storage layer re-checks both rules inside its atomic
// scripts; the service checks them first to give callers precise errors.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables
// in errors.go. Handlers map them onto HTTP problem responses with errors.Is.
package service
