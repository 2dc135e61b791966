// Package errs defines the error types returned to API clients.
//
// HTTPError is the JSON error shape of the public API; FieldError carries
// form-level validation failures; MessageResponse is the single-field body
// used by the webhook endpoint.
package errs
