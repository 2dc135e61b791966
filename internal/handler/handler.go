// Package handler is the first layer after the router.
//
// Handlers bind and validate requests through the validation package, call
// the service layer and write the JSON response. Errors are returned to the
// global error handler in middleware, except on the webhook route which
// answers with a bare {"message": ...} body.
package handler
