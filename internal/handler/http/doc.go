// Package http implements the REST transport of the marketplace.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging and gzip handling happen here before
// requests are delegated to the service layer. Every failure is answered
// with a single JSON body of the form {"message": "..."}.
package http
