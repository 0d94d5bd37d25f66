// Package http provides the round trippers used by the catalog client:
// header injection for the User-Agent and the catalog token,
// and debug-level request/response logging with the token redacted.
package http
