// Package api provides the HTTP handlers, request/response types and
// error mapping for the contacts API.
package api
