// Package service contains the application services that orchestrate
// validation, persistence and ownership scoping for each API operation.
// Services speak in domain entities and sentinel errors; HTTP concerns
// stay in the api package.
package service
