// Package config defines the application configuration structure and its
// loading from files and environment variables.
package config
