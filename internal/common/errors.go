// Package common defines shared constants and sentinel errors used across
// the service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Ingestion errors. ErrorEmptyFile means the upload had zero usable
	// lines; ErrorNoValidRecords means parsing succeeded but no row carried
	// a usable identity. The latter is a notice, not a hard failure.
	ErrorEmptyFile      = errors.New("file contains no usable lines")
	ErrorNoValidRecords = errors.New("no valid records in file")

	// ErrorPersistence marks a failed replace of an identity set. The prior
	// set survives (the replace runs in one transaction), but the import
	// must not be reported as successful.
	ErrorPersistence = errors.New("persistence error")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
