package services

import (
	"errors"

	"seo-backoffice/domain/models"
)

var (
	ErrNotFound           = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBackendUnavailable = errors.New("erreur de connexion à la base de données")
	ErrTableNotAllowed    = models.ErrTableNotAllowed
	ErrActionNotAllowed   = models.ErrActionNotAllowed
	ErrUnauthorized       = errors.New("unauthorized")
	ErrValidation         = errors.New("validation failed")
)

// StorageError wraps a failure reported by the database so its message can
// be surfaced verbatim.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return "storage error"
	}
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }
