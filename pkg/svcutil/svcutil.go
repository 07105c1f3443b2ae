// Package svcutil holds the pieces every entity service repeats: turning store
// errors into apperr kinds and recording the outcome of a write.
package svcutil

import (
	"errors"

	"agro/database"
	"agro/pkg/apperr"
	"agro/pkg/logger"
	"agro/pkg/metrics"
)

// Translate maps a store error for op into the taxonomy. onUnique and onFK are
// returned for unique and foreign key violations; a nil one falls through to
// Storage. Errors already in the taxonomy pass unchanged.
func Translate(err error, op string, onUnique, onFK *apperr.Error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	switch {
	case onUnique != nil && database.IsUniqueViolation(err):
		return onUnique
	case onFK != nil && database.IsForeignKeyViolation(err):
		return onFK
	}
	return apperr.Storage(err, op)
}

// Lookup translates the error of a by-id read: missing rows become NotFound(entity).
func Lookup(err error, entity string) error {
	if err == nil {
		return nil
	}
	if database.IsNotFound(err) {
		return apperr.NotFound(entity)
	}
	return apperr.Storage(err, "load "+entity)
}

// Observe logs the outcome of a write and counts it.
func Observe(log *logger.Logger, m *metrics.Metrics, entity, op string, err error, kv ...interface{}) {
	m.ObserveWrite(entity, op, err)
	kv = append(kv, "entity", entity, "op", op)
	switch {
	case err == nil:
		log.Debug("write applied", kv...)
	case apperr.Is(err, apperr.KindStorage):
		log.Error("write failed", append(kv, "error", err)...)
	default:
		log.Info("write rejected", append(kv, "reason", apperr.KindOf(err).String(), "error", err.Error())...)
	}
}
