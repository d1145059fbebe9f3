package errors

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgres SQLSTATE codes the API distinguishes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgStringTooLong       = "22001"
	pgInvalidText         = "22P02"
	pgInsufficientPriv    = "42501"
	pgRaiseException      = "P0001"
)

// picks the HTTP status for a failed data-store or auth operation
func StatusFor(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return http.StatusConflict
		case pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation,
			pgStringTooLong, pgInvalidText, pgRaiseException:
			return http.StatusBadRequest
		case pgInsufficientPriv:
			return http.StatusForbidden
		}
	}

	return http.StatusInternalServerError
}

// validates a UUID string format
func IsValidUUID(id string) bool {
	if id == "" {
		return false
	}

	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

// validates a UUID parameter from the request path
func ValidatePathUUID(c *gin.Context, paramName string) (string, bool) {
	id := c.Param(paramName)

	if id == "" {
		BadRequest(c, "missing "+paramName, nil)
		return "", false
	}

	if !IsValidUUID(id) {
		NotFound(c, "resource")
		return "", false
	}

	return id, true
}
