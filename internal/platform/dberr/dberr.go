// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr classifies driver errors from the PostgreSQL and MongoDB
// stores into [apperr] kinds.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/studyhub/internal/platform/apperr"
)

// Wrap classifies err for the store operation named by action.
//
// Missing rows or documents become [apperr.KindNotFound]. Errors already
// classified pass through. Everything else is an upstream failure whose
// cause names the action and, for PostgreSQL, the SQLSTATE.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound()
	}

	if apperr.As(err) != nil {
		return err
	}

	if code := SQLState(err); code != "" {
		return apperr.Upstream(fmt.Errorf("%s (sqlstate %s): %w", action, code, err))
	}
	return apperr.Upstream(fmt.Errorf("%s: %w", action, err))
}

// SQLState returns the PostgreSQL error code carried by err, if any.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
