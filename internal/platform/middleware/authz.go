// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package middleware provides the HTTP middleware chain for the StudyHub API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply policies before they
// reach the domain handlers. The stages in this file form the per-route
// authorization pipeline; each one either lets the request through or ends
// it with a single error response.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/studyhub/internal/platform/apperr"
	"github.com/taibuivan/studyhub/internal/platform/constants"
	"github.com/taibuivan/studyhub/internal/platform/ctxutil"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	requestutil "github.com/taibuivan/studyhub/internal/platform/request"
	"github.com/taibuivan/studyhub/internal/platform/respond"
	"github.com/taibuivan/studyhub/internal/platform/sec"
	"github.com/taibuivan/studyhub/internal/platform/validate"
)

// TokenVerifier defines the interface needed to verify credentials in middleware.
//
// Defining it here decouples the middleware from [sec.TokenService] so tests
// can inject a stub.
type TokenVerifier interface {
	Verify(header string) (*sec.Identity, error)
}

// Authenticate requires a valid bearer credential.
//
// # Flow
//  1. Read the 'Authorization' header.
//  2. Verify it via [TokenVerifier]; any failure ends the request with 401.
//  3. Inject the [*sec.Identity] and an enriched logger into the context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity, err := verifier.Verify(request.Header.Get(constants.HeaderAuthorization))
			if err != nil {
				respond.Error(writer, request, apperr.Unauthenticated(err))
				return
			}

			recordUser(writer, identity.ID)
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.String("user_id", identity.ID)))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// Authorize blocks callers whose role differs from the required one.
//
// # Usage
//
// Must be registered AFTER [Authenticate]. Reaching it without an identity
// is a wiring error: it is logged and the request is refused with 403.
func Authorize(role sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			err := sec.Authorize(ctxutil.GetIdentity(request.Context()), role)
			if err != nil {
				if errors.Is(err, sec.ErrNoIdentity) {
					ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "authorize_without_identity",
						slog.String("required_role", string(role)),
					)
				}
				respond.Error(writer, request, apperr.Unauthorized(err))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// Validate checks body, query and path fields against the rules.
//
// The body is buffered and restored, so the handler can decode it again.
// A body that is not a JSON object fails with a single "body" violation.
func Validate(rules ...validate.Rule) func(http.Handler) http.Handler {
	readsBody := false
	for _, rule := range rules {
		if rule.In == validate.InBody {
			readsBody = true
			break
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			input := validate.Input{
				Query: request.URL.Query(),
				Path:  func(name string) string { return chi.URLParam(request, name) },
			}

			if readsBody {
				raw, err := requestutil.ReadBody(writer, request)
				if err != nil {
					respond.Error(writer, request, err)
					return
				}
				body, err := requestutil.DecodeObject(raw)
				if err != nil {
					respond.Error(writer, request, err)
					return
				}
				input.Body = body
			}

			if err := (&validate.Validator{}).Merge(validate.Check(input, rules)).Err(); err != nil {
				respond.Error(writer, request, err)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// NormalizeListing validates the listing contract and any filter parameters.
//
// Violations from both are merged into one 400 response. On success the
// normalized [listing.Query] is attached to the context.
func NormalizeListing(sortable listing.Sortable, filterRules ...validate.Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			values := request.URL.Query()

			query, errs := listing.Normalize(values, sortable)
			violations := (&validate.Validator{}).
				Merge(errs).
				Merge(validate.Check(validate.Input{Query: values}, filterRules))
			if err := violations.Err(); err != nil {
				respond.Error(writer, request, err)
				return
			}

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithListing(request.Context(), query)))
		})
	}
}
