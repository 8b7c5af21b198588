// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/studyhub/internal/platform/apperr"
	"github.com/taibuivan/studyhub/internal/platform/constants"
	"github.com/taibuivan/studyhub/internal/platform/ctxutil"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/internal/platform/sec"
	"github.com/taibuivan/studyhub/internal/platform/validate"
)

/*
ReadBody reads the request body and restores it so later stages can read it again.

Returns:
  - []byte: the raw body (empty when the request has none)
  - error: validate.ErrInvalidJSON if the body cannot be read or is too large
*/
func ReadBody(writer http.ResponseWriter, request *http.Request) ([]byte, error) {
	if request.Body == nil {
		return nil, nil
	}

	raw, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, constants.MaxBodyBytes))
	if err != nil {
		return nil, validate.ErrInvalidJSON
	}

	request.Body = io.NopCloser(bytes.NewReader(raw))
	return raw, nil
}

/*
DecodeObject decodes a raw body into a JSON object, keeping numbers as [json.Number].

An empty body decodes to an empty object. Anything other than a single JSON
object is rejected with validate.ErrInvalidJSON.
*/
func DecodeObject(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var object map[string]any
	if err := decoder.Decode(&object); err != nil || object == nil {
		return nil, validate.ErrInvalidJSON
	}
	if decoder.More() {
		return nil, validate.ErrInvalidJSON
	}
	return object, nil
}

/*
ID retrieves a named URL parameter from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
RequiredIdentity ensures the request is authenticated and returns the caller.

Returns:
  - *sec.Identity: The verified caller
  - error: apperr.Unauthenticated if no stage attached an identity
*/
func RequiredIdentity(request *http.Request) (*sec.Identity, error) {
	identity := ctxutil.GetIdentity(request.Context())
	if identity == nil {
		return nil, apperr.Unauthenticated(sec.ErrMissingCredential)
	}
	return identity, nil
}

/*
Listing returns the normalized listing query attached by the pipeline.

Handlers mounted without the normalizing stage receive apperr.Internal.
*/
func Listing(request *http.Request) (listing.Query, error) {
	query, ok := ctxutil.GetListing(request.Context())
	if !ok {
		return listing.Query{}, apperr.Internal(errListingMissing)
	}
	return query, nil
}

var errListingMissing = errors.New("request: listing stage not mounted")
