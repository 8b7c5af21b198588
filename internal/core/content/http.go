// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/studyhub/internal/platform/middleware"
	requestutil "github.com/taibuivan/studyhub/internal/platform/request"
	"github.com/taibuivan/studyhub/internal/platform/respond"
	"github.com/taibuivan/studyhub/internal/platform/sec"
	"github.com/taibuivan/studyhub/internal/platform/validate"
)

// Handler exposes a resource over HTTP.
type Handler[T Record] struct {
	service  *Service[T]
	resource Resource[T]
}

// NewHandler creates the HTTP surface of a resource service.
func NewHandler[T Record](service *Service[T], resource Resource[T]) *Handler[T] {
	return &Handler[T]{service: service, resource: resource}
}

// RegisterRoutes mounts the resource routes with their pipelines.
//
//	GET    /      public         listing contract, resource filters
//	GET    /{id}  authenticated  id
//	POST   /      admin          create rules
//	PUT    /{id}  admin          id, update rules
//	DELETE /{id}  admin          id
func (handler *Handler[T]) RegisterRoutes(router chi.Router, verifier middleware.TokenVerifier) {
	// Public
	router.With(
		middleware.NormalizeListing(handler.resource.Sortable, handler.resource.FilterRules...),
	).Get("/", handler.list)

	router.Group(func(authenticated chi.Router) {
		authenticated.Use(middleware.Authenticate(verifier))

		authenticated.With(middleware.Validate(IDRule)).Get("/{id}", handler.get)

		// Admin only
		authenticated.Group(func(admin chi.Router) {
			admin.Use(middleware.Authorize(sec.RoleAdmin))

			admin.With(middleware.Validate(handler.resource.Rules.Create()...)).Post("/", handler.create)
			admin.With(middleware.Validate(append([]validate.Rule{IDRule}, handler.resource.Rules.Update()...)...)).Put("/{id}", handler.update)
			admin.With(middleware.Validate(IDRule)).Delete("/{id}", handler.delete)
		})
	})
}

func (handler *Handler[T]) list(writer http.ResponseWriter, request *http.Request) {
	query, err := requestutil.Listing(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.List(request.Context(), request.URL.Query(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page)
}

func (handler *Handler[T]) get(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), requestutil.ID(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler[T]) create(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	body, err := requestutil.ReadBody(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Create(request.Context(), identity, body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, record)
}

func (handler *Handler[T]) update(writer http.ResponseWriter, request *http.Request) {
	body, err := requestutil.ReadBody(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Update(request.Context(), requestutil.ID(request, FieldID), body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler[T]) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, FieldID)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
