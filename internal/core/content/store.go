// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"

	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/pkg/pagination"
)

// Store persists the records of one resource.
//
// Missing records are reported as [apperr.KindNotFound]; backend failures
// as [apperr.KindUpstream].
type Store[T Record] interface {
	List(ctx context.Context, filter Filter, query listing.Query) (pagination.Page[T], error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, record T) error
	Update(ctx context.Context, record T) error
	Delete(ctx context.Context, id string) error
}
