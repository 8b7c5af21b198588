// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/studyhub/internal/platform/apperr"
	"github.com/taibuivan/studyhub/internal/platform/dberr"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/pkg/pagination"
)

// MongoRepository stores records as documents keyed by their id.
type MongoRepository[T Record] struct {
	collection *mongo.Collection
	resource   Resource[T]
}

// NewMongoRepository creates a repository over one collection.
func NewMongoRepository[T Record](collection *mongo.Collection, resource Resource[T]) *MongoRepository[T] {
	return &MongoRepository[T]{collection: collection, resource: resource}
}

func (repository *MongoRepository[T]) List(ctx context.Context, filter Filter, query listing.Query) (pagination.Page[T], error) {
	document := filter.BSON()

	total, err := repository.collection.CountDocuments(ctx, document)
	if err != nil {
		return pagination.Page[T]{}, dberr.Wrap(err, "count_"+repository.resource.Name)
	}

	direction := -1
	if query.Order == pagination.Asc {
		direction = 1
	}
	sort := bson.D{{Key: documentField(query.SortBy), Value: direction}}
	if query.SortBy != FieldCreatedAt {
		sort = append(sort, bson.E{Key: FieldCreatedAt, Value: direction})
	}
	sort = append(sort, bson.E{Key: "_id", Value: 1})

	cursor, err := repository.collection.Find(ctx, document, options.Find().
		SetSort(sort).
		SetSkip(int64(query.Offset())).
		SetLimit(int64(query.Limit)),
	)
	if err != nil {
		return pagination.Page[T]{}, dberr.Wrap(err, "list_"+repository.resource.Name)
	}
	defer cursor.Close(ctx)

	var items []T
	for cursor.Next(ctx) {
		record := repository.resource.New()
		if err := cursor.Decode(record); err != nil {
			return pagination.Page[T]{}, dberr.Wrap(err, "decode_"+repository.resource.Name)
		}
		items = append(items, record)
	}
	if err := cursor.Err(); err != nil {
		return pagination.Page[T]{}, dberr.Wrap(err, "list_"+repository.resource.Name)
	}

	return pagination.NewPage(items, int(total), query.Params), nil
}

func (repository *MongoRepository[T]) Get(ctx context.Context, id string) (T, error) {
	record := repository.resource.New()
	if err := repository.collection.FindOne(ctx, bson.M{"_id": id}).Decode(record); err != nil {
		var zero T
		return zero, dberr.Wrap(err, "get_"+repository.resource.Name)
	}
	return record, nil
}

func (repository *MongoRepository[T]) Create(ctx context.Context, record T) error {
	_, err := repository.collection.InsertOne(ctx, record)
	return dberr.Wrap(err, "create_"+repository.resource.Name)
}

func (repository *MongoRepository[T]) Update(ctx context.Context, record T) error {
	result, err := repository.collection.ReplaceOne(ctx, bson.M{"_id": record.Metadata().ID}, record)
	if err != nil {
		return dberr.Wrap(err, "update_"+repository.resource.Name)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound()
	}
	return nil
}

func (repository *MongoRepository[T]) Delete(ctx context.Context, id string) error {
	result, err := repository.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dberr.Wrap(err, "delete_"+repository.resource.Name)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound()
	}
	return nil
}
