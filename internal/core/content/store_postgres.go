// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/studyhub/internal/platform/apperr"
	"github.com/taibuivan/studyhub/internal/platform/dberr"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/pkg/pagination"
)

// DB is the subset of [pgxpool.Pool] the store uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores records in the resource's content table.
type PostgresRepository[T Record] struct {
	db       DB
	resource Resource[T]
}

// NewPostgresRepository creates a repository over a pool or transaction.
func NewPostgresRepository[T Record](db DB, resource Resource[T]) *PostgresRepository[T] {
	return &PostgresRepository[T]{db: db, resource: resource}
}

func (repository *PostgresRepository[T]) List(ctx context.Context, filter Filter, query listing.Query) (pagination.Page[T], error) {
	table := repository.resource.Table

	where, args, err := filter.SQL(table)
	if err != nil {
		return pagination.Page[T]{}, apperr.Internal(err)
	}

	sortColumn, ok := table.Column(query.SortBy)
	if !ok {
		return pagination.Page[T]{}, apperr.Internal(fmt.Errorf("content: sort field %q not in %s", query.SortBy, table.Table))
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, table.Table, where)
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return pagination.Page[T]{}, dberr.Wrap(err, "count_"+repository.resource.Name)
	}

	direction := "DESC"
	if query.Order == pagination.Asc {
		direction = "ASC"
	}

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s%s
		ORDER BY %s %s, %s %s, %s ASC
		LIMIT $%d OFFSET $%d
	`,
		strings.Join(table.Columns(), ", "),
		table.Table, where,
		sortColumn, direction, table.CreatedAt, direction, table.ID,
		len(args)+1, len(args)+2,
	)

	rows, err := repository.db.Query(ctx, listQuery, append(args, query.Limit, query.Offset())...)
	if err != nil {
		return pagination.Page[T]{}, dberr.Wrap(err, "list_"+repository.resource.Name)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		record := repository.resource.New()
		if err := rows.Scan(repository.destinations(record)...); err != nil {
			return pagination.Page[T]{}, dberr.Wrap(err, "scan_"+repository.resource.Name)
		}
		items = append(items, record)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[T]{}, dberr.Wrap(err, "list_"+repository.resource.Name)
	}

	return pagination.NewPage(items, total, query.Params), nil
}

func (repository *PostgresRepository[T]) Get(ctx context.Context, id string) (T, error) {
	table := repository.resource.Table
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, strings.Join(table.Columns(), ", "), table.Table, table.ID)

	record := repository.resource.New()
	if err := repository.db.QueryRow(ctx, query, id).Scan(repository.destinations(record)...); err != nil {
		var zero T
		return zero, dberr.Wrap(err, "get_"+repository.resource.Name)
	}
	return record, nil
}

func (repository *PostgresRepository[T]) Create(ctx context.Context, record T) error {
	table := repository.resource.Table
	columns := table.Columns()

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		table.Table, strings.Join(columns, ", "), placeholders(1, len(columns)),
	)

	_, err := repository.db.Exec(ctx, query, values(repository.destinations(record))...)
	return dberr.Wrap(err, "create_"+repository.resource.Name)
}

func (repository *PostgresRepository[T]) Update(ctx context.Context, record T) error {
	table := repository.resource.Table

	// $1 is the id; attributes follow from $2 with updatedAt first.
	columns := append([]string{table.UpdatedAt}, table.FieldColumns()...)
	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+2)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1`, table.Table, strings.Join(assignments, ", "), table.ID)

	meta := record.Metadata()
	args := append([]any{meta.ID, meta.UpdatedAt}, values(repository.resource.Columns(record))...)

	cmd, err := repository.db.Exec(ctx, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_"+repository.resource.Name)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound()
	}
	return nil
}

func (repository *PostgresRepository[T]) Delete(ctx context.Context, id string) error {
	table := repository.resource.Table
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_"+repository.resource.Name)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound()
	}
	return nil
}

// destinations lists pointers to every column value in scan order.
func (repository *PostgresRepository[T]) destinations(record T) []any {
	meta := record.Metadata()
	return append(
		[]any{&meta.ID, &meta.CreatedBy, &meta.CreatedAt, &meta.UpdatedAt},
		repository.resource.Columns(record)...,
	)
}

// values dereferences scan destinations into query arguments.
func values(pointers []any) []any {
	out := make([]any, len(pointers))
	for i, p := range pointers {
		out[i] = reflect.ValueOf(p).Elem().Interface()
	}
	return out
}

func placeholders(from, n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(marks, ", ")
}
