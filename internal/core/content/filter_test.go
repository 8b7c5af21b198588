// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/studyhub/internal/core/content"
)

func TestFilter_Match(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	attrs := map[string]any{
		"title":   "Linear Algebra",
		"subject": "math",
		"tags":    []string{"exam", "week1"},
		"year":    2021,
		"dueDate": due,
	}
	attr := func(field string) any { return attrs[field] }

	tests := []struct {
		name   string
		filter content.Filter
		want   bool
	}{
		{"empty matches", nil, true},
		{"eq", content.Filter{}.Eq("subject", "math"), true},
		{"eq is exact", content.Filter{}.Eq("subject", "Math"), false},
		{"eq int", content.Filter{}.Eq("year", 2021), true},
		{"eq type mismatch", content.Filter{}.Eq("year", "2021"), false},
		{"search case insensitive", content.Filter{}.Search("ALGEBRA", "title", "subject"), true},
		{"search miss", content.Filter{}.Search("physics", "title", "subject"), false},
		{"has", content.Filter{}.Has("tags", "exam"), true},
		{"has miss", content.Filter{}.Has("tags", "final"), false},
		{"gte", content.Filter{}.GTE("dueDate", due), true},
		{"lte before", content.Filter{}.LTE("dueDate", due.Add(-time.Hour)), false},
		{"conjunction", content.Filter{}.Eq("subject", "math").Has("tags", "final"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(attr))
		})
	}
}

/*
TestFilter_SQL verifies placeholder numbering and LIKE escaping.
*/
func TestFilter_SQL(t *testing.T) {
	filter := content.Filter{}.
		Search("50%_off", "title").
		Has("tags", "exam").
		GTE("rank", 3)

	where, args, err := filter.SQL(memoTable)
	require.NoError(t, err)
	assert.Equal(t, " WHERE (title ILIKE $1) AND $2 = ANY(tags) AND rank >= $3", where)
	assert.Equal(t, []any{`%50\%\_off%`, "exam", 3}, args)

	where, args, err = content.Filter{}.SQL(memoTable)
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)

	_, _, err = content.Filter{}.Eq("password", "x").SQL(memoTable)
	assert.Error(t, err)
}

func TestFilter_BSON(t *testing.T) {
	filter := content.Filter{}.Search("a.b", "title").Eq("id", "abc").LTE("rank", 5)

	want := bson.M{"$and": bson.A{
		bson.M{"$or": bson.A{bson.M{"title": primitive.Regex{Pattern: `a\.b`, Options: "i"}}}},
		bson.M{"_id": "abc"},
		bson.M{"rank": bson.M{"$lte": 5}},
	}}
	assert.Equal(t, want, filter.BSON())
	assert.Equal(t, bson.M{}, content.Filter{}.BSON())
}
