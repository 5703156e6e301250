package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("bare table selects everything", func(t *testing.T) {
		stmt := From("price_books").Build()
		assert.Equal(t, "SELECT * FROM price_books", stmt.SQL)
		assert.Empty(t, stmt.Params)
	})

	t.Run("select with conditions and ordering", func(t *testing.T) {
		stmt := From("price_modifiers").
			Select("modifier_id", "name").
			Where(Eq("is_active", true)).
			OrderBy("priority", Asc).
			Build()

		assert.Equal(t,
			"SELECT modifier_id, name FROM price_modifiers WHERE is_active = @p0 ORDER BY priority ASC",
			stmt.SQL)
		assert.Equal(t, true, stmt.Params["p0"])
	})

	t.Run("multiple conditions join with AND and unique params", func(t *testing.T) {
		stmt := From("geo_zone_mappings").
			Where(Lte("range_start", int64(560034))).
			Where(Gte("range_end", int64(560034))).
			Build()

		assert.Equal(t,
			"SELECT * FROM geo_zone_mappings WHERE range_start <= @p0 AND range_end >= @p1",
			stmt.SQL)
		assert.Equal(t, int64(560034), stmt.Params["p0"])
		assert.Equal(t, int64(560034), stmt.Params["p1"])
	})

	t.Run("null conditions emit no parameters", func(t *testing.T) {
		stmt := From("price_books").
			Where(IsNull("geo_zone_id")).
			Where(IsNotNull("segment_id")).
			Where(Eq("is_active", true)).
			Build()

		assert.Equal(t,
			"SELECT * FROM price_books WHERE geo_zone_id IS NULL AND segment_id IS NOT NULL AND is_active = @p0",
			stmt.SQL)
		require.Len(t, stmt.Params, 1)
	})

	t.Run("EqOrNull bridges empty-string scopes to NULL", func(t *testing.T) {
		null := From("price_books").Where(EqOrNull("geo_zone_id", "")).Build()
		assert.Equal(t, "SELECT * FROM price_books WHERE geo_zone_id IS NULL", null.SQL)

		eq := From("price_books").Where(EqOrNull("geo_zone_id", "zone-blr")).Build()
		assert.Equal(t, "SELECT * FROM price_books WHERE geo_zone_id = @p0", eq.SQL)
		assert.Equal(t, "zone-blr", eq.Params["p0"])
	})

	t.Run("limit and offset become named parameters", func(t *testing.T) {
		stmt := From("price_history").
			OrderBy("changed_at", Desc).
			Limit(20).
			Offset(40).
			Build()

		assert.Equal(t,
			"SELECT * FROM price_history ORDER BY changed_at DESC LIMIT @limit OFFSET @offset",
			stmt.SQL)
		assert.Equal(t, int64(20), stmt.Params["limit"])
		assert.Equal(t, int64(40), stmt.Params["offset"])
	})

	t.Run("count strips pagination and ordering but keeps filters", func(t *testing.T) {
		base := From("outbox_events").
			Where(Eq("status", "PENDING")).
			OrderBy("created_at", Desc).
			Limit(50)

		stmt := base.Count().Build()
		assert.Equal(t, "SELECT COUNT(*) FROM outbox_events WHERE status = @p0", stmt.SQL)
		assert.Equal(t, "PENDING", stmt.Params["p0"])
	})

	t.Run("builders are immutable", func(t *testing.T) {
		base := From("price_books").Select("book_id")
		_ = base.Where(Eq("is_master", true))

		stmt := base.Build()
		assert.Equal(t, "SELECT book_id FROM price_books", stmt.SQL)
	})
}
