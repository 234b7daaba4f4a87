package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").From("salon_settings").
		Where(squirrel.Eq{"salon_id": 5}).
		Where(squirrel.Eq{"name": "x"}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM salon_settings WHERE salon_id = $1 AND name = $2", query)
	assert.Equal(t, []interface{}{5, "x"}, args)
}
