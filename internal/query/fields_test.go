package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

func deviceFieldTable() *FieldTable {
	return NewFieldTable("device", "name", deviceValidFields, deviceAliases, logger.New())
}

func TestFieldTableResolve(t *testing.T) {
	table := deviceFieldTable()

	t.Run("canonical field passes through", func(t *testing.T) {
		field, err := table.Resolve("name")
		require.NoError(t, err)
		assert.Equal(t, "name", field)
	})

	t.Run("alias maps to canonical", func(t *testing.T) {
		field, err := table.Resolve("hostname")
		require.NoError(t, err)
		assert.Equal(t, "name", field)

		field, err = table.Resolve("site")
		require.NoError(t, err)
		assert.Equal(t, "location", field)

		field, err = table.Resolve("manufacturer")
		require.NoError(t, err)
		assert.Equal(t, "device_type__manufacturer", field)
	})

	t.Run("lookup suffix survives alias mapping", func(t *testing.T) {
		field, err := table.Resolve("hostname__ic")
		require.NoError(t, err)
		assert.Equal(t, "name__ic", field)

		field, err = table.Resolve("name__isnull")
		require.NoError(t, err)
		assert.Equal(t, "name__isnull", field)
	})

	t.Run("custom fields bypass validation", func(t *testing.T) {
		field, err := table.Resolve("cf_net")
		require.NoError(t, err)
		assert.Equal(t, "cf_net", field)
	})

	t.Run("unknown field errors with suggestion", func(t *testing.T) {
		_, err := table.Resolve("nmae")
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Contains(t, err.Error(), "Invalid field name: 'nmae'")
		assert.Contains(t, err.Error(), "Did you mean 'name'?")
		assert.Contains(t, err.Error(), "cf_fieldname")
	})

	t.Run("unknown suffix is rejected as a whole", func(t *testing.T) {
		_, err := table.Resolve("name__zz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name__zz")
	})
}

func TestFieldTableSuggestDeterminism(t *testing.T) {
	table := deviceFieldTable()

	// Candidates are sorted before scoring, so ties always resolve the same
	// way across runs.
	first := table.Suggest("locaton")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, table.Suggest("locaton"))
	}
	assert.Equal(t, "location", first)
}

func TestFieldTableSuggestFallsBackToDefault(t *testing.T) {
	table := deviceFieldTable()
	assert.Equal(t, "name", table.Suggest("zzzzzzzzzzzzzzzz"))
}

func TestFieldTableSuggestNeverReturnsAlias(t *testing.T) {
	table := deviceFieldTable()
	// "hostnme" is closest to the alias "hostname"; the suggestion must be
	// the canonical target.
	assert.Equal(t, "name", table.Suggest("hostnme"))
}

func TestFieldTableValidFieldsSorted(t *testing.T) {
	table := deviceFieldTable()
	fields := table.ValidFields()
	require.NotEmpty(t, fields)
	for i := 1; i < len(fields); i++ {
		assert.True(t, strings.Compare(fields[i-1], fields[i]) < 0,
			"fields must be sorted: %v", fields)
	}
}

func TestIsCustomField(t *testing.T) {
	assert.True(t, IsCustomField("cf_net"))
	assert.False(t, IsCustomField("name"))
	assert.False(t, IsCustomField("custom_field_data"))
}
