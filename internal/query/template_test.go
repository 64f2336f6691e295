package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdfunk-net/nautobot-mcp/internal/logger"
)

const widgetTemplate = `
    query Widgets (
        $get_id: Boolean = false,
        $variable_value: [String],
    ){
    widgets (enter_variable_name_here: $variable_value) {
        id @include(if: $get_id)
        name
    }
    }`

func TestNewTemplateValidation(t *testing.T) {
	t.Run("valid template", func(t *testing.T) {
		_, err := NewTemplate("widgets", widgetTemplate)
		require.NoError(t, err)
	})

	t.Run("missing placeholder", func(t *testing.T) {
		_, err := NewTemplate("widgets", `query { widgets { name } $variable_value: [String] }`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "enter_variable_name_here")
	})

	t.Run("duplicate placeholder", func(t *testing.T) {
		text := widgetTemplate + "\n# enter_variable_name_here"
		_, err := NewTemplate("widgets", text)
		require.Error(t, err)
	})

	t.Run("missing list declaration", func(t *testing.T) {
		_, err := NewTemplate("widgets", `query { widgets (enter_variable_name_here: $v) { name } }`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "$variable_value: [String]")
	})

	t.Run("missing subtree marker", func(t *testing.T) {
		_, err := NewTemplate("widgets", widgetTemplate, WithGatedSubtree("no_such_marker"))
		require.Error(t, err)
	})
}

func TestTemplateBuildFilter(t *testing.T) {
	tmpl, err := NewTemplate("widgets", widgetTemplate)
	require.NoError(t, err)

	t.Run("field substitution", func(t *testing.T) {
		text, err := tmpl.Build(FilterSpec{Field: "name__ic"})
		require.NoError(t, err)
		assert.Contains(t, text, "widgets (name__ic: $variable_value)")
		assert.NotContains(t, text, FilterPlaceholder)
	})

	t.Run("scalar narrowing", func(t *testing.T) {
		text, err := tmpl.Build(FilterSpec{Field: "cf_net", VarType: VarString})
		require.NoError(t, err)
		assert.Contains(t, text, "$variable_value: String")
		assert.NotContains(t, text, "$variable_value: [String]")
	})

	t.Run("boolean narrowing", func(t *testing.T) {
		text, err := tmpl.Build(FilterSpec{Field: "enabled", VarType: VarBoolean})
		require.NoError(t, err)
		assert.Contains(t, text, "$variable_value: Boolean")
	})

	t.Run("empty field rejected", func(t *testing.T) {
		_, err := tmpl.Build(FilterSpec{})
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	})
}

func TestTemplateBuildShowAll(t *testing.T) {
	tmpl, err := NewTemplate("widgets", widgetTemplate)
	require.NoError(t, err)

	text, err := tmpl.Build(FilterSpec{ShowAll: true})
	require.NoError(t, err)

	assert.NotContains(t, text, FilterPlaceholder)
	assert.NotContains(t, text, "variable_value")
	assert.Contains(t, text, "widgets {")
	assert.Equal(t, strings.Count(text, "{"), strings.Count(text, "}"))
}

func TestDeviceTemplateSubtree(t *testing.T) {
	def, err := newDeviceDefinition(logger.New())
	require.NoError(t, err)
	require.True(t, def.Template.HasSubtree())

	t.Run("subtree filled when nested filter present", func(t *testing.T) {
		text, err := def.Template.Build(FilterSpec{Field: "name", SubField: "name__isw"})
		require.NoError(t, err)
		assert.Contains(t, text, "interfaces (name__isw: $interface_var_value)")
	})

	t.Run("subtree stripped when nested filter absent", func(t *testing.T) {
		text, err := def.Template.Build(FilterSpec{Field: "name"})
		require.NoError(t, err)
		assert.NotContains(t, text, interfaceFilterMarker)
		assert.NotContains(t, text, "$interface_var_value")
		assert.NotContains(t, text, "$get_interfaces")
		assert.Equal(t, strings.Count(text, "{"), strings.Count(text, "}"))
	})

	t.Run("show all strips filter and subtree", func(t *testing.T) {
		text, err := def.Template.Build(FilterSpec{ShowAll: true})
		require.NoError(t, err)
		assert.NotContains(t, text, FilterPlaceholder)
		assert.NotContains(t, text, interfaceFilterMarker)
		assert.NotContains(t, text, "variable_value")
		assert.Equal(t, strings.Count(text, "{"), strings.Count(text, "}"))
	})
}

func TestCoerceBoolean(t *testing.T) {
	tests := []struct {
		values []string
		want   bool
	}{
		{nil, true},
		{[]string{}, true},
		{[]string{"true"}, true},
		{[]string{"True"}, true},
		{[]string{"1"}, true},
		{[]string{"yes"}, true},
		{[]string{"on"}, true},
		{[]string{"enabled"}, true},
		{[]string{"active"}, true},
		{[]string{" true "}, true},
		{[]string{"false"}, false},
		{[]string{"0"}, false},
		{[]string{"no"}, false},
		{[]string{"disabled"}, false},
		{[]string{"banana"}, false},
	}

	for _, tt := range tests {
		if got := CoerceBoolean(tt.values); got != tt.want {
			t.Errorf("CoerceBoolean(%v) = %v, want %v", tt.values, got, tt.want)
		}
	}
}
