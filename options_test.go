package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, Window{Inner: 4, Outer: 1}, opts.Window)
	assert.True(t, opts.PageLinks)
	assert.True(t, opts.Container)
	assert.Equal(t, "page", opts.ParamName)
	assert.Equal(t, " ", opts.Separator)
	assert.Equal(t, "← Previous", opts.PreviousLabel)
	assert.Equal(t, "Next →", opts.NextLabel)
	assert.False(t, opts.AutoID)
	assert.Empty(t, opts.Attrs)
}

func TestOptionsFromMap(t *testing.T) {
	t.Run("empty bag keeps defaults", func(t *testing.T) {
		opts, notices, err := OptionsFromMap(nil)
		require.NoError(t, err)
		assert.Empty(t, notices)
		assert.Equal(t, DefaultOptions(), opts)
	})

	t.Run("recognized keys are decoded", func(t *testing.T) {
		opts, notices, err := OptionsFromMap(map[string]interface{}{
			"inner_window": 2,
			"outer_window": 0,
			"page_links":   false,
			"param_name":   "p",
			"class":        "compact",
		})
		require.NoError(t, err)
		assert.Empty(t, notices)
		assert.Equal(t, Window{Inner: 2, Outer: 0}, opts.Window)
		assert.False(t, opts.PageLinks)
		assert.Equal(t, "p", opts.ParamName)
		assert.Equal(t, "compact", opts.Class)
		assert.Empty(t, opts.Attrs, "recognized keys must not leak into Attrs")
	})

	t.Run("unrecognized keys pass through as attributes", func(t *testing.T) {
		opts, _, err := OptionsFromMap(map[string]interface{}{
			"outer_window": 2,
			"title":        "Pages",
			"data-role":    "nav",
			"tabindex":     0,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, opts.Window.Outer)
		assert.Equal(t, map[string]string{
			"title":     "Pages",
			"data-role": "nav",
			"tabindex":  "0",
		}, opts.Attrs)
	})

	t.Run("deprecated spellings are migrated and reported", func(t *testing.T) {
		opts, notices, err := OptionsFromMap(map[string]interface{}{
			"prev_label": "Back",
		})
		require.NoError(t, err)
		require.Len(t, notices, 1)
		assert.Contains(t, notices[0], "deprecated")
		assert.Contains(t, notices[0], "previous_label")
		assert.Equal(t, "Back", opts.PreviousLabel)
		assert.Empty(t, opts.Attrs)
	})

	t.Run("numeric strings are accepted", func(t *testing.T) {
		opts, _, err := OptionsFromMap(map[string]interface{}{
			"inner_window": "3",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, opts.Window.Inner)
	})

	t.Run("undecodable values surface an invalid error", func(t *testing.T) {
		_, _, err := OptionsFromMap(map[string]interface{}{
			"page_links": "definitely",
		})
		require.Error(t, err)
		assert.Equal(t, EINVALID, ErrorCode(err))
	})

	t.Run("caller bag is not mutated", func(t *testing.T) {
		bag := map[string]interface{}{"prev_label": "Back"}
		_, _, err := OptionsFromMap(bag)
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"prev_label": "Back"}, bag)
	})
}
