package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, "/", r.CurrentPath())
	assert.Empty(t, r.CurrentQuery())

	query := map[string]string{"task": "payments"}
	r.Navigate("/setup-wizard", query)

	// the router keeps its own copy
	query["task"] = "changed"
	assert.Equal(t, map[string]string{"task": "payments"}, r.CurrentQuery())

	// and hands out copies
	r.CurrentQuery()["method"] = "stripe"
	assert.NotContains(t, r.CurrentQuery(), "method")

	r.Navigate("", nil)
	state := r.State()
	assert.Equal(t, "/", state.Path)
	assert.NotNil(t, state.Query)
	assert.Empty(t, state.Query)

	history := r.History()
	require.Len(t, history, 2)
	assert.Equal(t, "/", history[0].Path)
	assert.Equal(t, "/setup-wizard", history[1].Path)
	assert.Equal(t, "payments", history[1].Query["task"])
}
