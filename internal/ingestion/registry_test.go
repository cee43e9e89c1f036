package ingestion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndDeregister(t *testing.T) {
	r := NewRegistry()

	cancelled := false
	r.Register("ev1", func() { cancelled = true })

	assert.True(t, r.IsActive("ev1"))
	assert.False(t, r.IsActive("ev2"))

	r.Deregister("ev1")

	assert.False(t, r.IsActive("ev1"))
	assert.True(t, cancelled)
}

func TestRegistry_RegisterReplacesAndCancelsPrevious(t *testing.T) {
	r := NewRegistry()

	ctx, cancel := context.WithCancel(context.Background())
	r.Register("ev1", cancel)
	r.Register("ev1", func() {})

	assert.Error(t, ctx.Err(), "replaced stream should be cancelled")
	assert.True(t, r.IsActive("ev1"))
}

func TestRegistry_DeregisterUnknownIsNoop(t *testing.T) {
	r := NewRegistry()

	r.Deregister("never-registered")

	assert.Empty(t, r.ActiveEvents())
}

func TestRegistry_ActiveEventsSorted(t *testing.T) {
	r := NewRegistry()

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		r.Register(id, func() {})
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, r.ActiveEvents())
}

func TestRegistry_StopAll(t *testing.T) {
	r := NewRegistry()

	cancels := 0
	r.Register("ev1", func() { cancels++ })
	r.Register("ev2", func() { cancels++ })

	r.StopAll()

	assert.Equal(t, 2, cancels)
	assert.Empty(t, r.ActiveEvents())
}
