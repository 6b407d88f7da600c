package linear_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/linear"
	"go.trai.ch/kiln/internal/core/ports"
)

func TestNode_Registration(t *testing.T) {
	renderer, _, err := graft.ExecuteFor[ports.Renderer](context.Background())
	require.NoError(t, err)

	_, ok := renderer.(*linear.Renderer)
	assert.True(t, ok, "expected *linear.Renderer, got %T", renderer)
}
