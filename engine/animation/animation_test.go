package animation

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-hello/engine/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereRotationRule(t *testing.T) {
	sphere := transform.New()
	set, err := NewSet(Binding{
		Name:      "sphere spin",
		Target:    sphere,
		Component: transform.RotationY,
		Rule:      Linear(0.2),
	})
	require.NoError(t, err)

	set.Evaluate(5.0)
	assert.Equal(t, float32(1.0), sphere.Rotation().Y)

	for _, elapsed := range []float64{0, 0.016, 1, 2.5, 60, 3600} {
		set.Evaluate(elapsed)
		assert.InDelta(t, 0.2*elapsed, sphere.Rotation().Y, 1e-3, "elapsed %v", elapsed)
	}
}

func TestEvaluateIndependentOfFrameCount(t *testing.T) {
	a, b := transform.New(), transform.New()
	setA, err := NewSet(Binding{Name: "a", Target: a, Component: transform.RotationY, Rule: Linear(0.2)})
	require.NoError(t, err)
	setB, err := NewSet(Binding{Name: "b", Target: b, Component: transform.RotationY, Rule: Linear(0.2)})
	require.NoError(t, err)

	for i := 0; i <= 300; i++ {
		setA.Evaluate(float64(i) / 60)
	}
	setB.Evaluate(5.0)
	assert.Equal(t, b.Rotation().Y, a.Rotation().Y)
}

func TestMultipleBindingsEvaluateInOrder(t *testing.T) {
	node := transform.New()
	set, err := NewSet(
		Binding{Name: "first", Target: node, Component: transform.PositionX, Rule: func(float64) float32 { return 1 }},
		Binding{Name: "bob", Target: node, Component: transform.PositionY, Rule: Linear(2)},
		Binding{Name: "override", Target: node, Component: transform.PositionX, Rule: func(float64) float32 { return 7 }},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())

	set.Evaluate(1.5)
	assert.Equal(t, float32(7), node.Position().X)
	assert.Equal(t, float32(3), node.Position().Y)
}

func TestInvalidBindings(t *testing.T) {
	node := transform.New()
	tests := map[string]Binding{
		"nil target":    {Name: "x", Component: transform.RotationY, Rule: Linear(1)},
		"nil rule":      {Name: "x", Target: node, Component: transform.RotationY},
		"bad component": {Name: "x", Target: node, Component: transform.Component(99), Rule: Linear(1)},
	}
	for name, b := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewSet(b)
			assert.ErrorIs(t, err, ErrInvalidBinding)
		})
	}
}
