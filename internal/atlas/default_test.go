package atlas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/neuratlas/internal/component"
	"github.com/vk/neuratlas/internal/signal"
)

func TestDefaultModel(t *testing.T) {
	model, err := DefaultModel(context.Background())
	require.NoError(t, err)
	assert.Len(t, model.Components, 69)
	assert.Empty(t, model.Stimuli, "the built-in atlas declares structure only")
}

func TestDefaultTree(t *testing.T) {
	ctx := context.Background()
	root, err := Default(ctx)
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Equal(t, "NervousSystem", root.Name())

	t.Run("top-level split", func(t *testing.T) {
		require.Len(t, root.Children(), 2)
		assert.Equal(t, "CentralNervousSystem", root.Children()[0].Name())
		assert.Equal(t, "PeripheralNervousSystem", root.Children()[1].Name())
	})

	t.Run("node count matches the component table", func(t *testing.T) {
		count := 0
		component.Walk(root, func(*component.Component, int) { count++ })
		assert.Equal(t, 69, count, "every declared component is reachable from the root")
	})

	t.Run("known deep paths resolve", func(t *testing.T) {
		motor, ok := component.FindByName(root, "PrimaryMotorCortex")
		require.True(t, ok)
		assert.Equal(t,
			"NervousSystem/CentralNervousSystem/Brain/Cerebrum/CerebralCortex/FrontalLobe/PrimaryMotorCortex",
			motor.Path())

		vagus, ok := component.FindByName(root, "Vagus_X")
		require.True(t, ok)
		assert.Equal(t,
			"NervousSystem/PeripheralNervousSystem/SomaticNervousSystem/CranialNerves/Vagus_X",
			vagus.Path())
	})

	t.Run("duplicate Hippocampus nodes are distinct", func(t *testing.T) {
		temporal, ok := component.FindByName(root, "TemporalLobe")
		require.True(t, ok)
		limbic, ok := component.FindByName(root, "LimbicSystem")
		require.True(t, ok)

		h1, ok := component.FindByName(temporal, "Hippocampus")
		require.True(t, ok)
		h2, ok := component.FindByName(limbic, "Hippocampus")
		require.True(t, ok)

		assert.NotSame(t, h1, h2)
		assert.Empty(t, h1.Children(), "the temporal-lobe entry is a leaf")
		assert.Len(t, h2.Children(), 3, "the limbic entry has the CA fields and dentate gyrus")
	})

	t.Run("no lateral connections in the shipped fixture", func(t *testing.T) {
		component.Walk(root, func(c *component.Component, _ int) {
			assert.Empty(t, c.Connections(), "component %s", c.Path())
		})
	})

	t.Run("every component is active", func(t *testing.T) {
		component.Walk(root, func(c *component.Component, _ int) {
			assert.True(t, c.Active(), "component %s", c.Path())
		})
	})
}

// TestMotorCommandScenario drives the canonical demo: a motor command into
// the primary motor cortex decays through the region stage and is amplified
// by the motor area stage.
func TestMotorCommandScenario(t *testing.T) {
	root, err := Default(context.Background())
	require.NoError(t, err)

	motor, ok := component.FindByName(root, "PrimaryMotorCortex")
	require.True(t, ok)

	outs := motor.Process(signal.New(component.KindMotorCommand, 0.8, "move_right_hand"))

	require.Len(t, outs, 1)
	assert.Equal(t, "motor_control_processed", outs[0].Kind)
	assert.InDelta(t, 0.768, outs[0].Strength, 1e-9)
	assert.Equal(t, "Processed by PrimaryMotorCortex", outs[0].Payload)
	assert.InDelta(t, 0.08, motor.ActivityLevel(), 1e-9)
}
