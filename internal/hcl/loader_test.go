package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/neuratlas/internal/config"
)

const validAtlas = `
component "system" "Root" {}

component "region" "Relay" {
  parent   = "Root"
  function = "relay"
}

component "area" "Motor" {
  parent    = "Root"
  function  = "motor_control"
  area_type = "motor"
  layers    = 4
  active    = false
  connections = ["Root/Relay"]
}

stimulus "poke" {
  target   = "Motor"
  kind     = "motor_command"
  strength = 0.8
  payload  = "move_right_hand"
}
`

func writeAtlas(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("single file", func(t *testing.T) {
		path := writeAtlas(t, t.TempDir(), "atlas.hcl", validAtlas)

		model, err := NewLoader().Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, model.Components, 3)
		require.Len(t, model.Stimuli, 1)

		relay := model.Components[1]
		assert.Equal(t, config.VariantRegion, relay.Variant)
		assert.Equal(t, "Root", relay.Parent)
		assert.Equal(t, "Root/Relay", relay.Path())
		assert.True(t, relay.Active, "active defaults to true")

		motor := model.Components[2]
		assert.Equal(t, config.VariantArea, motor.Variant)
		assert.Equal(t, "motor", motor.AreaType)
		assert.Equal(t, 4, motor.Layers)
		assert.False(t, motor.Active)
		assert.Equal(t, []string{"Root/Relay"}, motor.Connections)

		poke := model.Stimuli[0]
		assert.Equal(t, "Motor", poke.Target)
		assert.InDelta(t, 0.8, poke.Strength, 1e-9)
		assert.Equal(t, "move_right_hand", poke.Payload)
	})

	t.Run("directory is searched recursively", func(t *testing.T) {
		dir := t.TempDir()
		writeAtlas(t, dir, "root.hcl", `component "system" "Root" {}`)
		sub := filepath.Join(dir, "regions")
		require.NoError(t, os.Mkdir(sub, 0750))
		writeAtlas(t, sub, "relay.hcl", `
component "region" "Relay" {
  parent   = "Root"
  function = "relay"
}
`)

		model, err := NewLoader().Load(ctx, dir)
		require.NoError(t, err)
		assert.Len(t, model.Components, 2)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(ctx, filepath.Join(t.TempDir(), "nope.hcl"))
		assert.Error(t, err)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := NewLoader().Load(ctx, t.TempDir())
		assert.ErrorContains(t, err, "no .hcl atlas files found")
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeAtlas(t, t.TempDir(), "broken.hcl", `component "system" "Root" {`)
		_, err := NewLoader().Load(ctx, path)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("unknown variant", func(t *testing.T) {
		path := writeAtlas(t, t.TempDir(), "bad.hcl", `component "nucleus" "X" {}`)
		_, err := NewLoader().Load(ctx, path)
		assert.ErrorContains(t, err, "unknown variant")
	})
}

func TestLoadBytes(t *testing.T) {
	model, err := NewLoader().LoadBytes(context.Background(), "inline.hcl", []byte(validAtlas))
	require.NoError(t, err)
	assert.Len(t, model.Components, 3)
}

func TestStimulusPayloads(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want any
	}{
		{"string", `"move_right_hand"`, "move_right_hand"},
		{"number", `0.25`, 0.25},
		{"bool", `true`, true},
		{"list", `["a", "b"]`, []any{"a", "b"}},
		{"object", `{ limb = "arm", digits = 5 }`, map[string]any{"limb": "arm", "digits": float64(5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := `
component "system" "Root" {}

stimulus "s" {
  target   = "Root"
  kind     = "probe"
  strength = 1
  payload  = ` + tc.expr + `
}
`
			model, err := NewLoader().LoadBytes(context.Background(), "payload.hcl", []byte(src))
			require.NoError(t, err)
			require.Len(t, model.Stimuli, 1)
			assert.Equal(t, tc.want, model.Stimuli[0].Payload)
		})
	}

	t.Run("omitted payload is nil", func(t *testing.T) {
		src := `
component "system" "Root" {}

stimulus "s" {
  target   = "Root"
  kind     = "probe"
  strength = 1
}
`
		model, err := NewLoader().LoadBytes(context.Background(), "payload.hcl", []byte(src))
		require.NoError(t, err)
		assert.Nil(t, model.Stimuli[0].Payload)
	})
}
