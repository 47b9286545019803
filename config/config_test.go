// SPDX-License-Identifier: MIT
package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshub/meshub/catalog"
	"github.com/meshub/meshub/config"
	"github.com/meshub/meshub/hub"
)

const chpDocument = `
name: site_a
components:
  - name: chp1
    type: chp_back_pressure
    params:
      eta_q: 0.5
      eta_w: eta_w
nodes:
  - {name: gas, direction: input}
  - {name: heat, direction: output}
  - {name: elec, direction: output}
connections:
  - {from: gas, to: chp1, to_port: fuel_in}
  - {from: chp1, from_port: heat_out, to: heat}
  - {from: chp1, from_port: elec_out, to: elec}
`

func TestParse_FullDocument(t *testing.T) {
	h, err := config.Parse([]byte(chpDocument))
	require.NoError(t, err)

	require.Equal(t, "site_a", h.Name)
	require.Len(t, h.Components, 1)
	require.Equal(t, "chp1", h.Components[0].Name)
	require.Equal(t, "chp_back_pressure", h.Components[0].Type)
	require.Equal(t, 0.5, h.Components[0].Params["eta_q"])
	require.Equal(t, "eta_w", h.Components[0].Params["eta_w"])

	require.Len(t, h.Nodes, 3)
	require.Equal(t, config.Node{Name: "gas", Direction: "input"}, h.Nodes[0])

	require.Len(t, h.Connections, 3)
	require.Equal(t, config.Connection{From: "chp1", FromPort: "heat_out", To: "heat"}, h.Connections[1])
}

func TestParse_DecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not yaml", ":\n:::"},
		{"wrong section shape", "components: 5"},
		{"wrong element shape", "nodes:\n  - just_a_string"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, config.ErrDecode)
		})
	}
}

func TestParse_SchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"component without name", "components:\n  - {type: boiler}"},
		{"component without type", "components:\n  - {name: b1}"},
		{"node without direction", "nodes:\n  - {name: gas}"},
		{"node with bad direction", "nodes:\n  - {name: gas, direction: sideways}"},
		{"connection without from", "connections:\n  - {to: b1, to_port: fuel_in}"},
		{"connection without to", "connections:\n  - {from: gas}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, config.ErrSchema)
		})
	}
}

func TestBuild_EndToEnd(t *testing.T) {
	h, err := config.Parse([]byte(chpDocument))
	require.NoError(t, err)

	g, err := h.Build(catalog.NewRegistry())
	require.NoError(t, err)
	require.Equal(t, "site_a", g.Name())
	require.False(t, g.Frozen())

	m, err := g.Compile()
	require.NoError(t, err)
	require.Equal(t, 3, m.BranchCount())
	require.Equal(t, []string{"gas"}, m.Inputs())
	require.Equal(t, []string{"heat", "elec"}, m.Outputs())

	// eta_q was numeric in the document, eta_w symbolic.
	z, err := m.Z().Eval(map[string]float64{"eta_w": 0.35})
	require.NoError(t, err)
	rows, err := z.Float64s()
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, -1, 0}, rows[0])
	require.Equal(t, []float64{0.35, 0, -1}, rows[1])

	// The document and the equivalent builder calls compile to the same
	// model, identity included.
	direct := hub.New(catalog.NewRegistry(), hub.WithName("site_a"))
	require.NoError(t, direct.AddComponent("chp1", "chp_back_pressure",
		hub.Params{"eta_q": 0.5, "eta_w": "eta_w"}))
	require.NoError(t, direct.AddIONode("gas", hub.Input))
	require.NoError(t, direct.AddIONode("heat", hub.Output))
	require.NoError(t, direct.AddIONode("elec", hub.Output))
	require.NoError(t, direct.Connect("gas", "", "chp1", "fuel_in"))
	require.NoError(t, direct.Connect("chp1", "heat_out", "heat", ""))
	require.NoError(t, direct.Connect("chp1", "elec_out", "elec", ""))

	dm, err := direct.Compile()
	require.NoError(t, err)
	require.True(t, m.Equal(dm))
	require.Equal(t, m.ID(), dm.ID())
}

func TestBuild_NameOverride(t *testing.T) {
	h, err := config.Parse([]byte(chpDocument))
	require.NoError(t, err)

	g, err := h.Build(catalog.NewRegistry(), hub.WithName("renamed"))
	require.NoError(t, err)
	require.Equal(t, "renamed", g.Name())
}

func TestBuild_BuilderErrorsCarryPosition(t *testing.T) {
	reg := catalog.NewRegistry()

	t.Run("unknown component type", func(t *testing.T) {
		h := &config.Hub{Components: []config.Component{{Name: "x", Type: "fusion"}}}
		_, err := h.Build(reg)
		require.ErrorIs(t, err, hub.ErrUnknownComponentType)
		require.Contains(t, err.Error(), "components[0]")
	})

	t.Run("invalid direction on hand-built document", func(t *testing.T) {
		h := &config.Hub{Nodes: []config.Node{{Name: "gas", Direction: "sideways"}}}
		_, err := h.Build(reg)
		require.ErrorIs(t, err, hub.ErrInvalidDirection)
	})

	t.Run("connection against missing node", func(t *testing.T) {
		h := &config.Hub{Connections: []config.Connection{{From: "ghost", To: "also_ghost"}}}
		_, err := h.Build(reg)
		require.ErrorIs(t, err, hub.ErrUnknownNode)
		require.Contains(t, err.Error(), "connections[0]")
	})

	t.Run("missing parameter", func(t *testing.T) {
		h := &config.Hub{Components: []config.Component{{Name: "b1", Type: catalog.TagBoiler}}}
		_, err := h.Build(reg)
		require.ErrorIs(t, err, hub.ErrMissingParam)
	})
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hub.yaml")
	require.NoError(t, os.WriteFile(path, []byte(chpDocument), 0o644))

	h, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "site_a", h.Name)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}
