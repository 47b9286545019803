// SPDX-License-Identifier: MIT
package hub_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/hub"
	"github.com/meshub/meshub/matrix"
)

// stub is a bare-bones Component carrying explicit matrices, so tests can
// exercise arbitrary shapes without going through the catalog package.
type stub struct {
	name  string
	tag   string
	ports []hub.Port
	ag    *matrix.Dense
	hg    *matrix.Dense
}

func (s *stub) Name() string                        { return s.name }
func (s *stub) TypeTag() string                     { return s.tag }
func (s *stub) Ports() []hub.Port                   { return s.ports }
func (s *stub) PortBranchMatrix() *matrix.Dense     { return s.ag }
func (s *stub) CharacteristicMatrix() *matrix.Dense { return s.hg }

// ports builds a non-virtual port list in declaration order.
func ports(names ...string) []hub.Port {
	out := make([]hub.Port, len(names))
	for i, n := range names {
		out[i] = hub.Port{Name: n, Index: i}
	}
	return out
}

// fixed returns a factory that ignores params and hands out the given
// shape under each requested instance name.
func fixed(tag string, ps []hub.Port, ag, hg *matrix.Dense) hub.Factory {
	return func(name string, _ hub.Params) (hub.Component, error) {
		return &stub{name: name, tag: tag, ports: ps, ag: ag, hg: hg}, nil
	}
}

// testRegistry registers the small component set the tests build hubs
// from:
//
//	conv    1-in 1-out converter, law eta*V_in - V_out = 0 (eta from params)
//	halver  1-in 1-out converter, fixed law V_in - 2*V_out = 0
//	chp     1-in 2-out cogenerator, laws eta_q and eta_w (from params)
//	pipe    flow-through element: both ports on one internal branch, no law
//	store   in/out/soc storage; soc is virtual
func testRegistry(t testing.TB) *hub.Registry {
	t.Helper()
	reg := hub.NewRegistry()

	reg.MustRegister("conv", func(name string, p hub.Params) (hub.Component, error) {
		eta, err := p.Value("eta")
		if err != nil {
			return nil, err
		}
		return &stub{
			name:  name,
			tag:   "conv",
			ports: ports("in", "out"),
			ag:    matrix.Must(matrix.FromFloats([][]float64{{1, 0}, {0, -1}})),
			hg:    matrix.Must(matrix.FromRows([][]expr.Value{{eta, expr.Num(-1)}})),
		}, nil
	})

	reg.MustRegister("halver", fixed("halver",
		ports("in", "out"),
		matrix.Must(matrix.FromFloats([][]float64{{1, 0}, {0, -1}})),
		matrix.Must(matrix.FromFloats([][]float64{{1, -2}})),
	))

	reg.MustRegister("chp", func(name string, p hub.Params) (hub.Component, error) {
		etaQ, err := p.Value("eta_q")
		if err != nil {
			return nil, err
		}
		etaW, err := p.Value("eta_w")
		if err != nil {
			return nil, err
		}
		return &stub{
			name:  name,
			tag:   "chp",
			ports: ports("fuel_in", "heat_out", "elec_out"),
			ag: matrix.Must(matrix.FromFloats([][]float64{
				{1, 0, 0},
				{0, -1, 0},
				{0, 0, -1},
			})),
			hg: matrix.Must(matrix.FromRows([][]expr.Value{
				{etaQ, expr.Num(-1), expr.Num(0)},
				{etaW, expr.Num(0), expr.Num(-1)},
			})),
		}, nil
	})

	reg.MustRegister("pipe", fixed("pipe",
		ports("in", "out"),
		matrix.Must(matrix.FromFloats([][]float64{{1}, {-1}})),
		matrix.Must(matrix.New(0, 1)),
	))

	reg.MustRegister("store", func(name string, p hub.Params) (hub.Component, error) {
		etaC, err := p.Value("eta_c")
		if err != nil {
			return nil, err
		}
		etaD, err := p.Value("eta_d")
		if err != nil {
			return nil, err
		}
		return &stub{
			name: name,
			tag:  "store",
			ports: []hub.Port{
				{Name: "in", Index: 0},
				{Name: "out", Index: 1},
				{Name: "soc", Index: 2, Virtual: true},
			},
			ag: matrix.Must(matrix.FromFloats([][]float64{
				{1, 0, 0},
				{0, -1, 0},
				{0, 0, 1},
			})),
			hg: matrix.Must(matrix.FromRows([][]expr.Value{
				{etaC, expr.Neg(expr.Div(expr.Num(1), etaD)), expr.Num(-1)},
			})),
		}, nil
	})

	return reg
}

// buildHalverHub wires the single-conversion scenario: one halver between
// an input and an output boundary node.
func buildHalverHub(t testing.TB) *hub.Graph {
	t.Helper()
	g := hub.New(testRegistry(t))
	require.NoError(t, g.AddComponent("cv", "halver", nil))
	require.NoError(t, g.AddIONode("src", hub.Input))
	require.NoError(t, g.AddIONode("snk", hub.Output))
	require.NoError(t, g.Connect("src", "", "cv", "in"))
	require.NoError(t, g.Connect("cv", "out", "snk", ""))
	return g
}

// requireFloats asserts a fully numeric matrix equals want.
func requireFloats(t *testing.T, m *matrix.Dense, want [][]float64) {
	t.Helper()
	got, err := m.Float64s()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
