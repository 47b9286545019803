// SPDX-License-Identifier: MIT
package hub_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshub/meshub/expr"
	"github.com/meshub/meshub/hub"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := hub.NewRegistry()
	f := fixed("x", ports("in"), nil, nil)

	require.NoError(t, reg.Register("boiler", f))

	got, err := reg.Lookup("boiler")
	require.NoError(t, err)
	require.NotNil(t, got)

	_, err = reg.Lookup("fusion_reactor")
	require.ErrorIs(t, err, hub.ErrUnknownComponentType)
}

func TestRegistry_RejectsBadRegistrations(t *testing.T) {
	reg := hub.NewRegistry()
	f := fixed("x", ports("in"), nil, nil)

	require.ErrorIs(t, reg.Register("", f), hub.ErrBadFactory)
	require.ErrorIs(t, reg.Register("boiler", nil), hub.ErrBadFactory)

	require.NoError(t, reg.Register("boiler", f))
	require.ErrorIs(t, reg.Register("boiler", f), hub.ErrDuplicateName)
}

func TestRegistry_TypesSorted(t *testing.T) {
	reg := hub.NewRegistry()
	f := fixed("x", ports("in"), nil, nil)
	for _, tag := range []string{"pump", "boiler", "chp"} {
		require.NoError(t, reg.Register(tag, f))
	}
	require.Equal(t, []string{"boiler", "chp", "pump"}, reg.Types())
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	reg := hub.NewRegistry()
	require.Panics(t, func() { reg.MustRegister("", nil) })
}

func TestParams_Value(t *testing.T) {
	p := hub.Params{
		"eta":   0.9,
		"count": 3,
		"label": "eta_boiler",
		"law":   "0.4*eta + 1",
		"sym":   expr.Sym("k"),
		"bad":   struct{}{},
		"junk":  "1 +",
	}

	v, err := p.Value("eta")
	require.NoError(t, err)
	require.True(t, v.Equal(expr.Num(0.9)))

	v, err = p.Value("count")
	require.NoError(t, err)
	require.True(t, v.Equal(expr.Num(3)))

	v, err = p.Value("label")
	require.NoError(t, err)
	require.True(t, v.Equal(expr.Sym("eta_boiler")))

	v, err = p.Value("sym")
	require.NoError(t, err)
	require.True(t, v.Equal(expr.Sym("k")))

	v, err = p.Value("law")
	require.NoError(t, err)
	f, evalErr := v.Eval(map[string]float64{"eta": 0.5})
	require.NoError(t, evalErr)
	require.InDelta(t, 1.2, f, 1e-12)

	_, err = p.Value("absent")
	require.ErrorIs(t, err, hub.ErrMissingParam)

	_, err = p.Value("bad")
	require.ErrorIs(t, err, hub.ErrBadParam)

	_, err = p.Value("junk")
	require.ErrorIs(t, err, hub.ErrBadParam)
}

func TestParams_ValueOr(t *testing.T) {
	p := hub.Params{"eta": 0.75, "bad": []int{1}}

	v, err := p.ValueOr("eta", expr.Num(1))
	require.NoError(t, err)
	require.True(t, v.Equal(expr.Num(0.75)))

	v, err = p.ValueOr("absent", expr.Num(1))
	require.NoError(t, err)
	require.True(t, v.Equal(expr.Num(1)))

	_, err = p.ValueOr("bad", expr.Num(1))
	require.ErrorIs(t, err, hub.ErrBadParam)
}

func TestParams_StringList(t *testing.T) {
	p := hub.Params{
		"plain": []string{"a", "b"},
		"anys":  []any{"x", "y"},
		"mixed": []any{"x", 7},
		"wrong": 42,
	}

	got, err := p.StringList("plain")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)

	got, err = p.StringList("anys")
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, got)

	got, err = p.StringList("absent")
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = p.StringList("mixed")
	require.ErrorIs(t, err, hub.ErrBadParam)

	_, err = p.StringList("wrong")
	require.ErrorIs(t, err, hub.ErrBadParam)
}

func TestDirection_ParseAndString(t *testing.T) {
	d, err := hub.ParseDirection("input")
	require.NoError(t, err)
	require.Equal(t, hub.Input, d)
	require.Equal(t, "input", d.String())

	d, err = hub.ParseDirection("output")
	require.NoError(t, err)
	require.Equal(t, hub.Output, d)
	require.Equal(t, "output", d.String())

	_, err = hub.ParseDirection("sideways")
	require.ErrorIs(t, err, hub.ErrInvalidDirection)

	var zero hub.Direction
	require.False(t, zero.Valid())
}
