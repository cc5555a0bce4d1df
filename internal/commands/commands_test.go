package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok, err := Parse("cmd set -field radius -value 20")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"set", "-field", "radius", "-value", "20"}, args)

	args, ok, err = Parse(`  cmd load -name "old car"  `)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"load", "-name", "old car"}, args)

	args, ok, err = Parse("cmd")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, args)

	_, ok, _ = Parse("hello")
	assert.False(t, ok)
	_, ok, _ = Parse("cmdx grid")
	assert.False(t, ok)

	_, ok, err = Parse(`cmd load -name "old car`)
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("grid")
	on := fs.Bool("on", true, "show grid")
	var got *bool
	r.Register("grid", "grid -on=<bool>", fs, func() error {
		v := *on
		got = &v
		return nil
	})
	r.Register("fail", "fail", nil, func() error { return errors.New("nope") })

	require.NoError(t, r.Execute([]string{"grid", "-on=false"}))
	require.NotNil(t, got)
	assert.False(t, *got)

	assert.EqualError(t, r.Execute([]string{"fail"}), "nope")
	assert.EqualError(t, r.Execute([]string{"zoom"}), "unknown command: zoom")
	assert.EqualError(t, r.Execute([]string{"gird"}), "unknown command: gird (did you mean grid?)")
	assert.ErrorContains(t, r.Execute(nil), "fail, grid")
	assert.ErrorContains(t, r.Execute([]string{"grid", "-bogus"}), "usage: grid -on=<bool>")

	assert.Equal(t, []string{"fail: fail", "grid: grid -on=<bool>"}, r.Help())
}

func TestRunLine(t *testing.T) {
	r := NewRegistry()
	on := false
	fs := NewFlagSet("grid")
	fs.BoolVar(&on, "on", false, "show grid")
	r.Register("grid", "cmd grid -on=true|false", fs, func() error { return nil })

	require.NoError(t, r.RunLine("  cmd grid -on=true  "))
	assert.True(t, on)

	assert.ErrorIs(t, r.RunLine("grid -on=false"), ErrNotCommand)
	assert.Error(t, r.RunLine("cmd"))
	assert.ErrorContains(t, r.RunLine(`cmd grid "-on=true`), "parse")
}

func TestFlagsResetBetweenRuns(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("load")
	name := fs.String("name", "", "model")
	scale := fs.Float64("scale", 1, "scale")
	var got []string
	r.Register("load", "load -name <n> -scale <s>", fs, func() error {
		got = append(got, fmt.Sprintf("%s %g", *name, *scale))
		return nil
	})

	require.NoError(t, r.RunLine("cmd load -name eye -scale 0.005"))
	require.NoError(t, r.RunLine("cmd load -name tank"))
	assert.Equal(t, []string{"eye 0.005", "tank 1"}, got)
}
