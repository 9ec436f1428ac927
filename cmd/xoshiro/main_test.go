package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGlobals(t *testing.T, configBody string) (*Globals, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xoshiro.hcl")
	if configBody != "" {
		require.NoError(t, os.WriteFile(path, []byte(configBody), 0o644))
	}

	var out bytes.Buffer
	g := &Globals{Config: path, NoColor: true, LogLevel: "error"}
	require.NoError(t, g.setup(&out, io.Discard))
	return g, &out
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestDemo(t *testing.T) {
	g, out := setupGlobals(t, "")

	require.NoError(t, (&DemoCmd{}).Run(g))

	got := lines(out.String())
	require.Len(t, got, 21)
	assert.Equal(t, []string{
		"0.19669435215621567", "31",
		"0.46744032361670884", "4",
		"0.33778147110353074", "31",
		"0.37796232739217017", "21",
		"0.7610322645463043", "13",
		"0.6522154341585569", "24",
		"0.0378263316979397", "10",
		"0.6603514768955216", "5",
		"0.3224283133742176", "23",
		"0.5247332322313052", "3",
	}, got[:20])
	assert.Equal(t, "max: 18446744073709551615", got[20])
}

func TestDraw(t *testing.T) {
	t.Run("uint64 from splitmix64", func(t *testing.T) {
		g, out := setupGlobals(t, "")
		cmd := &DrawCmd{Engine: "splitmix64", Seed: "0", Count: 4, Kind: "uint64"}

		require.NoError(t, cmd.Run(g))
		assert.Equal(t, []string{
			"16294208416658607535",
			"7960286522194355700",
			"487617019471545679",
			"17909611376780542444",
		}, lines(out.String()))
	})

	t.Run("engine and seed from config", func(t *testing.T) {
		g, out := setupGlobals(t, "engine = \"xoshiro256\"\nseed = 123\n")
		cmd := &DrawCmd{Count: 2, Kind: "uint64"}

		require.NoError(t, cmd.Run(g))
		assert.Equal(t, []string{"3628370374969813497", "17885451940711451998"}, lines(out.String()))
	})

	t.Run("hex seed", func(t *testing.T) {
		g, out := setupGlobals(t, "")
		cmd := &DrawCmd{Seed: "0x7b", Count: 1, Kind: "real01"}

		require.NoError(t, cmd.Run(g))
		assert.Equal(t, "0.19669435215621567\n", out.String())
	})

	t.Run("between keeps source semantics", func(t *testing.T) {
		g, out := setupGlobals(t, "seed = 123\n")
		cmd := &DrawCmd{Count: 2, Kind: "between", Lo: 2, Hi: 5}

		require.NoError(t, cmd.Run(g))
		assert.Equal(t, []string{"0.590083056468647", "2.908716877500665"}, lines(out.String()))
	})

	t.Run("bounded both algorithms", func(t *testing.T) {
		g, out := setupGlobals(t, "seed = 123\n")
		require.NoError(t, (&DrawCmd{Count: 5, Kind: "bounded", Bound: 7}).Run(g))
		assert.Equal(t, []string{"1", "6", "3", "0", "2"}, lines(out.String()))

		out.Reset()
		require.NoError(t, (&DrawCmd{Count: 5, Kind: "bounded", Bound: 7, Rejection: true}).Run(g))
		assert.Equal(t, []string{"3", "6", "1", "3", "5"}, lines(out.String()))
	})

	t.Run("writes file", func(t *testing.T) {
		g, out := setupGlobals(t, "")
		path := filepath.Join(t.TempDir(), "draws.txt")
		cmd := &DrawCmd{Seed: "123", Count: 1, Kind: "uint64", Out: path}

		require.NoError(t, cmd.Run(g))
		assert.Empty(t, out.String())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "3628370374969813497\n", string(data))
	})

	t.Run("errors", func(t *testing.T) {
		g, _ := setupGlobals(t, "")

		require.Error(t, (&DrawCmd{Engine: "mt19937", Seed: "1", Count: 1, Kind: "uint64"}).Run(g))
		require.Error(t, (&DrawCmd{Seed: "banana", Count: 1, Kind: "uint64"}).Run(g))
		require.Error(t, (&DrawCmd{Seed: "1", Count: 1, Kind: "bounded", Bound: 0}).Run(g))
		require.Error(t, (&DrawCmd{Seed: "1", Count: -1, Kind: "uint64"}).Run(g))
	})
}

func TestHistogramCommand(t *testing.T) {
	g, out := setupGlobals(t, "seed = 42\n")
	report := filepath.Join(t.TempDir(), "report.txt")
	cmd := &HistogramCmd{Workers: 1, Draws: 1_000_000, Bound: 10, Tolerance: 0.02, Report: report}

	require.NoError(t, cmd.Run(g))
	assert.Contains(t, out.String(), "100116")
	assert.Contains(t, out.String(), "total=1000000")
	assert.NotContains(t, out.String(), "out of range")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(data))
}

func TestHistogramCommandFailsOutsideTolerance(t *testing.T) {
	g, _ := setupGlobals(t, "seed = 42\n")
	cmd := &HistogramCmd{Workers: 2, Draws: 1000, Bound: 10, Tolerance: 0}

	err := cmd.Run(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside tolerance")
}

func TestHistogramCommandWideTolerance(t *testing.T) {
	g, out := setupGlobals(t, "seed = 42\n")
	cmd := &HistogramCmd{Workers: 2, Draws: 10_000, Bound: 4, Tolerance: 1.5}

	require.NoError(t, cmd.Run(g))
	assert.Contains(t, out.String(), "accepted=[0, 6250]")
	assert.NotContains(t, out.String(), "out of range")
}

func TestMomentsCommand(t *testing.T) {
	g, out := setupGlobals(t, "seed = 5\n")

	require.NoError(t, (&MomentsCmd{Workers: 2, Draws: 10_000}).Run(g))
	assert.Contains(t, out.String(), "n=10000")
	assert.Contains(t, out.String(), "mean=0.")
}

func TestSetupRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xoshiro.hcl")
	require.NoError(t, os.WriteFile(path, []byte("engine = \"mt19937\"\n"), 0o644))

	g := &Globals{Config: path}
	require.Error(t, g.setup(io.Discard, io.Discard))
}
