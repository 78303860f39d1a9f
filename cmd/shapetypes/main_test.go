package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deardanieldavis/shapetypes-sub000/shapes"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloats(t *testing.T) {
	v, err := parseFloats("1, -2.5,3e2", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2.5, 300}, v)

	_, err = parseFloats("1,2", 3)
	assert.Error(t, err)
	_, err = parseFloats("1,x", 2)
	assert.Error(t, err)

	p, err := parsePoint("4,5")
	require.NoError(t, err)
	assert.Equal(t, shapes.Point{X: 4, Y: 5}, p)
}

func TestReadRings(t *testing.T) {
	in := "0 0\n10 0\n10 10\n0 10\n\n\n4 4\n 4 6 \n6 6\n6 4\n"
	rings, err := readRings(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rings, 2)
	assert.Len(t, rings[0], 4)
	assert.Equal(t, shapes.Point{X: 4, Y: 6}, rings[1][1])

	_, err = readRings(strings.NewReader("0 0\n1\n"))
	assert.Error(t, err)
}

func TestRun_Stdin(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	stdin := strings.NewReader("0 0\n10 0\n10 10\n0 10\n\n4 4\n4 6\n6 6\n6 4\n")
	opts := options{
		points: []string{"2,2", "5,5", "4,5"},
		lines:  []string{"-5,5,15,5"},
		rays:   []string{"5,5,1,0"},
		rng:    "positive",
		png:    filepath.Join(t.TempDir(), "out.png"),
		scale:  4,
	}
	require.NoError(t, run(opts, stdin, log))

	var containments []string
	var params []string
	for _, e := range hook.AllEntries() {
		if c, ok := e.Data["containment"]; ok {
			containments = append(containments, c.(string))
		}
		if p, ok := e.Data["params"]; ok {
			params = append(params, p.(string))
		}
	}
	require.Len(t, containments, 3)
	assert.Contains(t, containments[0], "inside")
	assert.Contains(t, containments[1], "outside")
	assert.Contains(t, containments[2], "coincident")
	assert.Equal(t, []string{"[0.25 0.45 0.55 0.75]", "[1 5]"}, params)

	_, err := os.Stat(opts.png)
	assert.NoError(t, err)
}

func TestRun_Fixture(t *testing.T) {
	log, hook := test.NewNullLogger()
	require.NoError(t, run(options{fixture: "courtyard", rng: "both", scale: 1}, nil, log))
	assert.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, "loaded region", hook.AllEntries()[0].Message)
}

func TestRun_Errors(t *testing.T) {
	log, _ := test.NewNullLogger()

	err := run(options{fixture: "nope"}, nil, log)
	assert.Error(t, err)

	err = run(options{svg: "a.svg", fixture: "comb"}, nil, log)
	assert.Error(t, err)

	err = run(options{}, strings.NewReader("0 0\n1 1\n"), log)
	assert.Equal(t, shapes.ErrTooFewPoints, errors.Cause(err))

	err = run(options{fixture: "comb", points: []string{"1"}}, nil, log)
	assert.Error(t, err)

	config := filepath.Join(t.TempDir(), "tol.toml")
	require.NoError(t, os.WriteFile(config, []byte("distance = -1\n"), 0o644))
	err = run(options{fixture: "comb", config: config}, nil, log)
	assert.Error(t, err)
}
