package model

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	shape := LevelShape{Cols: 9, Rows: 7, Required: 6, Bounds: V(20, 20), MinDist: 2.5}
	l := NewLayout(shape, rand.New(rand.NewSource(5)))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, l))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, l.Spawn, got.Spawn)
	assert.ElementsMatch(t, l.Placement.Collectibles, got.Placement.Collectibles)
	assert.ElementsMatch(t, l.Placement.Hazards, got.Placement.Hazards)
	for c := 0; c < l.Maze.Cols; c++ {
		for r := 0; r < l.Maze.Rows; r++ {
			assert.Equal(t, l.Maze.Matrix[c][r].Walls, got.Maze.Matrix[c][r].Walls, "cell %d,%d", c, r)
		}
	}
}

func TestDecodeHandWritten(t *testing.T) {
	text := "S * \n-+ +\nx|  \n-+-+\n"
	l, err := Decode(strings.NewReader(text))
	require.NoError(t, err)
	m := l.Maze
	assert.Equal(t, 2, m.Cols)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, Pos{0, 0}, l.Spawn)
	assert.Equal(t, []Pos{{1, 0}}, l.Placement.Collectibles)
	assert.Equal(t, []Pos{{0, 1}}, l.Placement.Hazards)
	assert.True(t, m.Open(0, 0, East))
	assert.True(t, m.Open(1, 0, South))
	assert.False(t, m.Open(0, 0, South))
	assert.False(t, m.Open(0, 1, East))
	// (0,1) is walled off on both open-able sides
	assert.Equal(t, 3, m.Reachable(0, 0))
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"odd lines":    "S \n",
		"odd width":    "S  \n-+-\n",
		"ragged":       "S * \n-+\n",
		"unknown mark": "? \n-+\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(text))
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
		})
	}
}

func TestSetupLayoutRoundTrip(t *testing.T) {
	shape := LevelShape{Cols: 7, Rows: 7, Required: 4, Bounds: V(20, 20), MinDist: 2.5}
	l := NewLayout(shape, rand.New(rand.NewSource(8)))
	s := NewSetup(1, 8, l)
	assert.Len(t, s.Walls, 49)

	back, ok := s.Layout()
	require.True(t, ok)
	assert.Equal(t, 48, back.Maze.OpenEdges())
	assert.Equal(t, l.Placement, back.Placement)

	_, ok = Setup{Cols: 2, Rows: 2}.Layout()
	assert.False(t, ok)
}
