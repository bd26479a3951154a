package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Text layout, two lines per maze row:
//
//	cell line: for each column the cell mark followed by '|' (east wall) or ' ' (passage)
//	wall line: for each column '-' (south wall) or ' ' (passage) followed by '+'
//
// Cell marks are ' ' empty, 'S' spawn, '*' collectible, 'x' hazard.

const (
	markEmpty       = ' '
	markSpawn       = 'S'
	markCollectible = '*'
	markHazard      = 'x'
)

var ErrMalformed = errors.New("malformed maze text")

// Layout is a maze together with its spawn cell and placed content.
type Layout struct {
	Maze      *Maze
	Spawn     Pos
	Placement Placement
}

func Encode(w io.Writer, l Layout) error {
	m := l.Maze
	marks := make(map[Pos]byte, len(l.Placement.Collectibles)+len(l.Placement.Hazards)+1)
	for _, p := range l.Placement.Collectibles {
		marks[p] = markCollectible
	}
	for _, p := range l.Placement.Hazards {
		marks[p] = markHazard
	}
	marks[l.Spawn] = markSpawn

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for r := 0; r < m.Rows; r++ {
		line.Reset()
		for c := 0; c < m.Cols; c++ {
			mark, ok := marks[Pos{c, r}]
			if !ok {
				mark = markEmpty
			}
			line.WriteByte(mark)
			if m.Matrix[c][r].Walls[East] {
				line.WriteByte('|')
			} else {
				line.WriteByte(' ')
			}
		}
		line.WriteByte('\n')
		for c := 0; c < m.Cols; c++ {
			if m.Matrix[c][r].Walls[South] {
				line.WriteByte('-')
			} else {
				line.WriteByte(' ')
			}
			line.WriteByte('+')
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads the text layout back. Outer borders are always walled.
func Decode(reader io.Reader) (Layout, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	lines := make([]string, 0)
	for scanner.Scan() {
		s := strings.TrimRight(scanner.Text(), "\r")
		if s == "" {
			continue
		}
		lines = append(lines, s)
	}
	if err := scanner.Err(); err != nil {
		return Layout{}, err
	}
	if len(lines) == 0 || len(lines)%2 != 0 {
		return Layout{}, fmt.Errorf("%w: %d lines", ErrMalformed, len(lines))
	}
	width := len(lines[0])
	if width == 0 || width%2 != 0 {
		return Layout{}, fmt.Errorf("%w: line width %d", ErrMalformed, width)
	}

	cols, rows := width/2, len(lines)/2
	m := NewEmptyModel(cols, rows)
	l := Layout{Maze: m, Spawn: m.Center()}

	for r := 0; r < rows; r++ {
		cellLine, wallLine := lines[2*r], lines[2*r+1]
		if len(cellLine) != width || len(wallLine) != width {
			return Layout{}, fmt.Errorf("%w: row %d width mismatch", ErrMalformed, r)
		}
		for c := 0; c < cols; c++ {
			p := Pos{c, r}
			switch cellLine[2*c] {
			case markSpawn:
				l.Spawn = p
			case markCollectible:
				l.Placement.Collectibles = append(l.Placement.Collectibles, p)
			case markHazard:
				l.Placement.Hazards = append(l.Placement.Hazards, p)
			case markEmpty:
			default:
				return Layout{}, fmt.Errorf("%w: unknown mark %q at %d,%d", ErrMalformed, cellLine[2*c], c, r)
			}
			if cellLine[2*c+1] == ' ' && c < cols-1 {
				m.connect(c, r, East)
			}
			if wallLine[2*c] == ' ' && r < rows-1 {
				m.connect(c, r, South)
			}
		}
	}
	return l, nil
}
