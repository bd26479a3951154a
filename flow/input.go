package flow

import "github.com/zucenko/smalldream/model"

// Input is one frame's sampled input. Key fields are "pressed this frame" except the
// directions, which are held state.
type Input struct {
	Up, Down, Left, Right bool

	Enter, Space, Escape bool
	R, H                 bool

	// Click is a left mouse press this frame at Mouse, in screen pixels.
	Click bool
	Mouse model.Vec
}

// Direction is the movement input in world axes (y grows downwards).
func (in Input) Direction() model.Vec {
	var d model.Vec
	if in.Right {
		d.X++
	}
	if in.Left {
		d.X--
	}
	if in.Down {
		d.Y++
	}
	if in.Up {
		d.Y--
	}
	return d
}

func (in Input) keyAdvance() bool {
	return in.Enter || in.Space
}

// advance is the generic "continue" command.
func (in Input) advance() bool {
	return in.Enter || in.Space || in.Click
}

func (in Input) skip() bool {
	return in.Escape
}
