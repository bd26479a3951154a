package server

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/model"
)

var ErrUnknownAct = errors.New("unknown act")

// BuildLayout generates the layout of an act. The same config, act and seed always give
// the same layout.
func BuildLayout(cfg config.Config, act int, seed int64) (model.Layout, error) {
	if act < 1 || act > len(cfg.Levels) {
		return model.Layout{}, fmt.Errorf("%w: %d", ErrUnknownAct, act)
	}
	rng := rand.New(rand.NewSource(seed*31 + int64(act)))
	return model.NewLayout(cfg.Shape(act), rng), nil
}

func BuildSetup(cfg config.Config, act int, seed int64) (model.Setup, error) {
	l, err := BuildLayout(cfg, act, seed)
	if err != nil {
		return model.Setup{}, err
	}
	return model.NewSetup(act, seed, l), nil
}

// WriteMaze writes the act's layout in the text maze format.
func WriteMaze(w io.Writer, cfg config.Config, act int, seed int64) error {
	l, err := BuildLayout(cfg, act, seed)
	if err != nil {
		return err
	}
	if err := model.Encode(w, l); err != nil {
		return fmt.Errorf("encoding act %d: %w", act, err)
	}
	return nil
}

// DailySeed is the date as yyyymmdd in UTC, so everyone gets the same mazes for a day.
func DailySeed(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return int64(y*10000 + int(m)*100 + d)
}
