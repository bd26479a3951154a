package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/server"
)

type Viewer struct {
	screen tcell.Screen
	cfg    config.Config
	act    int
	seed   int64
	layout model.Layout
}

func NewViewer(screen tcell.Screen, cfg config.Config, seed int64) *Viewer {
	v := &Viewer{screen: screen, cfg: cfg, act: 1, seed: seed}
	v.generate()
	return v
}

func (v *Viewer) generate() {
	l, err := server.BuildLayout(v.cfg, v.act, v.seed)
	if err != nil {
		log.Warnf("act %d: %v", v.act, err)
		v.act = 1
		l, _ = server.BuildLayout(v.cfg, v.act, v.seed)
	}
	v.layout = l
	log.WithFields(log.Fields{"act": v.act, "seed": v.seed}).Debug("maze generated")
}

func (v *Viewer) draw() {
	v.screen.Clear()
	for y, row := range Grid(v.layout) {
		for x, c := range row {
			// two columns per cell keeps the maze roughly square in a terminal
			v.screen.SetContent(2*x, y+2, c.Rune, nil, c.Style)
			fill := c.Rune
			if fill != runeWall {
				fill = ' '
			}
			v.screen.SetContent(2*x+1, y+2, fill, nil, c.Style)
		}
	}
	status := fmt.Sprintf("act %d  seed %d  memories %d  shadows %d   [1-%d] act  [n] next seed  [q] quit",
		v.act, v.seed, len(v.layout.Placement.Collectibles), len(v.layout.Placement.Hazards), len(v.cfg.Levels))
	for i, r := range status {
		v.screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

// handleInput returns false when the viewer should quit.
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == 'n':
			v.seed++
			v.generate()
		case r >= '1' && r <= '9' && int(r-'0') <= len(v.cfg.Levels):
			v.act = int(r - '0')
			v.generate()
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) run(configs <-chan config.Config) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-events:
			if !v.handleInput(ev) {
				return
			}
		case cfg := <-configs:
			v.cfg = cfg
			if v.act > len(cfg.Levels) {
				v.act = 1
			}
			v.generate()
		}
		v.draw()
	}
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in config, reloaded on change")
	seed := flag.Int64("seed", 0, "maze seed, today's by default")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	var configs <-chan config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if w, err := config.Watch(*configPath); err != nil {
			log.Warnf("config watch: %v", err)
		} else {
			defer w.Close()
			configs = w.Configs
		}
	}
	if *seed == 0 {
		*seed = server.DailySeed(time.Now())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	NewViewer(screen, cfg, *seed).run(configs)
}
