package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/flow"
	"github.com/zucenko/smalldream/store"
)

const appName = "smalldream"

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in config; reloaded on change")
	feedURL := flag.String("feed", "", "level feed websocket URL, e.g. ws://localhost:8080/play")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one")
	statePath := flag.String("state", "", "tutorial flag file (default: user config dir)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	var configs <-chan config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		w, err := config.Watch(*configPath)
		if err != nil {
			log.Warnf("config hot reload disabled: %v", err)
		} else {
			defer w.Close()
			configs = w.Configs
		}
	}

	path := *statePath
	if path == "" {
		p, err := store.DefaultPath(appName)
		if err != nil {
			log.Warnf("tutorial flag will not persist: %v", err)
		}
		path = p
	}

	opts := flow.Options{
		Config: cfg,
		Flags:  store.Open(path),
		Seed:   *seed,
	}
	if *feedURL != "" {
		levels, err := DialLevels(*feedURL, len(cfg.Levels), *seed)
		if err != nil {
			log.Warnf("level feed unavailable, generating locally: %v", err)
		} else {
			defer levels.Close()
			opts.Levels = levels
		}
	}

	fonts, err := NewFonts()
	if err != nil {
		log.Fatal(err)
	}
	audio, err := NewAudio()
	if err != nil {
		log.Warnf("sound disabled: %v", err)
	}

	game, err := NewGame(flow.NewSession(opts), fonts, audio, configs)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.Run(game.update, cfg.Window.Width, cfg.Window.Height, 1, cfg.Window.Title); err != nil {
		log.Fatal(err)
	}
}
