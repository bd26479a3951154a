package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/server"
)

type Server struct {
	router      *way.Router
	LevelServer *server.LevelServer
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in config")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	s := Server{
		LevelServer: server.NewLevelServer(cfg),
	}
	go s.LevelServer.Loop(context.Background())
	s.routes()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Fatalln(http.ListenAndServe(":"+port, s.router))
}
