package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/smalldream/server"
)

const URI_WS = "/play"
const URI_MAZE = "/maze/:act"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.LevelServer.HandleHttpCall())
	s.router.HandleFunc("GET", URI_MAZE, s.handleMaze())
}

// handleMaze serves an act's layout as text. ?seed= picks the seed, the daily one by
// default.
func (s *Server) handleMaze() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		act, err := strconv.Atoi(way.Param(r.Context(), "act"))
		if err != nil {
			w.WriteHeader(server.REQUEST_INVALID.ToHttp())
			return
		}
		seed := s.LevelServer.Seed()
		if q := r.URL.Query().Get("seed"); q != "" {
			seed, err = strconv.ParseInt(q, 10, 64)
			if err != nil {
				w.WriteHeader(server.REQUEST_INVALID.ToHttp())
				return
			}
		}
		if _, err := server.BuildLayout(s.LevelServer.Config, act, seed); errors.Is(err, server.ErrUnknownAct) {
			w.WriteHeader(server.ACT_NOT_FOUND.ToHttp())
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := server.WriteMaze(w, s.LevelServer.Config, act, seed); err != nil {
			log.Warnf("handleMaze act %d: %v", act, err)
		}
	}
}
