package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/server"
)

func TestMazeRoute(t *testing.T) {
	s := Server{LevelServer: server.NewLevelServer(config.Default())}
	s.routes()

	tests := []struct {
		path string
		code int
	}{
		{"/maze/1?seed=3", http.StatusOK},
		{"/maze/3", http.StatusOK},
		{"/maze/9", http.StatusNotFound},
		{"/maze/one", http.StatusBadRequest},
		{"/maze/1?seed=abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.router.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestMazeRouteBody(t *testing.T) {
	s := Server{LevelServer: server.NewLevelServer(config.Default())}
	s.routes()

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("GET", "/maze/2?seed=11", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	l, err := model.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 9, l.Maze.Cols)
	assert.Equal(t, 81, l.Maze.Reachable(0, 0))
}
