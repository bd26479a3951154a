package server

import (
	"bytes"
	"context"
	"encoding/gob"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/model"
)

func TestBuildLayoutDeterministic(t *testing.T) {
	cfg := config.Default()
	a, err := BuildLayout(cfg, 2, 99)
	require.NoError(t, err)
	b, err := BuildLayout(cfg, 2, 99)
	require.NoError(t, err)

	var ea, eb bytes.Buffer
	require.NoError(t, model.Encode(&ea, a))
	require.NoError(t, model.Encode(&eb, b))
	assert.Equal(t, ea.String(), eb.String())
	assert.Equal(t, 9, a.Maze.Cols)
	assert.GreaterOrEqual(t, len(a.Placement.Collectibles), 6)
}

func TestBuildLayoutUnknownAct(t *testing.T) {
	cfg := config.Default()
	for _, act := range []int{0, -1, 4} {
		_, err := BuildLayout(cfg, act, 1)
		assert.ErrorIs(t, err, ErrUnknownAct)
	}
}

func TestDailySeed(t *testing.T) {
	day := time.Date(2024, time.March, 7, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, int64(20240307), DailySeed(day))
	assert.Equal(t, DailySeed(day), DailySeed(day.Add(-time.Hour)))
}

func TestWriteMazeDecodes(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	require.NoError(t, WriteMaze(&buf, cfg, 1, 5))
	l, err := model.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 7, l.Maze.Cols)
	assert.Equal(t, 49, l.Maze.Reachable(0, 0))
	assert.Equal(t, l.Maze.Center(), l.Spawn)
}

func TestResponseCodes(t *testing.T) {
	assert.Equal(t, http.StatusOK, FEED_READY.ToHttp())
	assert.Equal(t, http.StatusServiceUnavailable, FEED_FULL.ToHttp())
	assert.Equal(t, http.StatusNotFound, ACT_NOT_FOUND.ToHttp())
	assert.Equal(t, http.StatusBadRequest, REQUEST_INVALID.ToHttp())
}

func TestRespondUsesServerSeed(t *testing.T) {
	s := NewLevelServer(config.Default())
	s.Seed = func() int64 { return 1234 }

	sm := s.Respond(model.ClientMessage{Act: 3})
	require.Len(t, sm.Setup, 1)
	assert.Equal(t, int64(1234), sm.Setup[0].Seed)
	assert.Equal(t, 11, sm.Setup[0].Cols)
	assert.Len(t, sm.Setup[0].Walls, 121)

	sm = s.Respond(model.ClientMessage{Act: 9, Seed: 1})
	assert.Empty(t, sm.Setup)
	require.Len(t, sm.Errors, 1)
	assert.Contains(t, sm.Errors[0], "unknown act")
}

func startServer(t *testing.T, s *LevelServer) string {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	go s.Loop(ctx)
	ts := httptest.NewServer(s.HandleHttpCall())
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func exchange(t *testing.T, conn *websocket.Conn, cm model.ClientMessage) model.ServerMessage {
	t.Helper()
	w, err := conn.NextWriter(websocket.BinaryMessage)
	require.NoError(t, err)
	require.NoError(t, gob.NewEncoder(w).Encode(cm))
	require.NoError(t, w.Close())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, r, err := conn.NextReader()
	require.NoError(t, err)
	var sm model.ServerMessage
	require.NoError(t, gob.NewDecoder(r).Decode(&sm))
	return sm
}

func TestFeedOverWebsocket(t *testing.T) {
	url := startServer(t, NewLevelServer(config.Default()))
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	sm := exchange(t, conn, model.ClientMessage{Act: 1, Seed: 42})
	require.Len(t, sm.Setup, 1)
	setup := sm.Setup[0]
	assert.Equal(t, 1, setup.Act)
	assert.Equal(t, int64(42), setup.Seed)

	l, ok := setup.Layout()
	require.True(t, ok)
	assert.Equal(t, 49, l.Maze.Reachable(0, 0))
	assert.GreaterOrEqual(t, len(l.Placement.Collectibles), 4)

	want, err := BuildLayout(config.Default(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, want.Placement, l.Placement)

	sm = exchange(t, conn, model.ClientMessage{Act: 7, Seed: 42})
	assert.NotEmpty(t, sm.Errors)
}

func TestFeedFull(t *testing.T) {
	s := NewLevelServer(config.Default())
	s.MaxSessions = 0
	url := startServer(t, s)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestSessionReleasedOnClose(t *testing.T) {
	s := NewLevelServer(config.Default())
	s.MaxSessions = 1
	url := startServer(t, s)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	exchange(t, conn, model.ClientMessage{Act: 1, Seed: 1})
	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	var second *websocket.Conn
	require.Eventually(t, func() bool {
		c, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			return false
		}
		second = c
		return true
	}, 3*time.Second, 20*time.Millisecond)
	defer second.Close()
	sm := exchange(t, second, model.ClientMessage{Act: 2, Seed: 1})
	assert.Len(t, sm.Setup, 1)
}
