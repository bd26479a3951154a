// Package server is the level feed: it hands out seeded maze layouts per act over
// websocket (gob messages) and as plain text.
package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/model"
)

type LevelServer struct {
	Sessions    map[uuid.UUID]*PlayerSession
	Requests    chan SessionRequest
	Done        chan uuid.UUID
	Upgrader    *websocket.Upgrader
	Config      config.Config
	MaxSessions int
	// Seed is used when a client does not ask for one.
	Seed func() int64
}

type PlayerSessionState int

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
	PS_ERR
)

type PlayerSession struct {
	State    PlayerSessionState
	Id       uuid.UUID
	Server   *LevelServer
	Conn     *websocket.Conn
	GameOver chan struct{}

	MessagesToSend chan model.ServerMessage

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}
