package server

import (
	"context"
	"encoding/gob"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/model"
)

const DefaultMaxSessions = 64

func NewLevelServer(cfg config.Config) *LevelServer {
	return &LevelServer{
		Sessions:    make(map[uuid.UUID]*PlayerSession),
		Requests:    make(chan SessionRequest),
		Done:        make(chan uuid.UUID),
		Upgrader:    &websocket.Upgrader{},
		Config:      cfg,
		MaxSessions: DefaultMaxSessions,
		Seed: func() int64 {
			return DailySeed(time.Now())
		},
	}
}

func (s *LevelServer) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		awaiting := make(chan SessionAwaiting, 1)
		select {
		case s.Requests <- SessionRequest{SessionAwaiting: awaiting}:
		case <-time.After(timeout):
			log.Warn("HandleHttpCall session request timed out")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var sa SessionAwaiting
		select {
		case sa = <-awaiting:
		case <-time.After(timeout):
			log.Warn("HandleHttpCall session awaiting timed out")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		if sa.ResponseCode != FEED_READY {
			log.Warnf("HandleHttpCall refused, code:%d", sa.ResponseCode)
			w.WriteHeader(sa.ResponseCode.ToHttp())
			return
		}
		ps := sa.PlayerSession
		defer func() {
			select {
			case s.Done <- ps.Id:
			case <-time.After(timeout):
				log.Warnf("HandleHttpCall could not release session %s", ps.Id)
			}
		}()

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		ps.start(con)
		<-ps.GameOver
		log.WithField("session", ps.Id).Info("session over")
	}
}

// Loop owns the session table until ctx is done.
func (s *LevelServer) Loop(ctx context.Context) {
	log.Info("LevelServer.Loop starting")
	for {
		select {
		case <-ctx.Done():
			log.Info("LevelServer.Loop stopped")
			return
		case req := <-s.Requests:
			if len(s.Sessions) >= s.MaxSessions {
				req.SessionAwaiting <- SessionAwaiting{ResponseCode: FEED_FULL}
				continue
			}
			ps := &PlayerSession{
				State:          PS_NEW,
				Id:             uuid.New(),
				Server:         s,
				GameOver:       make(chan struct{}),
				MessagesToSend: make(chan model.ServerMessage, 10),
			}
			s.Sessions[ps.Id] = ps
			log.WithFields(log.Fields{"session": ps.Id, "open": len(s.Sessions)}).Info("session created")
			req.SessionAwaiting <- SessionAwaiting{ResponseCode: FEED_READY, PlayerSession: ps}
		case id := <-s.Done:
			delete(s.Sessions, id)
		}
	}
}

// Respond builds the answer to one client request.
func (s *LevelServer) Respond(cm model.ClientMessage) model.ServerMessage {
	seed := cm.Seed
	if seed == 0 {
		seed = s.Seed()
	}
	setup, err := BuildSetup(s.Config, cm.Act, seed)
	if err != nil {
		return model.ServerMessage{Errors: []string{err.Error()}}
	}
	return model.ServerMessage{Setup: []model.Setup{setup}}
}

func (ps *PlayerSession) start(conn *websocket.Conn) {
	ps.Conn = conn
	ps.State = PS_PLAY
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			ps.DebugLastPing = time.Now()
			ps.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	var once sync.Once
	over := func() {
		once.Do(func() { close(ps.GameOver) })
	}
	go func() {
		ps.LoopChannelRead()
		over()
	}()
	go func() {
		ps.LoopChannelWrite()
		over()
	}()
}

func (ps *PlayerSession) LoopChannelRead() {
	log.Debugf("LoopChannelRead STARTED %s", ps.Id)
	for {
		_, r, err := ps.Conn.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				ps.State = PS_OVER
			} else {
				log.Debugf("LoopChannelRead err reading message from Conn %v", err)
				ps.State = PS_ERR
			}
			return
		}
		cm := model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			ps.State = PS_ERR
			return
		}
		ps.DebugLastMessage = time.Now()
		ps.DebugInMessages++
		log.WithFields(log.Fields{"session": ps.Id, "act": cm.Act, "seed": cm.Seed}).Debug("layout requested")

		select {
		case ps.MessagesToSend <- ps.Server.Respond(cm):
		default:
			log.Warnf("Dropping request of %s, MessagesToSend FULL", ps.Id)
		}
	}
}

// LoopChannelWrite only consumes, so a full buffer never blocks the reader.
func (ps *PlayerSession) LoopChannelWrite() {
	log.Debugf("LoopChannelWrite STARTED %s", ps.Id)
	for {
		select {
		case <-ps.GameOver:
			return
		case mes := <-ps.MessagesToSend:
			w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				log.Warnf("LoopChannelWrite cant get writer %v", err)
				return
			}
			if err := gob.NewEncoder(w).Encode(mes); err != nil {
				log.Warnf("LoopChannelWrite cant encode %v", err)
				return
			}
			if err := w.Close(); err != nil {
				log.Warnf("LoopChannelWrite cant flush %v", err)
				return
			}
			ps.DebugOutMessages++
		}
	}
}
