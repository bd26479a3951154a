package main

import (
	"encoding/gob"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/smalldream/model"
)

var errNotFetched = errors.New("layout not fetched yet")

// RemoteLevels serves layouts received from a level feed. Requests go out in the
// background; until an act's layout arrives the session generates locally.
type RemoteLevels struct {
	conn     *websocket.Conn
	requests chan model.ClientMessage

	mu     sync.Mutex
	setups map[int]model.Setup
}

// DialLevels connects to the feed and asks for acts 1..acts. A zero seed lets the
// server pick its daily seed.
func DialLevels(url string, acts int, seed int64) (*RemoteLevels, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 3 * time.Second}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing level feed %s: %w", url, err)
	}
	r := &RemoteLevels{
		conn:     conn,
		requests: make(chan model.ClientMessage, acts),
		setups:   make(map[int]model.Setup),
	}
	go r.LoopChannelRead()
	go r.LoopChannelWrite()
	for act := 1; act <= acts; act++ {
		r.requests <- model.ClientMessage{Act: act, Seed: seed}
	}
	return r, nil
}

// Layout returns the fetched layout of an act. The feed hands out one seeded layout per
// act, so restarting an act replays the same maze instead of generating a new one.
func (r *RemoteLevels) Layout(act int, shape model.LevelShape) (model.Layout, error) {
	r.mu.Lock()
	setup, ok := r.setups[act]
	r.mu.Unlock()
	if !ok {
		return model.Layout{}, fmt.Errorf("act %d: %w", act, errNotFetched)
	}
	l, ok := setup.Layout()
	if !ok {
		return model.Layout{}, fmt.Errorf("act %d: malformed setup %dx%d", act, setup.Cols, setup.Rows)
	}
	return l, nil
}

func (r *RemoteLevels) Close() error {
	close(r.requests)
	return r.conn.Close()
}

func (r *RemoteLevels) LoopChannelRead() {
	for {
		_, reader, err := r.conn.NextReader()
		if err != nil {
			log.Debugf("level feed read ended: %v", err)
			return
		}
		var sm model.ServerMessage
		if err := gob.NewDecoder(reader).Decode(&sm); err != nil {
			log.Warnf("level feed decode: %v", err)
			return
		}
		for _, e := range sm.Errors {
			log.Warnf("level feed: %s", e)
		}
		r.mu.Lock()
		for _, s := range sm.Setup {
			r.setups[s.Act] = s
			log.WithFields(log.Fields{"act": s.Act, "seed": s.Seed}).Info("layout received")
		}
		r.mu.Unlock()
	}
}

func (r *RemoteLevels) LoopChannelWrite() {
	for cm := range r.requests {
		w, err := r.conn.NextWriter(websocket.BinaryMessage)
		if err != nil {
			log.Warnf("level feed writer: %v", err)
			return
		}
		if err := gob.NewEncoder(w).Encode(cm); err != nil {
			log.Warnf("level feed encode: %v", err)
			return
		}
		if err := w.Close(); err != nil {
			log.Warnf("level feed flush: %v", err)
			return
		}
	}
}
