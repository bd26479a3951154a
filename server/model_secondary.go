package server

import "fmt"

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	FEED_READY ResponseCode = iota
	FEED_FULL
	ACT_NOT_FOUND
	REQUEST_INVALID
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case FEED_READY:
		return HTTP_SUCCESS
	case FEED_FULL:
		return HTTP_SERVER_ERR
	case ACT_NOT_FOUND:
		return HTTP_NOT_FOUND
	case REQUEST_INVALID:
		return HTTP_BAD_REQUEST
	default:
		panic(h)
	}
}

func (ps PlayerSessionState) Name() string {
	switch ps {
	case PS_NEW:
		return "NEW"
	case PS_PLAY:
		return "PLAY"
	case PS_OVER:
		return "OVER"
	case PS_ERR:
		return "ERR"
	default:
		return fmt.Sprintf("N/A(%d)", ps)
	}
}

type SessionAwaiting struct {
	ResponseCode  ResponseCode
	PlayerSession *PlayerSession
}

type SessionRequest struct {
	SessionAwaiting chan SessionAwaiting
}
