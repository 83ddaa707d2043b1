// Package events pushes notify settings changes to websocket listeners.
package events

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/websocket"
	"github.com/meower-media/notify/pkg/chats"
	"github.com/meower-media/notify/pkg/notify"
)

type Server struct {
	upgrader websocket.Upgrader

	sessions     map[int64]*Session
	sessionsLock sync.Mutex

	nextNonce  int64
	nonceMutex sync.Mutex
}

func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:    1024,
			WriteBufferSize:   1024,
			CheckOrigin:       func(r *http.Request) bool { return true },
			EnableCompression: true,
		},
		sessions: make(map[int64]*Session),
	}
}

func (s *Server) getNextNonce() int64 {
	s.nonceMutex.Lock()
	defer s.nonceMutex.Unlock()
	nonce := s.nextNonce
	s.nextNonce++
	return nonce
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	protoFormat := protoFormatJson
	if r.URL.Query().Get("format") == "msgpack" {
		protoFormat = protoFormatMsgpack
	}

	// Upgrade connection
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	// Register session
	session := newSession(s, conn, protoFormat)
	s.sessionsLock.Lock()
	s.sessions[session.id] = session
	s.sessionsLock.Unlock()

	go session.writeLoop()
	go session.readLoop()
}

func (s *Server) unregister(session *Session) {
	s.sessionsLock.Lock()
	defer s.sessionsLock.Unlock()
	if _, ok := s.sessions[session.id]; ok {
		delete(s.sessions, session.id)
		close(session.send)
	}
}

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.sessionsLock.Lock()
	defer s.sessionsLock.Unlock()
	return len(s.sessions)
}

// NotifySettingsChanged broadcasts the new settings of a member to every
// session. Sessions that can't keep up miss the packet.
func (s *Server) NotifySettingsChanged(id chats.MemberIdCompound, view notify.View) {
	p, err := createPacket(s.getNextNonce(), &V1Packet{
		Cmd: "update_notify_settings",
		Val: &V1UpdateNotifySettings{
			ChatId:   strconv.FormatInt(id.ChatId, 10),
			UserId:   strconv.FormatInt(id.UserId, 10),
			Known:    !view.Unknown,
			Muted:    view.Muted,
			Settings: view.Settings,
		},
	})
	if err != nil {
		log.Println(err)
		sentry.CaptureException(err)
		return
	}

	s.sessionsLock.Lock()
	defer s.sessionsLock.Unlock()
	for _, session := range s.sessions {
		select {
		case session.send <- p:
		default:
		}
	}
}

// Close ends every session.
func (s *Server) Close() {
	s.sessionsLock.Lock()
	defer s.sessionsLock.Unlock()
	for id, session := range s.sessions {
		delete(s.sessions, id)
		close(session.send)
	}
}
