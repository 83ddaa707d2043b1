package events

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	protoFormatJson    int8 = 0
	protoFormatMsgpack int8 = 1
)

const writeTimeout = 10 * time.Second

type Session struct {
	id     int64
	server *Server

	conn        *websocket.Conn
	protoFormat int8

	send chan *Packet
}

func newSession(server *Server, conn *websocket.Conn, protoFormat int8) *Session {
	return &Session{
		id:          server.getNextNonce(),
		server:      server,
		conn:        conn,
		protoFormat: protoFormat,
		send:        make(chan *Packet, 256),
	}
}

// writeLoop writes queued packets until send is closed.
func (s *Session) writeLoop() {
	for packet := range s.send {
		if err := s.writeToConn(packet); err != nil {
			s.conn.Close()
			return
		}
	}
	s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout),
	)
	s.conn.Close()
}

// readLoop discards incoming messages until the connection ends.
func (s *Session) readLoop() {
	defer s.server.unregister(s)
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Session) writeToConn(packet *Packet) error {
	s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if s.protoFormat == protoFormatMsgpack {
		return s.conn.WriteMessage(websocket.BinaryMessage, packet.MsgpackEncoded)
	}
	return s.conn.WriteMessage(websocket.TextMessage, packet.JsonEncoded)
}
