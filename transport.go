package ircnet

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"time"

	"nhooyr.io/websocket"
)

const (
	PlainPort = 6667
	TLSPort   = 6697

	connectTimeout = 15 * time.Second
)

// Target describes the server endpoint to connect to.
type Target struct {
	Host string
	Port int  // 0 selects the default port for the transport
	TLS  bool // TLS 1.2+ with the host trust store and SNI
}

// Addr returns the host:port dial address, filling in the default port.
func (t Target) Addr() string {
	port := t.Port
	if port == 0 {
		if t.TLS {
			port = TLSPort
		} else {
			port = PlainPort
		}
	}
	return net.JoinHostPort(t.Host, strconv.Itoa(port))
}

// Dial resolves and connects to the target, returning a duplex byte stream.
func Dial(ctx context.Context, target Target) (net.Conn, error) {
	if target.Host == "" {
		return nil, fmt.Errorf("missing server host")
	}

	dialer := net.Dialer{Timeout: connectTimeout}
	addr := target.Addr()
	if !target.TLS {
		netConn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("failed to dial %q: %w", addr, err)
		}
		return netConn, nil
	}

	tlsDialer := tls.Dialer{
		NetDialer: &dialer,
		Config: &tls.Config{
			ServerName: target.Host,
			MinVersion: tls.VersionTLS12,
			NextProtos: []string{"irc"},
		},
	}
	netConn, err := tlsDialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %q: %w", addr, err)
	}
	return netConn, nil
}

// DialWebSocket connects to an IRCv3 websocket endpoint ("wss://..." or
// "ws://...") and adapts it to a byte stream carrying one IRC line per text
// message.
func DialWebSocket(ctx context.Context, url string) (net.Conn, error) {
	wsConn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial websocket %q: %w", url, err)
	}
	return websocket.NetConn(context.Background(), wsConn, websocket.MessageText), nil
}
