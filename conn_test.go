package ircnet

import (
	"errors"
	"net"
	"strings"
	"testing"

	"git.sr.ht/~edsample/ircnet/irctext"
)

func newTestConn(t *testing.T) (*conn, net.Conn) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	c := newConn(clientConn, &connOptions{Logger: testLogger{t}}, nil)
	t.Cleanup(func() {
		c.Close()
		serverConn.Close()
	})
	return c, serverConn
}

func TestConnParseErrorIsNotFatal(t *testing.T) {
	c, server := newTestConn(t)
	go server.Write([]byte("BOGUS x\r\nPING :tok\r\n"))

	_, err := c.ReadMessage()
	var ple *ParseLineError
	if !errors.As(err, &ple) {
		t.Fatalf("first read = %v, want *ParseLineError", err)
	}
	if ple.Err.Kind != irctext.ErrUnknownCommand {
		t.Errorf("kind = %v", ple.Err.Kind)
	}

	msg, err := c.ReadMessage()
	if err != nil {
		t.Fatalf("second read = %v", err)
	}
	if p, ok := msg.Payload.(*irctext.Ping); !ok || p.Token != "tok" {
		t.Errorf("payload = %#v", msg.Payload)
	}
}

func TestConnLineTooLong(t *testing.T) {
	c, server := newTestConn(t)
	go server.Write([]byte(strings.Repeat("a", 9000)))

	_, err := c.ReadMessage()
	var ple *ParseLineError
	if !errors.As(err, &ple) {
		t.Fatalf("read = %v, want *ParseLineError", err)
	}
	if ple.Err.Kind != irctext.ErrLineTooLong {
		t.Errorf("kind = %v, want ErrLineTooLong", ple.Err.Kind)
	}
}

func TestConnWriteOrder(t *testing.T) {
	c, server := newTestConn(t)

	lines := make(chan string, 3)
	go func() {
		buf := make([]byte, 4096)
		var acc string
		for len(lines) < 3 {
			n, err := server.Read(buf)
			if err != nil {
				close(lines)
				return
			}
			acc += string(buf[:n])
			for {
				line, rest, found := strings.Cut(acc, "\r\n")
				if !found {
					break
				}
				lines <- line
				acc = rest
			}
		}
	}()

	c.SendMessage(irctext.ClientMsg(&irctext.Nick{Nick: "one"}))
	c.SendMessage(irctext.ClientMsg(&irctext.Nick{Nick: "two"}))
	c.SendMessage(irctext.ClientMsg(&irctext.Nick{Nick: "three"}))

	for _, want := range []string{"NICK one", "NICK two", "NICK three"} {
		if got := <-lines; got != want {
			t.Fatalf("line = %q, want %q", got, want)
		}
	}
}
