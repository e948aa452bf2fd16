package ircnet

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"git.sr.ht/~edsample/ircnet/irctext"
)

// testServer scripts the server side of a net.Pipe connection.
type testServer struct {
	t    *testing.T
	conn net.Conn
	sc   *bufio.Scanner
}

func newTestPair(t *testing.T, cfg Config) (*Client, *testServer, chan *ConnectedEvent) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	cfg.Host = "irc.test"
	cfg.Dial = func(ctx context.Context) (net.Conn, error) { return clientConn, nil }
	cfg.Logger = testLogger{t}

	client := NewClient(cfg)
	connected := make(chan *ConnectedEvent, 1)
	go func() {
		ev, err := client.Connect(context.Background())
		if err != nil {
			t.Errorf("Connect failed: %v", err)
			serverConn.Close()
			close(connected)
			return
		}
		connected <- ev
	}()

	return client, &testServer{t: t, conn: serverConn, sc: bufio.NewScanner(serverConn)}, connected
}

type testLogger struct{ t *testing.T }

func (l testLogger) Printf(format string, v ...interface{}) { l.t.Logf(format, v...) }

func (s *testServer) expect(prefix string) string {
	s.t.Helper()
	s.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if !s.sc.Scan() {
		s.t.Fatalf("expected line starting with %q, got EOF: %v", prefix, s.sc.Err())
	}
	line := strings.TrimRight(s.sc.Text(), "\r")
	if !strings.HasPrefix(line, prefix) {
		s.t.Fatalf("expected line starting with %q, got %q", prefix, line)
	}
	return line
}

func (s *testServer) send(lines ...string) {
	s.t.Helper()
	s.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	for _, line := range lines {
		if _, err := s.conn.Write([]byte(line + "\r\n")); err != nil {
			s.t.Fatalf("failed to write %q: %v", line, err)
		}
	}
}

func (s *testServer) welcomeBurst(nick string) {
	s.send(
		":irc.test 001 "+nick+" :Welcome to the Test IRC Network "+nick,
		":irc.test 002 "+nick+" :Your host is irc.test, running version test-1.0",
		":irc.test 003 "+nick+" :This server was created today",
		":irc.test 004 "+nick+" irc.test test-1.0 iw bklov bkov",
		":irc.test 005 "+nick+" NICKLEN=16 CHANTYPES=# CASEMAPPING=rfc1459 :are supported by this server",
		":irc.test 251 "+nick+" :There are 2 users and 0 invisible on 1 servers",
		":irc.test 252 "+nick+" 1 :IRC Operators online",
		":irc.test 254 "+nick+" 4 :channels formed",
		":irc.test 255 "+nick+" :I have 2 clients and 0 servers",
		":irc.test 265 "+nick+" 2 3 :Current local users 2, max 3",
		":irc.test 266 "+nick+" 10 12 :Current global users 10, max 12",
		":irc.test 375 "+nick+" :- irc.test Message of the Day -",
		":irc.test 372 "+nick+" :- Hello",
		":irc.test 376 "+nick+" :End of /MOTD command.",
		":"+nick+" MODE "+nick+" :+i",
	)
}

// handshake plays the server side of a registration without SASL.
func (s *testServer) handshake(nick string) {
	s.expect("CAP LS 302")
	s.expect("NICK " + nick)
	s.expect("USER ")
	s.send(":irc.test CAP * LS :account-tag server-time")
	s.expect("CAP REQ :account-tag server-time")
	s.send(":irc.test CAP " + nick + " ACK :account-tag server-time")
	s.expect("CAP END")
	s.welcomeBurst(nick)
}

func waitConnected(t *testing.T, connected chan *ConnectedEvent) *ConnectedEvent {
	t.Helper()
	select {
	case ev := <-connected:
		if ev == nil {
			t.Fatal("Connect failed")
		}
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for registration")
		return nil
	}
}

func TestHandshakeTranscript(t *testing.T) {
	client, server, connected := newTestPair(t, Config{Nickname: "edsample"})
	server.handshake("edsample")
	ev := waitConnected(t, connected)

	if ev.Nick != "edsample" {
		t.Errorf("nick = %q", ev.Nick)
	}
	if ev.Server.Name != "irc.test" || ev.Server.Version != "test-1.0" {
		t.Errorf("server info = %+v", ev.Server)
	}
	if ev.Server.UserModes != "iw" || ev.Server.ChannelModes != "bklov" || ev.Server.ParamChanModes != "bkov" {
		t.Errorf("server modes = %+v", ev.Server)
	}
	if ev.Lusers.Operators != 1 || ev.Lusers.Channels != 4 {
		t.Errorf("lusers = %+v", ev.Lusers)
	}
	if ev.Lusers.LocalUsers != 2 || ev.Lusers.MaxLocalUsers != 3 || ev.Lusers.GlobalUsers != 10 || ev.Lusers.MaxGlobalUsers != 12 {
		t.Errorf("lusers = %+v", ev.Lusers)
	}
	wantMotd := "- irc.test Message of the Day -\n- Hello\nEnd of /MOTD command."
	if ev.Motd != wantMotd {
		t.Errorf("motd = %q, want %q", ev.Motd, wantMotd)
	}
	if ev.Mode.String() != "+i" {
		t.Errorf("mode = %q", ev.Mode)
	}
	if ev.ISupport.NickLen() != 16 {
		t.Errorf("NICKLEN = %d", ev.ISupport.NickLen())
	}

	// Exactly one ConnectedEvent reaches the stream.
	first := <-client.Events()
	if _, ok := first.(ConnectedEvent); !ok {
		t.Errorf("first event = %#v, want ConnectedEvent", first)
	}

	client.Quit("")
	server.expect("QUIT")
	server.conn.Close()
	var connCount int
	for ev := range client.Events() {
		if _, ok := ev.(ConnectedEvent); ok {
			connCount++
		}
	}
	if connCount != 0 {
		t.Errorf("saw %d extra ConnectedEvents", connCount)
	}
}

func TestSASLPlain(t *testing.T) {
	_, server, connected := newTestPair(t, Config{
		Nickname:       "foo",
		Password:       "bar",
		SASLMechanisms: []string{"PLAIN"},
	})

	server.expect("CAP LS 302")
	server.expect("PASS bar")
	server.expect("NICK foo")
	server.expect("USER ")
	server.send(":irc.test CAP * LS :sasl=PLAIN,EXTERNAL")
	server.expect("CAP REQ sasl")
	server.send(":irc.test CAP foo ACK :sasl")
	server.expect("AUTHENTICATE PLAIN")
	server.send("AUTHENTICATE +")
	server.expect("AUTHENTICATE AGZvbwBiYXI=")
	server.send(
		":irc.test 900 foo foo!foo@local foo :You are now logged in as foo",
		":irc.test 903 foo :SASL authentication successful",
	)
	server.expect("CAP END")
	server.welcomeBurst("foo")

	ev := waitConnected(t, connected)
	if ev.Account != "foo" {
		t.Errorf("account = %q, want foo", ev.Account)
	}
}

func TestSASLDownshift(t *testing.T) {
	_, server, connected := newTestPair(t, Config{
		Nickname:       "foo",
		Password:       "bar",
		SASLMechanisms: []string{"SCRAM-SHA-256", "PLAIN"},
	})

	server.expect("CAP LS 302")
	server.expect("PASS bar")
	server.expect("NICK foo")
	server.expect("USER ")
	server.send(":irc.test CAP * LS :sasl=SCRAM-SHA-256,PLAIN")
	server.expect("CAP REQ sasl")
	server.send(":irc.test CAP foo ACK :sasl")
	server.expect("AUTHENTICATE SCRAM-SHA-256")
	server.send(":irc.test 904 foo :SASL authentication failed")
	server.expect("AUTHENTICATE PLAIN")
	server.send("AUTHENTICATE +")
	server.expect("AUTHENTICATE AGZvbwBiYXI=")
	server.send(":irc.test 903 foo :SASL authentication successful")
	server.expect("CAP END")
	server.welcomeBurst("foo")

	waitConnected(t, connected)
}

func TestPingPong(t *testing.T) {
	client, server, connected := newTestPair(t, Config{Nickname: "edsample"})
	server.handshake("edsample")
	waitConnected(t, connected)

	server.send("PING :serv.example")
	if got := server.expect("PONG"); got != "PONG :serv.example" {
		t.Errorf("reply = %q, want PONG :serv.example", got)
	}

	client.Quit("")
	server.expect("QUIT")
	server.conn.Close()
	<-client.Done()
}

func TestCommandIsolation(t *testing.T) {
	client, server, connected := newTestPair(t, Config{Nickname: "edsample"})
	server.handshake("edsample")
	waitConnected(t, connected)

	cmd := &ListChannels{}
	result := make(chan error, 1)
	go func() { result <- client.Run(context.Background(), cmd) }()

	server.expect("LIST")
	server.send(
		":irc.test 321 edsample Channel :Users Name",
		":irc.test 322 edsample #a 3 :topic a",
		":alice!u@h PRIVMSG edsample :interleaved",
		":irc.test 322 edsample #b 5 :topic b",
		":irc.test 323 edsample :End of /LIST",
	)

	if err := <-result; err != nil {
		t.Fatalf("Run = %v", err)
	}
	if len(cmd.Entries) != 2 || cmd.Entries[0].Channel != "#a" || cmd.Entries[1].Channel != "#b" {
		t.Errorf("entries = %+v", cmd.Entries)
	}

	client.Quit("")
	server.expect("QUIT")
	server.conn.Close()
	<-client.Done()

	// The interleaved PRIVMSG passed through; no LIST numeric leaked.
	var sawPrivmsg bool
	for ev := range client.Events() {
		me, ok := ev.(MessageEvent)
		if !ok {
			continue
		}
		switch me.Message.Payload.(type) {
		case *irctext.Privmsg:
			sawPrivmsg = true
		case *irctext.RplList, *irctext.RplListStart, *irctext.RplListEnd:
			t.Errorf("LIST reply leaked to the event stream: %v", me.Message)
		}
	}
	if !sawPrivmsg {
		t.Error("interleaved PRIVMSG did not reach the event stream")
	}
}

func TestJoinChannel(t *testing.T) {
	client, server, connected := newTestPair(t, Config{Nickname: "edsample"})
	server.handshake("edsample")
	waitConnected(t, connected)

	type joinResult struct {
		evs []*JoinedEvent
		err error
	}
	result := make(chan joinResult, 1)
	go func() {
		evs, err := client.Join(context.Background(), []irctext.Channel{"#chat"}, nil)
		result <- joinResult{evs, err}
	}()

	server.expect("JOIN #chat")
	server.send(
		":edsample!u@local JOIN #chat",
		":irc.test 332 edsample #chat :the topic",
		":irc.test 333 edsample #chat alice!a@h 1700000000",
		":irc.test 353 edsample = #chat :@alice edsample",
		":irc.test 366 edsample #chat :End of /NAMES list.",
	)

	r := <-result
	if r.err != nil {
		t.Fatalf("Join = %v", r.err)
	}
	if len(r.evs) != 1 {
		t.Fatalf("joined %d channels", len(r.evs))
	}
	joined := r.evs[0]
	if joined.Channel != "#chat" || joined.Topic != "the topic" {
		t.Errorf("joined = %+v", joined)
	}
	if joined.TopicSetBy == nil || joined.TopicSetBy.Nick != "alice" {
		t.Errorf("topic setter = %v", joined.TopicSetBy)
	}
	if joined.TopicSetAt == nil || joined.TopicSetAt.Raw != 1700000000 {
		t.Errorf("topic time = %v", joined.TopicSetAt)
	}
	if len(joined.Users) != 2 {
		t.Errorf("users = %+v", joined.Users)
	}

	client.Quit("")
	server.expect("QUIT")
	server.conn.Close()
	<-client.Done()
}

func TestJoinRefused(t *testing.T) {
	client, server, connected := newTestPair(t, Config{Nickname: "edsample"})
	server.handshake("edsample")
	waitConnected(t, connected)

	result := make(chan error, 1)
	go func() {
		_, err := client.Join(context.Background(), []irctext.Channel{"#secret"}, nil)
		result <- err
	}()

	server.expect("JOIN #secret")
	server.send(":irc.test 473 edsample #secret :Cannot join channel (+i)")

	if err := <-result; err == nil || !strings.Contains(err.Error(), "Cannot join channel") {
		t.Errorf("Join error = %v", err)
	}

	client.Quit("")
	server.expect("QUIT")
	server.conn.Close()
	<-client.Done()
}

func TestGracefulShutdown(t *testing.T) {
	client, server, connected := newTestPair(t, Config{Nickname: "edsample"})
	server.handshake("edsample")
	waitConnected(t, connected)

	done := make(chan error, 1)
	go func() { done <- client.Shutdown(context.Background()) }()

	server.expect("QUIT")
	server.conn.Close()

	if err := <-done; err != nil {
		t.Fatalf("Shutdown = %v", err)
	}

	var sawDisconnected bool
	for ev := range client.Events() {
		if _, ok := ev.(DisconnectedEvent); ok {
			sawDisconnected = true
		}
	}
	if !sawDisconnected {
		t.Error("no DisconnectedEvent on the stream")
	}
}

func TestParseErrorEvent(t *testing.T) {
	client, server, connected := newTestPair(t, Config{Nickname: "edsample"})
	server.handshake("edsample")
	waitConnected(t, connected)

	server.send(":irc.test BOGUSCOMMAND hello", "PING :still-alive")
	server.expect("PONG")

	client.Quit("")
	server.expect("QUIT")
	server.conn.Close()
	<-client.Done()

	var sawParseError bool
	for ev := range client.Events() {
		if pe, ok := ev.(ParseErrorEvent); ok {
			if pe.Err.Kind != irctext.ErrUnknownCommand {
				t.Errorf("parse error kind = %v", pe.Err.Kind)
			}
			sawParseError = true
		}
	}
	if !sawParseError {
		t.Error("no ParseErrorEvent on the stream")
	}
}
