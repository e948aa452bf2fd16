// Package ircnet implements a single-connection IRC client runtime on top
// of the typed message layer in irctext: transport, registration handshake
// with capability negotiation and SASL, a dispatch loop multiplexing
// commands and autoresponders, and a graceful quit path.
package ircnet

import (
	"context"
	"errors"
	"fmt"
	"net"
	"reflect"
	"strings"
	"time"

	"git.sr.ht/~edsample/ircnet/irctext"
)

// State is the lifecycle state of the runtime.
type State int

const (
	StateConnecting State = iota
	StateRegistering
	StateCapabilityNegotiation
	StateSaslInProgress
	StateAwaitingWelcome
	StateConnected
	StateQuitting
	StateClosed
)

// quitGrace is how long to wait for the server to close the socket after
// QUIT before force-closing.
const quitGrace = 10 * time.Second

// Config describes one connection. Callers own config loading; the runtime
// consumes the struct.
type Config struct {
	Host string
	Port int   // 0 selects 6697 with TLS, 6667 without
	TLS  *bool // nil means true

	// WebSocketURL, when set, connects over an IRCv3 websocket endpoint
	// instead of Host/Port.
	WebSocketURL string

	// Dial overrides the transport entirely, for embedders that already
	// hold a duplex stream.
	Dial func(ctx context.Context) (net.Conn, error)

	Password string // sent as PASS when non-empty; also the SASL password
	Nickname string
	Username string // defaults to Nickname
	Realname string // defaults to Nickname

	// SASL selects authentication: nil tries SASL when a password is set
	// and proceeds unauthenticated if every mechanism fails; true requires
	// it; false disables it.
	SASL *bool
	// SASLMechanisms overrides the preference order; defaults to
	// DefaultSASLMechanisms.
	SASLMechanisms []string

	Logger Logger
	Debug  bool // log every sent and received line
}

func (cfg *Config) tls() bool { return cfg.TLS == nil || *cfg.TLS }

// Client is a single-connection IRC runtime. One goroutine (the dispatch
// loop) exclusively owns the connection state; the exported methods are
// safe to call from any goroutine.
type Client struct {
	config  Config
	logger  Logger
	metrics *metrics

	conn     *conn
	events   chan Event
	acts     chan action
	incoming chan readResult
	done     chan struct{}

	responders autoResponderSet

	// Everything below is owned by the dispatch loop (and, before it
	// starts, by the handshake).
	state         State
	nick          irctext.Nickname
	username      string
	realname      string
	isupport      *irctext.ISupport
	availableCaps map[string]string
	enabledCaps   map[string]struct{}
	channels      map[string]*channelState
	out           *ConnectedEvent

	running []*runningCommand
	queued  map[reflect.Type][]*runningCommand

	quitting  bool
	quitTimer *time.Timer
}

type readResult struct {
	msg *irctext.Message
	err error
}

type action interface{}

type (
	actionRun struct {
		rc *runningCommand
	}
	actionCancel struct {
		rc *runningCommand
	}
	actionCommandTimeout struct {
		rc *runningCommand
	}
	actionQuit struct {
		reason string
	}
	actionForceClose struct{}
)

type runningCommand struct {
	cmd       Command
	result    chan error
	timer     *time.Timer
	cancelled bool
}

// NewClient builds an unconnected client. Register autoresponders before
// calling Connect.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = stdLogger{}
	}
	logger = &prefixLogger{logger, fmt.Sprintf("irc %q: ", cfg.Host)}
	c := &Client{
		config:        cfg,
		logger:        logger,
		metrics:       newMetrics(),
		events:        make(chan Event, 64),
		acts:          make(chan action, 64),
		incoming:      make(chan readResult, 64),
		done:          make(chan struct{}),
		state:         StateConnecting,
		isupport:      irctext.NewISupport(),
		availableCaps: make(map[string]string),
		enabledCaps:   make(map[string]struct{}),
		channels:      make(map[string]*channelState),
		queued:        make(map[reflect.Type][]*runningCommand),
	}
	c.responders.logger = logger
	return c
}

// AddAutoResponder registers a handler for incoming messages. It must be
// called before Connect.
func (c *Client) AddAutoResponder(ar AutoResponder) {
	c.responders.responders = append(c.responders.responders, ar)
}

// Connect dials the server, runs the registration handshake to completion
// and starts the dispatch loop. The returned event carries the accumulated
// welcome burst; it is also delivered on the event stream.
func (c *Client) Connect(ctx context.Context) (*ConnectedEvent, error) {
	nick, err := irctext.ParseNickname(c.config.Nickname)
	if err != nil {
		return nil, fmt.Errorf("invalid nickname: %w", err)
	}
	c.nick = nick
	c.username = c.config.Username
	if c.username == "" {
		c.username = c.config.Nickname
	}
	if _, err := irctext.ParseUsername(c.username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	c.realname = c.config.Realname
	if c.realname == "" {
		c.realname = c.config.Nickname
	}

	netConn, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	c.conn = newConn(netConn, &connOptions{
		Logger:         c.logger,
		Debug:          c.config.Debug,
		RateLimitDelay: messageDelay,
		RateLimitBurst: messageBurst,
	}, c.metrics)

	ev, err := c.runHandshake()
	if err != nil {
		c.conn.Close()
		return nil, err
	}
	c.metrics.connects.Inc()

	c.emit(*ev)
	go c.readLoop()
	go c.run(ctx)
	return ev, nil
}

func (c *Client) dial(ctx context.Context) (net.Conn, error) {
	if c.config.Dial != nil {
		return c.config.Dial(ctx)
	}
	if c.config.WebSocketURL != "" {
		return DialWebSocket(ctx, c.config.WebSocketURL)
	}
	return Dial(ctx, Target{Host: c.config.Host, Port: c.config.Port, TLS: c.config.tls()})
}

func (c *Client) saslMechanisms() []string {
	if len(c.config.SASLMechanisms) > 0 {
		return c.config.SASLMechanisms
	}
	return DefaultSASLMechanisms
}

// Events returns the typed event stream. The channel is closed after the
// DisconnectedEvent.
func (c *Client) Events() <-chan Event { return c.events }

// Done is closed when the runtime has fully shut down.
func (c *Client) Done() <-chan struct{} { return c.done }

// Send queues an outgoing message. Messages are written in call order.
func (c *Client) Send(msg irctext.ClientMessage) {
	c.conn.SendMessage(irctext.ClientMsg(msg))
}

// SendAfter schedules a message on a timer so that autoresponders never
// block the dispatch loop.
func (c *Client) SendAfter(d time.Duration, msg irctext.ClientMessage) {
	time.AfterFunc(d, func() { c.Send(msg) })
}

func (c *Client) send(msg irctext.ClientMessage) {
	c.conn.SendMessage(irctext.ClientMsg(msg))
}

// Run executes a command to completion: its initial messages are sent,
// matching replies are routed to it before any autoresponder, and the
// result is returned. Commands of the same kind run one at a time.
func (c *Client) Run(ctx context.Context, cmd Command) error {
	rc := &runningCommand{cmd: cmd, result: make(chan error, 1)}
	select {
	case c.acts <- actionRun{rc}:
	case <-c.done:
		return ErrDisconnected
	case <-ctx.Done():
		return ErrCommandCancelled
	}

	select {
	case err := <-rc.result:
		return err
	case <-ctx.Done():
		select {
		case c.acts <- actionCancel{rc}:
		case <-c.done:
		}
		return ErrCommandCancelled
	case <-c.done:
		return ErrDisconnected
	}
}

// Join joins the given channels one at a time and returns their membership
// snapshots.
func (c *Client) Join(ctx context.Context, channels []irctext.Channel, keys []irctext.ChannelKey) ([]*JoinedEvent, error) {
	var joined []*JoinedEvent
	for i, ch := range channels {
		cmd := &JoinChannel{Channel: ch}
		if i < len(keys) {
			cmd.Key = keys[i]
		}
		if err := c.Run(ctx, cmd); err != nil {
			return joined, err
		}
		if err := cmd.Err(); err != nil {
			return joined, err
		}
		joined = append(joined, cmd.Result)
	}
	return joined, nil
}

// Quit sends QUIT and begins the graceful shutdown path: the runtime waits
// up to ten seconds for the server to close the connection.
func (c *Client) Quit(reason string) {
	select {
	case c.acts <- actionQuit{reason: reason}:
	case <-c.done:
	}
}

// Shutdown quits and blocks until the runtime has closed.
func (c *Client) Shutdown(ctx context.Context) error {
	c.Quit("")
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) readLoop() {
	for {
		msg, err := c.conn.ReadMessage()
		select {
		case c.incoming <- readResult{msg, err}:
		case <-c.done:
			return
		}
		if err != nil {
			var ple *ParseLineError
			if errors.As(err, &ple) && ple.Err.Kind != irctext.ErrLineTooLong {
				continue
			}
			return
		}
	}
}

// run is the dispatch loop. It exclusively owns the client state.
func (c *Client) run(ctx context.Context) {
	defer close(c.done)
	defer c.conn.Close()

	cancel := ctx.Done()
	for {
		select {
		case res := <-c.incoming:
			if res.err != nil {
				var ple *ParseLineError
				if errors.As(res.err, &ple) && ple.Err.Kind != irctext.ErrLineTooLong {
					c.emit(ParseErrorEvent{Line: ple.Line, Err: ple.Err})
					continue
				}
				c.close(res.err)
				return
			}
			c.handleMessage(res.msg)
		case act := <-c.acts:
			if c.handleAction(act) {
				return
			}
		case <-cancel:
			cancel = nil
			c.beginQuit("")
		}
	}
}

func (c *Client) handleAction(act action) (stop bool) {
	switch act := act.(type) {
	case actionRun:
		c.startOrQueue(act.rc)
	case actionCancel:
		act.rc.cancelled = true
		c.dropQueued(act.rc)
	case actionCommandTimeout:
		for i, rc := range c.running {
			if rc == act.rc {
				c.running = append(c.running[:i], c.running[i+1:]...)
				c.finish(rc, ErrCommandTimeout)
				break
			}
		}
	case actionQuit:
		c.beginQuit(act.reason)
	case actionForceClose:
		c.logger.Printf("server did not close the connection; closing")
		c.close(nil)
		return true
	}
	return false
}

func (c *Client) beginQuit(reason string) {
	if c.quitting {
		return
	}
	c.quitting = true
	c.state = StateQuitting
	c.send(&irctext.Quit{Reason: reason})
	c.quitTimer = time.AfterFunc(quitGrace, func() {
		select {
		case c.acts <- actionForceClose{}:
		case <-c.done:
		}
	})
}

// close tears down the runtime: pending commands fail, the Disconnected
// event is emitted and the event stream is closed.
func (c *Client) close(err error) {
	if c.quitTimer != nil {
		c.quitTimer.Stop()
	}
	for _, rc := range c.running {
		c.finish(rc, ErrDisconnected)
	}
	c.running = nil
	for _, q := range c.queued {
		for _, rc := range q {
			c.finish(rc, ErrDisconnected)
		}
	}
	c.queued = make(map[reflect.Type][]*runningCommand)

	c.state = StateClosed
	if err != nil {
		c.logger.Printf("connection error: %v", err)
	}
	c.emit(DisconnectedEvent{Err: err})
	close(c.events)
}

func (c *Client) emit(ev Event) {
	c.events <- ev
}

// handleMessage dispatches one incoming message: PONG first, then channel
// state bookkeeping, then pending commands in start order, and only if no
// command claims it, autoresponders and the event stream.
func (c *Client) handleMessage(msg *irctext.Message) {
	if ping, ok := msg.Payload.(*irctext.Ping); ok {
		c.send(&irctext.Pong{Token: ping.Token})
	}

	c.updateState(msg)

	for i, rc := range c.running {
		if !rc.cmd.HandleMessage(msg) {
			continue
		}
		if rc.cmd.Done() {
			c.running = append(c.running[:i], c.running[i+1:]...)
			c.finish(rc, rc.cmd.Err())
		}
		return
	}

	c.responders.handleMessage(msg, c)
	c.emit(MessageEvent{Message: msg})
}

func (c *Client) startOrQueue(rc *runningCommand) {
	kind := reflect.TypeOf(rc.cmd)
	for _, other := range c.running {
		if reflect.TypeOf(other.cmd) == kind {
			c.queued[kind] = append(c.queued[kind], rc)
			return
		}
	}
	c.start(rc)
}

func (c *Client) start(rc *runningCommand) {
	if rc.cancelled {
		return
	}
	for _, msg := range rc.cmd.InitialMessages() {
		c.send(msg)
	}
	timeout := rc.cmd.Timeout()
	if timeout == 0 {
		timeout = DefaultCommandTimeout
	}
	rc.timer = time.AfterFunc(timeout, func() {
		select {
		case c.acts <- actionCommandTimeout{rc}:
		case <-c.done:
		}
	})
	c.running = append(c.running, rc)
}

// finish completes a command and starts the next queued one of its kind.
func (c *Client) finish(rc *runningCommand, err error) {
	if rc.timer != nil {
		rc.timer.Stop()
	}
	if !rc.cancelled {
		rc.result <- err
	}

	kind := reflect.TypeOf(rc.cmd)
	if q := c.queued[kind]; len(q) > 0 {
		next := q[0]
		if len(q) == 1 {
			delete(c.queued, kind)
		} else {
			c.queued[kind] = q[1:]
		}
		c.start(next)
	}
}

func (c *Client) dropQueued(rc *runningCommand) {
	kind := reflect.TypeOf(rc.cmd)
	q := c.queued[kind]
	for i, other := range q {
		if other == rc {
			c.queued[kind] = append(q[:i], q[i+1:]...)
			return
		}
	}
}

func (c *Client) caseMap() irctext.CaseMapping {
	return c.isupport.CaseMapping()
}

func (c *Client) isSelf(nick irctext.Nickname) bool {
	return c.nick.Equal(nick, c.caseMap())
}

func (c *Client) channel(name irctext.Channel) *channelState {
	return c.channels[c.caseMap()(string(name))]
}

// updateState maintains the client's channel map and related session state
// for every incoming message, before command routing.
func (c *Client) updateState(msg *irctext.Message) {
	cm := c.caseMap()
	switch r := msg.Payload.(type) {
	case *irctext.Join:
		if msg.Source == nil {
			return
		}
		for _, name := range r.Channels {
			if c.isSelf(msg.Source.Nick) {
				c.channels[cm(string(name))] = newChannelState(name)
			} else if ch := c.channel(name); ch != nil {
				ch.addMember(cm, irctext.NamEntry{Nick: msg.Source.Nick})
			}
		}
	case *irctext.Part:
		if msg.Source == nil {
			return
		}
		for _, name := range r.Channels {
			if c.isSelf(msg.Source.Nick) {
				delete(c.channels, cm(string(name)))
			} else if ch := c.channel(name); ch != nil {
				ch.removeMember(cm, msg.Source.Nick)
			}
		}
	case *irctext.Kick:
		ch := c.channel(r.Channel)
		if ch == nil {
			return
		}
		for _, nick := range r.Users {
			if c.isSelf(nick) {
				delete(c.channels, cm(string(r.Channel)))
				return
			}
			ch.removeMember(cm, nick)
		}
	case *irctext.Quit:
		if msg.Source == nil {
			return
		}
		for _, ch := range c.channels {
			ch.removeMember(cm, msg.Source.Nick)
		}
	case *irctext.Nick:
		if msg.Source == nil {
			return
		}
		if c.isSelf(msg.Source.Nick) {
			c.nick = r.Nick
		}
		for _, ch := range c.channels {
			ch.renameMember(cm, msg.Source.Nick, r.Nick)
		}
	case *irctext.Mode:
		name, err := irctext.ParseChannel(r.Target)
		if err != nil {
			return
		}
		if ch := c.channel(name); ch != nil {
			ch.applyMode(cm, c.isupport.Memberships(), r.Modes, r.Args)
		}
	case *irctext.Topic:
		if ch := c.channel(r.Channel); ch != nil && r.Topic != nil {
			ch.Topic = *r.Topic
			ch.TopicWho = msg.Source
			now := irctext.TimestampFromUnix(time.Now().Unix())
			ch.TopicTime = &now
		}
	case *irctext.RplTopic:
		if ch := c.channel(r.Channel); ch != nil {
			ch.Topic = r.Topic
		}
	case *irctext.RplNoTopic:
		if ch := c.channel(r.Channel); ch != nil {
			ch.Topic = ""
			ch.TopicWho = nil
			ch.TopicTime = nil
		}
	case *irctext.RplTopicWhoTime:
		if ch := c.channel(r.Channel); ch != nil {
			ch.TopicWho = r.Setter
			ts := r.TimeSet
			ch.TopicTime = &ts
		}
	case *irctext.RplNamReply:
		ch := c.channel(r.Channel)
		if ch == nil {
			ch = newChannelState(r.Channel)
			c.channels[cm(string(r.Channel))] = ch
		}
		ch.Status = r.Status
		ch.complete = false
		for _, e := range r.Members {
			ch.addMember(cm, e)
		}
	case *irctext.RplEndOfNames:
		if ch := c.channel(r.Channel); ch != nil && !ch.complete {
			ch.complete = true
			ev := JoinedEvent{
				Channel:    ch.Name,
				Topic:      ch.Topic,
				TopicSetBy: ch.TopicWho,
				TopicSetAt: ch.TopicTime,
				Status:     ch.Status,
				Users:      ch.snapshot(),
			}
			c.emit(ev)
		}
	case *irctext.Cap:
		// Post-registration capability churn mutates the map in place.
		switch r.Subcmd {
		case "NEW":
			for _, capab := range r.Caps {
				c.availableCaps[capab.Name] = capab.Value
			}
		case "DEL":
			for _, capab := range r.Caps {
				delete(c.availableCaps, capab.Name)
				delete(c.enabledCaps, strings.ToLower(capab.Name))
			}
		}
	case *irctext.ErrorMsg:
		c.logger.Printf("server sent ERROR: %v", r.Reason)
	}
}
