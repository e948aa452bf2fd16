package ircnet

import (
	"errors"
	"fmt"
	"time"

	"git.sr.ht/~edsample/ircnet/irctext"
)

// DefaultCommandTimeout bounds a command that stops receiving replies.
const DefaultCommandTimeout = 60 * time.Second

var (
	// ErrCommandTimeout is returned by Run when the command's timeout
	// elapses before it completes.
	ErrCommandTimeout = errors.New("command timed out")
	// ErrCommandCancelled is returned by Run when the caller's context is
	// cancelled; further matching replies are discarded.
	ErrCommandCancelled = errors.New("command cancelled")
	// ErrDisconnected is returned when the connection terminates while a
	// command is pending.
	ErrDisconnected = errors.New("connection terminated")
)

// Command drives a multi-message exchange with the server. The runtime
// sends InitialMessages when the command starts, routes each subsequent
// incoming message through HandleMessage before autoresponders see it, and
// completes the command once Done reports true.
//
// At most one command of a given kind runs at a time; starting a second one
// queues it behind the first.
type Command interface {
	// InitialMessages returns the frames to send when the command starts.
	InitialMessages() []irctext.ClientMessage

	// HandleMessage inspects an incoming message. Returning true claims the
	// message: it is not delivered to autoresponders or the event stream.
	HandleMessage(msg *irctext.Message) bool

	// Done reports whether the command has completed, successfully or not.
	Done() bool

	// Err returns the command's failure, or nil after a successful
	// completion. Only meaningful once Done reports true.
	Err() error

	// Timeout bounds the whole exchange; zero selects
	// DefaultCommandTimeout.
	Timeout() time.Duration
}

// ListEntry is one channel in a ListChannels result.
type ListEntry struct {
	Channel irctext.Channel `json:"channel"`
	Clients uint64          `json:"clients"`
	Topic   string          `json:"topic"`
}

// ListChannels runs LIST and collects every RPL_LIST line until
// RPL_LISTEND. While it is pending no RPL_LIST reaches autoresponders.
type ListChannels struct {
	// Channels optionally restricts the query.
	Channels []irctext.Channel

	// Entries holds the result once the command is done.
	Entries []ListEntry

	done    bool
	failure error
}

func (c *ListChannels) InitialMessages() []irctext.ClientMessage {
	return []irctext.ClientMessage{&irctext.List{Channels: c.Channels}}
}

func (c *ListChannels) HandleMessage(msg *irctext.Message) bool {
	if c.done {
		return false
	}
	switch r := msg.Payload.(type) {
	case *irctext.RplListStart:
		return true
	case *irctext.RplList:
		c.Entries = append(c.Entries, ListEntry{Channel: r.Channel, Clients: r.Clients, Topic: r.Topic})
		return true
	case *irctext.RplListEnd:
		c.done = true
		return true
	case *irctext.RplTryAgain:
		if r.Command == "LIST" {
			c.fail(fmt.Errorf("LIST refused: %v", r.Text))
			return true
		}
	case *irctext.ErrUnknownCommandRpl:
		if r.Command == "LIST" {
			c.fail(fmt.Errorf("server does not recognize LIST: %v", r.Text))
			return true
		}
	case *irctext.ErrNotRegistered:
		c.fail(fmt.Errorf("LIST requires registration: %v", r.Text))
		return true
	}
	return false
}

func (c *ListChannels) fail(err error) {
	c.done = true
	c.failure = err
}

func (c *ListChannels) Done() bool             { return c.done }
func (c *ListChannels) Err() error             { return c.failure }
func (c *ListChannels) Timeout() time.Duration { return 0 }

// ProbeKind selects the query a Probe performs.
type ProbeKind string

const (
	ProbeAdmin   ProbeKind = "admin"
	ProbeVersion ProbeKind = "version"
	ProbeLinks   ProbeKind = "links"
	ProbeInfo    ProbeKind = "info"
	ProbeLusers  ProbeKind = "lusers"
	ProbeMotd    ProbeKind = "motd"
)

// Probe runs one informational query and collects its typed replies until
// the terminating numeric.
type Probe struct {
	Kind ProbeKind

	// Replies holds every claimed reply, in arrival order.
	Replies []irctext.Reply

	done    bool
	failure error
}

func (c *Probe) InitialMessages() []irctext.ClientMessage {
	switch c.Kind {
	case ProbeAdmin:
		return []irctext.ClientMessage{&irctext.Admin{}}
	case ProbeVersion:
		return []irctext.ClientMessage{&irctext.Version{}}
	case ProbeLinks:
		return []irctext.ClientMessage{&irctext.Links{}}
	case ProbeInfo:
		return []irctext.ClientMessage{&irctext.Info{}}
	case ProbeLusers:
		return []irctext.ClientMessage{&irctext.Lusers{}}
	case ProbeMotd:
		return []irctext.ClientMessage{&irctext.Motd{}}
	default:
		return nil
	}
}

func (c *Probe) HandleMessage(msg *irctext.Message) bool {
	if c.done {
		return false
	}
	rpl, ok := msg.Payload.(irctext.Reply)
	if !ok {
		return false
	}
	if r, ok := rpl.(*irctext.ErrUnknownCommandRpl); ok {
		c.done = true
		c.failure = fmt.Errorf("server does not recognize %v: %v", r.Command, r.Text)
		return true
	}

	claim := func(terminal bool) bool {
		c.Replies = append(c.Replies, rpl)
		if terminal {
			c.done = true
		}
		return true
	}

	switch c.Kind {
	case ProbeAdmin:
		switch rpl.(type) {
		case *irctext.RplAdminMe, *irctext.RplAdminLoc1, *irctext.RplAdminLoc2:
			return claim(false)
		case *irctext.RplAdminEmail:
			return claim(true)
		case *irctext.ErrNoSuchServer:
			return claim(true)
		}
	case ProbeVersion:
		if _, ok := rpl.(*irctext.RplVersion); ok {
			return claim(true)
		}
	case ProbeLinks:
		switch rpl.(type) {
		case *irctext.RplLinks:
			return claim(false)
		case *irctext.RplEndOfLinks:
			return claim(true)
		}
	case ProbeInfo:
		switch rpl.(type) {
		case *irctext.RplInfo:
			return claim(false)
		case *irctext.RplEndOfInfo:
			return claim(true)
		}
	case ProbeLusers:
		switch rpl.(type) {
		case *irctext.RplLuserClient, *irctext.RplLuserOp, *irctext.RplLuserUnknown,
			*irctext.RplLuserChannels, *irctext.RplStatsConn,
			*irctext.RplLocalUsers, *irctext.RplGlobalUsers:
			return claim(false)
		case *irctext.RplLuserMe:
			// Required last reply of the burst; trailing 265/266 variants
			// are delivered as ordinary events.
			return claim(true)
		}
	case ProbeMotd:
		switch rpl.(type) {
		case *irctext.RplMotdStart, *irctext.RplMotd:
			return claim(false)
		case *irctext.RplEndOfMotd:
			return claim(true)
		case *irctext.ErrNoMotd:
			return claim(true)
		}
	}
	return false
}

func (c *Probe) Done() bool             { return c.done }
func (c *Probe) Err() error             { return c.failure }
func (c *Probe) Timeout() time.Duration { return 0 }

// JoinChannel joins a single channel and completes once the server has
// delivered the full NAMES bundle, or an error reply refusing the join.
type JoinChannel struct {
	Channel irctext.Channel
	Key     irctext.ChannelKey

	// Result holds the membership snapshot once the command is done.
	Result *JoinedEvent

	joined  JoinedEvent
	done    bool
	failure error
}

func (c *JoinChannel) InitialMessages() []irctext.ClientMessage {
	join := &irctext.Join{Channels: []irctext.Channel{c.Channel}}
	if c.Key != "" {
		join.Keys = []irctext.ChannelKey{c.Key}
	}
	c.joined = JoinedEvent{Channel: c.Channel, Status: irctext.ChannelPublic}
	return []irctext.ClientMessage{join}
}

func (c *JoinChannel) sameChannel(name irctext.Channel) bool {
	return c.Channel.Equal(name, irctext.CaseMappingRFC1459)
}

func (c *JoinChannel) HandleMessage(msg *irctext.Message) bool {
	if c.done {
		return false
	}
	switch r := msg.Payload.(type) {
	case *irctext.Join:
		// The server echoes our join before the NAMES bundle.
		return len(r.Channels) == 1 && c.sameChannel(r.Channels[0])
	case *irctext.RplTopic:
		if c.sameChannel(r.Channel) {
			c.joined.Topic = r.Topic
			return true
		}
	case *irctext.RplTopicWhoTime:
		if c.sameChannel(r.Channel) {
			c.joined.TopicSetBy = r.Setter
			ts := r.TimeSet
			c.joined.TopicSetAt = &ts
			return true
		}
	case *irctext.RplNamReply:
		if c.sameChannel(r.Channel) {
			c.joined.Status = r.Status
			c.joined.Users = append(c.joined.Users, r.Members...)
			return true
		}
	case *irctext.RplEndOfNames:
		if c.sameChannel(r.Channel) {
			c.done = true
			c.Result = &c.joined
			return true
		}
	case *irctext.ErrNoSuchChannel:
		return c.refused(irctext.Channel(r.Channel), r.Text)
	case *irctext.ErrTooManyChannels:
		return c.refused(irctext.Channel(r.Channel), r.Text)
	case *irctext.ErrBadChanMask:
		return c.refused(irctext.Channel(r.Channel), r.Text)
	case *irctext.ErrChannelIsFull:
		return c.refused(r.Channel, r.Text)
	case *irctext.ErrInviteOnlyChan:
		return c.refused(r.Channel, r.Text)
	case *irctext.ErrBannedFromChan:
		return c.refused(r.Channel, r.Text)
	case *irctext.ErrBadChannelKey:
		return c.refused(r.Channel, r.Text)
	case *irctext.ErrInvalidKey:
		return c.refused(r.Channel, r.Text)
	}
	return false
}

func (c *JoinChannel) refused(ch irctext.Channel, text string) bool {
	if !c.sameChannel(ch) {
		return false
	}
	c.done = true
	c.failure = fmt.Errorf("cannot join %v: %v", c.Channel, text)
	return true
}

func (c *JoinChannel) Done() bool             { return c.done }
func (c *JoinChannel) Err() error             { return c.failure }
func (c *JoinChannel) Timeout() time.Duration { return 0 }
