package ircnet

import "git.sr.ht/~edsample/ircnet/irctext"

// Event is an item on the typed stream exported to callers. Concrete types
// are ConnectedEvent, DisconnectedEvent, JoinedEvent, ParseErrorEvent and
// MessageEvent.
type Event interface{}

// ServerInfo is the RPL_MYINFO summary captured during registration.
type ServerInfo struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	UserModes      string `json:"user_modes"`
	ChannelModes   string `json:"channel_modes"`
	ParamChanModes string `json:"param_channel_modes,omitempty"`
}

// LuserStats aggregates the LUSERS numerics of the welcome burst. Counts
// the server did not report stay zero.
type LuserStats struct {
	Operators          uint64 `json:"operators,omitempty"`
	UnknownConnections uint64 `json:"unknown_connections,omitempty"`
	Channels           uint64 `json:"channels,omitempty"`
	LocalUsers         uint64 `json:"local_users,omitempty"`
	MaxLocalUsers      uint64 `json:"max_local_users,omitempty"`
	GlobalUsers        uint64 `json:"global_users,omitempty"`
	MaxGlobalUsers     uint64 `json:"max_global_users,omitempty"`
}

// ConnectedEvent is emitted once registration completes, carrying the
// accumulated welcome burst.
type ConnectedEvent struct {
	Nick     irctext.Nickname   `json:"nick"`
	Server   ServerInfo         `json:"server"`
	ISupport *irctext.ISupport  `json:"-"`
	Lusers   LuserStats         `json:"lusers"`
	Motd     string             `json:"motd,omitempty"` // newline-joined, empty if the server has none
	Mode     irctext.ModeString `json:"mode,omitempty"`
	Account  string             `json:"account,omitempty"` // SASL account, if authenticated
}

// DisconnectedEvent is emitted when the connection terminates.
type DisconnectedEvent struct {
	Err error `json:"-"`
}

// JoinedEvent is emitted when a JOIN completes with its NAMES snapshot.
type JoinedEvent struct {
	Channel    irctext.Channel       `json:"channel"`
	Topic      string                `json:"topic,omitempty"`
	TopicSetBy *irctext.Source       `json:"topic_set_by,omitempty"`
	TopicSetAt *irctext.Timestamp    `json:"topic_set_at,omitempty"`
	Status     irctext.ChannelStatus `json:"channel_status"`
	Users      []irctext.NamEntry    `json:"users"`
}

// ParseErrorEvent is emitted for each inbound line the parser rejected.
type ParseErrorEvent struct {
	Line string              `json:"line"`
	Err  *irctext.ParseError `json:"-"`
}

// MessageEvent carries an incoming typed message that was not claimed by a
// pending command.
type MessageEvent struct {
	Message *irctext.Message `json:"message"`
}
