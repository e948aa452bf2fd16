package irctext

import "strings"

// This file holds the typed variants for every supported client command.
// Each variant owns validated fields; construction and parsing are the only
// ways to obtain one, so a value always renders to a conformant line.

// Admin queries the administrative info of a server.
type Admin struct {
	Target string `json:"target,omitempty"`
}

func (*Admin) Verb() string { return "ADMIN" }
func (m *Admin) wireParams() []string {
	if m.Target == "" {
		return nil
	}
	return []string{m.Target}
}

// Authenticate carries one step of a SASL exchange: a mechanism name, a
// base64 chunk, "+" for an empty payload, or "*" to abort.
type Authenticate struct {
	Data string `json:"data"`
}

func (*Authenticate) Verb() string { return "AUTHENTICATE" }
func (m *Authenticate) wireParams() []string {
	return []string{m.Data}
}

// Away sets or, with an empty text, clears the away status.
type Away struct {
	Text string `json:"text,omitempty"`
}

func (*Away) Verb() string { return "AWAY" }
func (m *Away) wireParams() []string {
	if m.Text == "" {
		return nil
	}
	return []string{m.Text}
}

// Cap is a capability-negotiation message, in both the client-originated
// form (CAP LS 302, CAP REQ ...) and the server-originated one
// (CAP * LS ...). Client is empty in the client-originated form.
type Cap struct {
	Client  string       `json:"client,omitempty"`
	Subcmd  string       `json:"subcmd"`
	More    bool         `json:"more,omitempty"` // '*' continuation on LS/LIST
	Version string       `json:"version,omitempty"`
	Caps    []Capability `json:"caps,omitempty"`
}

func (*Cap) Verb() string { return "CAP" }
func (m *Cap) wireParams() []string {
	var params []string
	if m.Client != "" {
		params = append(params, m.Client)
	}
	params = append(params, m.Subcmd)
	if m.Version != "" {
		params = append(params, m.Version)
	}
	if m.More {
		params = append(params, "*")
	}
	if len(m.Caps) > 0 {
		caps := make([]string, len(m.Caps))
		for i, c := range m.Caps {
			caps[i] = c.String()
		}
		params = append(params, strings.Join(caps, " "))
	}
	return params
}

func isCapSubcmd(s string) bool {
	switch s {
	case "LS", "LIST", "REQ", "ACK", "NAK", "NEW", "DEL", "END":
		return true
	}
	return false
}

func decodeCap(f *fields) (ClientMessage, error) {
	first, err := f.next("subcommand")
	if err != nil {
		return nil, err
	}
	var m Cap
	sub := strings.ToUpper(first)
	if !isCapSubcmd(sub) {
		m.Client = first
		sub, err = f.next("subcommand")
		if err != nil {
			return nil, err
		}
		sub = strings.ToUpper(sub)
		if !isCapSubcmd(sub) {
			return nil, f.badField("subcommand", &ValueError{Type: "cap subcommand", Kind: ValueBadChar})
		}
	}
	m.Subcmd = sub
	if p, ok := f.opt(); ok {
		if p == "*" && (sub == "LS" || sub == "LIST") {
			m.More = true
			p, ok = f.opt()
		}
		if ok {
			if m.Client == "" && sub == "LS" && p != "" && isDigit(p[0]) {
				m.Version = p
			} else {
				caps, verr := ParseCapabilityList(p)
				if verr != nil {
					return nil, f.badField("capabilities", verr)
				}
				m.Caps = caps
			}
		}
	}
	return &m, nil
}

// Connect asks a server to connect to another server.
type Connect struct {
	Target Hostname `json:"target"`
	Port   uint64   `json:"port,omitempty"`
	Remote Hostname `json:"remote,omitempty"`
}

func (*Connect) Verb() string { return "CONNECT" }
func (m *Connect) wireParams() []string {
	params := []string{string(m.Target)}
	if m.Port != 0 {
		params = append(params, formatUint(m.Port))
		if m.Remote != "" {
			params = append(params, string(m.Remote))
		}
	}
	return params
}

// ErrorMsg is the server's terminal ERROR message.
type ErrorMsg struct {
	Reason string `json:"reason"`
}

func (*ErrorMsg) Verb() string { return "ERROR" }
func (m *ErrorMsg) wireParams() []string {
	return []string{m.Reason}
}

// Help requests help on a subject.
type Help struct {
	Subject string `json:"subject,omitempty"`
}

func (*Help) Verb() string { return "HELP" }
func (m *Help) wireParams() []string {
	if m.Subject == "" {
		return nil
	}
	return []string{m.Subject}
}

// Info queries server information.
type Info struct{}

func (*Info) Verb() string           { return "INFO" }
func (m *Info) wireParams() []string { return nil }

// Invite invites a user to a channel.
type Invite struct {
	Nick    Nickname `json:"nick"`
	Channel Channel  `json:"channel"`
}

func (*Invite) Verb() string { return "INVITE" }
func (m *Invite) wireParams() []string {
	return []string{string(m.Nick), string(m.Channel)}
}

// Join asks to join channels, or with Leave set, to part all of them
// (the "JOIN 0" form).
type Join struct {
	Channels []Channel    `json:"channels,omitempty"`
	Keys     []ChannelKey `json:"keys,omitempty"`
	Leave    bool         `json:"leave,omitempty"`
}

func (*Join) Verb() string { return "JOIN" }
func (m *Join) wireParams() []string {
	if m.Leave {
		return []string{"0"}
	}
	params := []string{joinChannels(m.Channels)}
	if len(m.Keys) > 0 {
		keys := make([]string, len(m.Keys))
		for i, k := range m.Keys {
			keys[i] = string(k)
		}
		params = append(params, strings.Join(keys, ","))
	}
	return params
}

func decodeJoin(f *fields) (ClientMessage, error) {
	if len(f.params) == 1 && f.params[0] == "0" {
		f.i = 1
		return &Join{Leave: true}, nil
	}
	chs, err := f.channels("channels")
	if err != nil {
		return nil, err
	}
	m := &Join{Channels: chs}
	if p, ok := f.opt(); ok {
		for _, tok := range strings.Split(p, ",") {
			if tok == "" {
				// Absent key for this position.
				m.Keys = append(m.Keys, "")
				continue
			}
			k, verr := ParseChannelKey(tok)
			if verr != nil {
				return nil, f.badField("keys", verr)
			}
			m.Keys = append(m.Keys, k)
		}
	}
	return m, nil
}

// Kick removes users from a channel.
type Kick struct {
	Channel Channel    `json:"channel"`
	Users   []Nickname `json:"users"`
	Comment string     `json:"comment,omitempty"`
}

func (*Kick) Verb() string { return "KICK" }
func (m *Kick) wireParams() []string {
	params := []string{string(m.Channel), joinNicknames(m.Users)}
	if m.Comment != "" {
		params = append(params, m.Comment)
	}
	return params
}

// Kill disconnects a client from the network.
type Kill struct {
	Nick    Nickname `json:"nick"`
	Comment string   `json:"comment"`
}

func (*Kill) Verb() string { return "KILL" }
func (m *Kill) wireParams() []string {
	return []string{string(m.Nick), m.Comment}
}

// Links queries the list of linked servers.
type Links struct{}

func (*Links) Verb() string           { return "LINKS" }
func (m *Links) wireParams() []string { return nil }

// List queries the channel list, optionally filtered.
type List struct {
	Channels []Channel `json:"channels,omitempty"`
	Conds    string    `json:"conds,omitempty"` // ELIST conditions, raw
}

func (*List) Verb() string { return "LIST" }
func (m *List) wireParams() []string {
	var params []string
	if len(m.Channels) > 0 {
		params = append(params, joinChannels(m.Channels))
	}
	if m.Conds != "" {
		params = append(params, m.Conds)
	}
	return params
}

func decodeList(f *fields) (ClientMessage, error) {
	var m List
	if p, ok := f.opt(); ok {
		for _, tok := range strings.Split(p, ",") {
			ch, verr := ParseChannel(tok)
			if verr != nil {
				// Not a channel list; treat the whole parameter as
				// ELIST conditions.
				m.Conds = p
				m.Channels = nil
				break
			}
			m.Channels = append(m.Channels, ch)
		}
		if len(m.Channels) > 0 {
			if p, ok := f.opt(); ok {
				m.Conds = p
			}
		}
	}
	return &m, nil
}

// Lusers queries user statistics.
type Lusers struct{}

func (*Lusers) Verb() string           { return "LUSERS" }
func (m *Lusers) wireParams() []string { return nil }

// Mode queries or changes the modes of a channel or user. A nil Modes is a
// query.
type Mode struct {
	Target string     `json:"target"`
	Modes  ModeString `json:"modes,omitempty"`
	Args   []string   `json:"args,omitempty"`
}

func (*Mode) Verb() string { return "MODE" }
func (m *Mode) wireParams() []string {
	params := []string{m.Target}
	if len(m.Modes) > 0 {
		params = append(params, m.Modes.String())
		params = append(params, m.Args...)
	}
	return params
}

func decodeMode(f *fields) (ClientMessage, error) {
	target, err := f.next("target")
	if err != nil {
		return nil, err
	}
	m := &Mode{Target: target}
	if p, ok := f.opt(); ok {
		ms, verr := ParseModeString(p)
		if verr != nil {
			return nil, f.badField("modestring", verr)
		}
		m.Modes = ms
		m.Args = f.rest()
	}
	return m, nil
}

// Motd requests the message of the day.
type Motd struct {
	Target string `json:"target,omitempty"`
}

func (*Motd) Verb() string { return "MOTD" }
func (m *Motd) wireParams() []string {
	if m.Target == "" {
		return nil
	}
	return []string{m.Target}
}

// Names queries the member list of channels.
type Names struct {
	Channels []Channel `json:"channels,omitempty"`
}

func (*Names) Verb() string { return "NAMES" }
func (m *Names) wireParams() []string {
	if len(m.Channels) == 0 {
		return nil
	}
	return []string{joinChannels(m.Channels)}
}

// Nick sets or changes the nickname.
type Nick struct {
	Nick Nickname `json:"nick"`
}

func (*Nick) Verb() string { return "NICK" }
func (m *Nick) wireParams() []string {
	return []string{string(m.Nick)}
}

// Notice sends a notice to one or more targets.
type Notice struct {
	Targets []string `json:"targets"`
	Text    string   `json:"text"`
}

func (*Notice) Verb() string { return "NOTICE" }
func (m *Notice) wireParams() []string {
	return []string{strings.Join(m.Targets, ","), m.Text}
}

// Oper authenticates as an operator.
type Oper struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (*Oper) Verb() string { return "OPER" }
func (m *Oper) wireParams() []string {
	return []string{m.Name, m.Password}
}

// Part leaves channels.
type Part struct {
	Channels []Channel `json:"channels"`
	Reason   string    `json:"reason,omitempty"`
}

func (*Part) Verb() string { return "PART" }
func (m *Part) wireParams() []string {
	params := []string{joinChannels(m.Channels)}
	if m.Reason != "" {
		params = append(params, m.Reason)
	}
	return params
}

// Pass carries the connection password.
type Pass struct {
	Password string `json:"password"`
}

func (*Pass) Verb() string { return "PASS" }
func (m *Pass) wireParams() []string {
	return []string{m.Password}
}

// Ping checks liveness; the token is echoed back in PONG.
type Ping struct {
	Token string `json:"token"`
}

func (*Ping) Verb() string { return "PING" }
func (m *Ping) wireParams() []string {
	return []string{m.Token}
}

// Pong answers a PING with its token.
type Pong struct {
	Server string `json:"server,omitempty"`
	Token  string `json:"token"`
}

func (*Pong) Verb() string { return "PONG" }
func (m *Pong) wireParams() []string {
	if m.Server != "" {
		return []string{m.Server, m.Token}
	}
	return []string{m.Token}
}

func decodePong(f *fields) (ClientMessage, error) {
	first, err := f.next("token")
	if err != nil {
		return nil, err
	}
	if second, ok := f.opt(); ok {
		return &Pong{Server: first, Token: second}, nil
	}
	return &Pong{Token: first}, nil
}

// Privmsg sends a message to one or more targets.
type Privmsg struct {
	Targets []string `json:"targets"`
	Text    string   `json:"text"`
}

func (*Privmsg) Verb() string { return "PRIVMSG" }
func (m *Privmsg) wireParams() []string {
	return []string{strings.Join(m.Targets, ","), m.Text}
}

// Quit terminates the connection.
type Quit struct {
	Reason string `json:"reason,omitempty"`
}

func (*Quit) Verb() string { return "QUIT" }
func (m *Quit) wireParams() []string {
	if m.Reason == "" {
		return nil
	}
	return []string{m.Reason}
}

// Rehash asks the server to reload its configuration.
type Rehash struct{}

func (*Rehash) Verb() string           { return "REHASH" }
func (m *Rehash) wireParams() []string { return nil }

// Restart asks the server to restart.
type Restart struct{}

func (*Restart) Verb() string           { return "RESTART" }
func (m *Restart) wireParams() []string { return nil }

// Squit disconnects a server link.
type Squit struct {
	Server  Hostname `json:"server"`
	Comment string   `json:"comment"`
}

func (*Squit) Verb() string { return "SQUIT" }
func (m *Squit) wireParams() []string {
	return []string{string(m.Server), m.Comment}
}

// Stats queries server statistics.
type Stats struct {
	Query  string `json:"query"`
	Server string `json:"server,omitempty"`
}

func (*Stats) Verb() string { return "STATS" }
func (m *Stats) wireParams() []string {
	if m.Server != "" {
		return []string{m.Query, m.Server}
	}
	return []string{m.Query}
}

// Time queries the server's local time.
type Time struct {
	Server string `json:"server,omitempty"`
}

func (*Time) Verb() string { return "TIME" }
func (m *Time) wireParams() []string {
	if m.Server == "" {
		return nil
	}
	return []string{m.Server}
}

// Topic queries or changes a channel topic. A nil Topic is a query; an
// empty non-nil Topic clears it.
type Topic struct {
	Channel Channel `json:"channel"`
	Topic   *string `json:"topic,omitempty"`
}

func (*Topic) Verb() string { return "TOPIC" }
func (m *Topic) wireParams() []string {
	if m.Topic == nil {
		return []string{string(m.Channel)}
	}
	return []string{string(m.Channel), *m.Topic}
}

func decodeTopic(f *fields) (ClientMessage, error) {
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	m := &Topic{Channel: ch}
	if p, ok := f.opt(); ok {
		m.Topic = &p
	}
	return m, nil
}

// User registers the username and realname.
type User struct {
	Username Username `json:"username"`
	Realname string   `json:"realname"`
}

func (*User) Verb() string { return "USER" }
func (m *User) wireParams() []string {
	return []string{string(m.Username), "0", "*", m.Realname}
}

func decodeUser(f *fields) (ClientMessage, error) {
	u, err := f.next("username")
	if err != nil {
		return nil, err
	}
	username, verr := ParseUsername(u)
	if verr != nil {
		return nil, f.badField("username", verr)
	}
	if _, err := f.next("mode"); err != nil {
		return nil, err
	}
	if _, err := f.next("unused"); err != nil {
		return nil, err
	}
	realname, err := f.next("realname")
	if err != nil {
		return nil, err
	}
	return &User{Username: username, Realname: realname}, nil
}

// Userhost queries host info for up to five nicknames.
type Userhost struct {
	Nicks []Nickname `json:"nicks"`
}

func (*Userhost) Verb() string { return "USERHOST" }
func (m *Userhost) wireParams() []string {
	params := make([]string, len(m.Nicks))
	for i, n := range m.Nicks {
		params[i] = string(n)
	}
	return params
}

func decodeUserhost(f *fields) (ClientMessage, error) {
	var m Userhost
	for {
		p, ok := f.opt()
		if !ok {
			break
		}
		n, verr := ParseNickname(p)
		if verr != nil {
			return nil, f.badField("nick", verr)
		}
		m.Nicks = append(m.Nicks, n)
	}
	if len(m.Nicks) == 0 {
		return nil, &ParseError{Kind: ErrBadParamCount, Command: f.cmd}
	}
	return &m, nil
}

// Version queries the server version.
type Version struct {
	Target string `json:"target,omitempty"`
}

func (*Version) Verb() string { return "VERSION" }
func (m *Version) wireParams() []string {
	if m.Target == "" {
		return nil
	}
	return []string{m.Target}
}

// Wallops broadcasts to users with the wallops mode.
type Wallops struct {
	Text string `json:"text"`
}

func (*Wallops) Verb() string { return "WALLOPS" }
func (m *Wallops) wireParams() []string {
	return []string{m.Text}
}

// Who queries users matching a mask.
type Who struct {
	Mask string `json:"mask"`
}

func (*Who) Verb() string { return "WHO" }
func (m *Who) wireParams() []string {
	return []string{m.Mask}
}

// Whois queries info about a user, optionally routed to a specific server.
type Whois struct {
	Target string `json:"target,omitempty"`
	Nick   string `json:"nick"`
}

func (*Whois) Verb() string { return "WHOIS" }
func (m *Whois) wireParams() []string {
	if m.Target != "" {
		return []string{m.Target, m.Nick}
	}
	return []string{m.Nick}
}

func decodeWhois(f *fields) (ClientMessage, error) {
	first, err := f.next("nick")
	if err != nil {
		return nil, err
	}
	if second, ok := f.opt(); ok {
		return &Whois{Target: first, Nick: second}, nil
	}
	return &Whois{Nick: first}, nil
}

// Whowas queries history for a nickname.
type Whowas struct {
	Nick  Nickname `json:"nick"`
	Count uint64   `json:"count,omitempty"`
}

func (*Whowas) Verb() string { return "WHOWAS" }
func (m *Whowas) wireParams() []string {
	if m.Count != 0 {
		return []string{string(m.Nick), formatUint(m.Count)}
	}
	return []string{string(m.Nick)}
}

// Tagmsg is a tag-only message; tags themselves are discarded at the lexer,
// so only the targets survive.
type Tagmsg struct {
	Targets []string `json:"targets"`
}

func (*Tagmsg) Verb() string { return "TAGMSG" }
func (m *Tagmsg) wireParams() []string {
	return []string{strings.Join(m.Targets, ",")}
}

func splitTargets(s string) []string {
	return strings.Split(s, ",")
}

var clientDecoders = map[string]func(f *fields) (ClientMessage, error){
	"ADMIN": func(f *fields) (ClientMessage, error) {
		m := &Admin{}
		m.Target, _ = f.opt()
		return m, nil
	},
	"AUTHENTICATE": func(f *fields) (ClientMessage, error) {
		data, err := f.next("data")
		if err != nil {
			return nil, err
		}
		return &Authenticate{Data: data}, nil
	},
	"AWAY": func(f *fields) (ClientMessage, error) {
		m := &Away{}
		m.Text, _ = f.opt()
		return m, nil
	},
	"CAP": decodeCap,
	"CONNECT": func(f *fields) (ClientMessage, error) {
		t, err := f.next("target")
		if err != nil {
			return nil, err
		}
		target, verr := ParseHostname(t)
		if verr != nil {
			return nil, f.badField("target", verr)
		}
		m := &Connect{Target: target}
		if _, ok := f.opt(); ok {
			f.i--
			port, err := f.uint("port")
			if err != nil {
				return nil, err
			}
			m.Port = port
			if r, ok := f.opt(); ok {
				remote, verr := ParseHostname(r)
				if verr != nil {
					return nil, f.badField("remote", verr)
				}
				m.Remote = remote
			}
		}
		return m, nil
	},
	"ERROR": func(f *fields) (ClientMessage, error) {
		reason, err := f.next("reason")
		if err != nil {
			return nil, err
		}
		return &ErrorMsg{Reason: reason}, nil
	},
	"HELP": func(f *fields) (ClientMessage, error) {
		m := &Help{}
		m.Subject, _ = f.opt()
		return m, nil
	},
	"INFO": func(f *fields) (ClientMessage, error) { return &Info{}, nil },
	"INVITE": func(f *fields) (ClientMessage, error) {
		nick, err := f.nickname("nick")
		if err != nil {
			return nil, err
		}
		ch, err := f.channel("channel")
		if err != nil {
			return nil, err
		}
		return &Invite{Nick: nick, Channel: ch}, nil
	},
	"JOIN": decodeJoin,
	"KICK": func(f *fields) (ClientMessage, error) {
		ch, err := f.channel("channel")
		if err != nil {
			return nil, err
		}
		users, err := f.next("users")
		if err != nil {
			return nil, err
		}
		m := &Kick{Channel: ch}
		for _, tok := range strings.Split(users, ",") {
			n, verr := ParseNickname(tok)
			if verr != nil {
				return nil, f.badField("users", verr)
			}
			m.Users = append(m.Users, n)
		}
		m.Comment, _ = f.opt()
		return m, nil
	},
	"KILL": func(f *fields) (ClientMessage, error) {
		nick, err := f.nickname("nick")
		if err != nil {
			return nil, err
		}
		comment, err := f.next("comment")
		if err != nil {
			return nil, err
		}
		return &Kill{Nick: nick, Comment: comment}, nil
	},
	"LINKS":  func(f *fields) (ClientMessage, error) { return &Links{}, nil },
	"LIST":   decodeList,
	"LUSERS": func(f *fields) (ClientMessage, error) { return &Lusers{}, nil },
	"MODE":   decodeMode,
	"MOTD": func(f *fields) (ClientMessage, error) {
		m := &Motd{}
		m.Target, _ = f.opt()
		return m, nil
	},
	"NAMES": func(f *fields) (ClientMessage, error) {
		m := &Names{}
		if _, ok := f.opt(); ok {
			f.i--
			chs, err := f.channels("channels")
			if err != nil {
				return nil, err
			}
			m.Channels = chs
		}
		return m, nil
	},
	"NICK": func(f *fields) (ClientMessage, error) {
		nick, err := f.nickname("nick")
		if err != nil {
			return nil, err
		}
		return &Nick{Nick: nick}, nil
	},
	"NOTICE": func(f *fields) (ClientMessage, error) {
		targets, err := f.next("targets")
		if err != nil {
			return nil, err
		}
		text, err := f.next("text")
		if err != nil {
			return nil, err
		}
		return &Notice{Targets: splitTargets(targets), Text: text}, nil
	},
	"OPER": func(f *fields) (ClientMessage, error) {
		name, err := f.next("name")
		if err != nil {
			return nil, err
		}
		password, err := f.next("password")
		if err != nil {
			return nil, err
		}
		return &Oper{Name: name, Password: password}, nil
	},
	"PART": func(f *fields) (ClientMessage, error) {
		chs, err := f.channels("channels")
		if err != nil {
			return nil, err
		}
		m := &Part{Channels: chs}
		m.Reason, _ = f.opt()
		return m, nil
	},
	"PASS": func(f *fields) (ClientMessage, error) {
		password, err := f.next("password")
		if err != nil {
			return nil, err
		}
		return &Pass{Password: password}, nil
	},
	"PING": func(f *fields) (ClientMessage, error) {
		token, err := f.next("token")
		if err != nil {
			return nil, err
		}
		return &Ping{Token: token}, nil
	},
	"PONG": decodePong,
	"PRIVMSG": func(f *fields) (ClientMessage, error) {
		targets, err := f.next("targets")
		if err != nil {
			return nil, err
		}
		text, err := f.next("text")
		if err != nil {
			return nil, err
		}
		return &Privmsg{Targets: splitTargets(targets), Text: text}, nil
	},
	"QUIT": func(f *fields) (ClientMessage, error) {
		m := &Quit{}
		m.Reason, _ = f.opt()
		return m, nil
	},
	"REHASH":  func(f *fields) (ClientMessage, error) { return &Rehash{}, nil },
	"RESTART": func(f *fields) (ClientMessage, error) { return &Restart{}, nil },
	"SQUIT": func(f *fields) (ClientMessage, error) {
		s, err := f.next("server")
		if err != nil {
			return nil, err
		}
		server, verr := ParseHostname(s)
		if verr != nil {
			return nil, f.badField("server", verr)
		}
		comment, err := f.next("comment")
		if err != nil {
			return nil, err
		}
		return &Squit{Server: server, Comment: comment}, nil
	},
	"STATS": func(f *fields) (ClientMessage, error) {
		query, err := f.next("query")
		if err != nil {
			return nil, err
		}
		m := &Stats{Query: query}
		m.Server, _ = f.opt()
		return m, nil
	},
	"TIME": func(f *fields) (ClientMessage, error) {
		m := &Time{}
		m.Server, _ = f.opt()
		return m, nil
	},
	"TOPIC":    decodeTopic,
	"USER":     decodeUser,
	"USERHOST": decodeUserhost,
	"VERSION": func(f *fields) (ClientMessage, error) {
		m := &Version{}
		m.Target, _ = f.opt()
		return m, nil
	},
	"WALLOPS": func(f *fields) (ClientMessage, error) {
		text, err := f.next("text")
		if err != nil {
			return nil, err
		}
		return &Wallops{Text: text}, nil
	},
	"WHO": func(f *fields) (ClientMessage, error) {
		mask, err := f.next("mask")
		if err != nil {
			return nil, err
		}
		return &Who{Mask: mask}, nil
	},
	"WHOIS": decodeWhois,
	"WHOWAS": func(f *fields) (ClientMessage, error) {
		nick, err := f.nickname("nick")
		if err != nil {
			return nil, err
		}
		m := &Whowas{Nick: nick}
		if _, ok := f.opt(); ok {
			f.i--
			count, err := f.uint("count")
			if err != nil {
				return nil, err
			}
			m.Count = count
		}
		return m, nil
	},
	"TAGMSG": func(f *fields) (ClientMessage, error) {
		targets, err := f.next("targets")
		if err != nil {
			return nil, err
		}
		return &Tagmsg{Targets: splitTargets(targets)}, nil
	},
}
