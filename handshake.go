package ircnet

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/emersion/go-sasl"

	"git.sr.ht/~edsample/ircnet/irctext"
)

// registrationTimeout bounds the whole handshake.
const registrationTimeout = 60 * time.Second

// modeGrace is how long to wait for the optional MODE or RPL_UMODEIS
// message that some servers send after the MOTD.
const modeGrace = time.Second

// requestedCaps are requested whenever the server advertises them.
var requestedCaps = []string{
	"account-tag",
	"away-notify",
	"cap-notify",
	"echo-message",
	"invite-notify",
	"pre-away",
	"server-time",
}

// RegistrationError reports a failed handshake. When NickInUse is set the
// error is recoverable: the caller may retry with a different nickname; no
// alternate-nick strategy is built in.
type RegistrationError struct {
	Reason    string
	NickInUse bool
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration error: %v", e.Reason)
}

type saslState struct {
	mechs     []string
	idx       int
	client    sasl.Client
	started   bool
	active    bool
	required  bool
	challenge []byte // accumulates 400-byte continuation chunks
}

// handshake accumulates the registration exchange into a ConnectedEvent.
type handshake struct {
	c   *Client
	out ConnectedEvent

	sasl     saslState
	lsDone   bool
	capsEnd  bool
	motd     []string
	noMotd   bool
	motdDone bool
	finished bool
}

func (c *Client) runHandshake() (*ConnectedEvent, error) {
	hs := &handshake{c: c}
	hs.out.ISupport = c.isupport

	c.state = StateRegistering
	c.send(&irctext.Cap{Subcmd: "LS", Version: "302"})
	if c.config.Password != "" {
		c.send(&irctext.Pass{Password: c.config.Password})
	}
	c.send(&irctext.Nick{Nick: c.nick})
	c.send(&irctext.User{Username: irctext.Username(c.username), Realname: c.realname})

	deadline := time.Now().Add(registrationTimeout)
	c.conn.SetReadDeadline(deadline)
	defer c.conn.SetReadDeadline(time.Time{})

	for !hs.finished {
		if hs.motdDone {
			// Grace window for the optional user MODE message.
			c.conn.SetReadDeadline(time.Now().Add(modeGrace))
		}
		msg, err := c.conn.ReadMessage()
		if err != nil {
			var ple *ParseLineError
			if errors.As(err, &ple) && ple.Err.Kind != irctext.ErrLineTooLong {
				c.logger.Printf("ignoring unparseable line during registration: %v", ple)
				continue
			}
			var nerr net.Error
			if hs.motdDone && errors.As(err, &nerr) && nerr.Timeout() {
				break // no MODE is coming
			}
			return nil, fmt.Errorf("failed to read message: %w", err)
		}
		if err := hs.handle(msg); err != nil {
			return nil, err
		}
	}

	c.state = StateConnected
	c.out = &hs.out
	return &hs.out, nil
}

func (hs *handshake) handle(msg *irctext.Message) error {
	c := hs.c
	switch r := msg.Payload.(type) {
	case *irctext.Ping:
		c.send(&irctext.Pong{Token: r.Token})
	case *irctext.Cap:
		return hs.handleCap(r)
	case *irctext.Authenticate:
		return hs.handleAuthenticate(r)
	case *irctext.RplLoggedIn:
		hs.out.Account = r.Account
		c.logger.Printf("logged in with account %q", r.Account)
	case *irctext.RplLoggedOut:
		hs.out.Account = ""
	case *irctext.RplSaslSuccess:
		hs.sasl.active = false
		hs.capEnd()
	case *irctext.ErrSaslFail, *irctext.ErrSaslTooLong, *irctext.ErrSaslAborted,
		*irctext.ErrSaslAlready, *irctext.ErrNickLocked:
		return hs.saslFailed(msg)
	case *irctext.RplSaslMechs:
		c.logger.Printf("server offers SASL mechanisms: %v", r.Mechs)
	case *irctext.ErrInvalidCapCmd:
		c.logger.Printf("server rejected CAP subcommand %q: %v", r.Subcmd, r.Text)
	case *irctext.RplWelcome:
		nick, err := irctext.ParseNickname(r.Client)
		if err != nil {
			return &RegistrationError{Reason: fmt.Sprintf("RPL_WELCOME addressed to %q", r.Client)}
		}
		c.nick = nick
		hs.out.Nick = nick
		c.state = StateAwaitingWelcome
	case *irctext.RplYourHost, *irctext.RplCreated:
		// Free-form text; nothing to capture.
	case *irctext.RplMyInfo:
		hs.out.Server = ServerInfo{
			Name:           r.ServerName,
			Version:        r.Version,
			UserModes:      r.UserModes,
			ChannelModes:   r.ChannelModes,
			ParamChanModes: r.ParamChanModes,
		}
	case *irctext.RplISupport:
		c.isupport.Apply(r.Tokens)
	case *irctext.RplLuserOp:
		hs.out.Lusers.Operators = r.Ops
	case *irctext.RplLuserUnknown:
		hs.out.Lusers.UnknownConnections = r.Connections
	case *irctext.RplLuserChannels:
		hs.out.Lusers.Channels = r.Channels
	case *irctext.RplLocalUsers:
		hs.out.Lusers.LocalUsers = r.Users
		hs.out.Lusers.MaxLocalUsers = r.Max
	case *irctext.RplGlobalUsers:
		hs.out.Lusers.GlobalUsers = r.Users
		hs.out.Lusers.MaxGlobalUsers = r.Max
	case *irctext.RplLuserClient, *irctext.RplLuserMe, *irctext.RplStatsConn:
		// Counts embedded in free-form text only.
	case *irctext.RplMotdStart, *irctext.RplMotd:
		hs.motd = append(hs.motd, motdText(msg.Payload))
	case *irctext.RplEndOfMotd:
		hs.motd = append(hs.motd, motdText(msg.Payload))
		hs.endOfMotd()
	case *irctext.ErrNoMotd:
		hs.noMotd = true
		hs.endOfMotd()
	case *irctext.RplUModeIs:
		hs.out.Mode = r.Modes
		hs.finished = true
	case *irctext.Mode:
		if len(r.Modes) > 0 {
			hs.out.Mode = r.Modes
		}
		hs.finished = true
	case *irctext.ErrNicknameInUse:
		return &RegistrationError{Reason: fmt.Sprintf("nickname %q is already in use", r.Nick), NickInUse: true}
	case *irctext.ErrNickCollision:
		return &RegistrationError{Reason: fmt.Sprintf("nickname %q collided", r.Nick), NickInUse: true}
	case *irctext.ErrErroneousNickname:
		return &RegistrationError{Reason: fmt.Sprintf("server rejected nickname %q: %v", r.Nick, r.Text)}
	case *irctext.ErrPasswdMismatch:
		return &RegistrationError{Reason: fmt.Sprintf("password rejected: %v", r.Text)}
	case *irctext.ErrYoureBannedCreep:
		return &RegistrationError{Reason: fmt.Sprintf("banned: %v", r.Text)}
	case *irctext.ErrorMsg:
		return &RegistrationError{Reason: fmt.Sprintf("server sent ERROR: %v", r.Reason)}
	case *irctext.Notice, *irctext.Privmsg:
		// Pre-registration server notices; nothing to do.
	default:
		c.logger.Printf("unexpected message during registration: %v", msg)
	}
	return nil
}

func motdText(p irctext.Payload) string {
	switch r := p.(type) {
	case *irctext.RplMotdStart:
		return r.Text
	case *irctext.RplMotd:
		return r.Text
	case *irctext.RplEndOfMotd:
		return r.Text
	}
	return ""
}

func (hs *handshake) endOfMotd() {
	if !hs.noMotd {
		hs.out.Motd = strings.Join(hs.motd, "\n")
	}
	hs.motdDone = true
}

func (hs *handshake) handleCap(r *irctext.Cap) error {
	c := hs.c
	switch r.Subcmd {
	case "LS":
		for _, capab := range r.Caps {
			c.availableCaps[capab.Name] = capab.Value
		}
		if r.More {
			return nil // wait for the rest of the advertisement
		}
		hs.lsDone = true
		c.state = StateCapabilityNegotiation
		var reqs []string
		for _, name := range requestedCaps {
			if _, ok := c.availableCaps[name]; ok {
				reqs = append(reqs, name)
			}
		}
		if hs.wantSASL() {
			if value, ok := c.availableCaps["sasl"]; ok {
				hs.sasl.mechs = selectMechanisms(c.saslMechanisms(), value)
				if len(hs.sasl.mechs) > 0 {
					reqs = append(reqs, "sasl")
				}
			}
			if len(hs.sasl.mechs) == 0 && hs.sasl.required {
				return &RegistrationError{Reason: "server does not support any configured SASL mechanism"}
			}
		}
		if len(reqs) == 0 {
			hs.capEnd()
			return nil
		}
		caps := make([]irctext.Capability, len(reqs))
		for i, name := range reqs {
			caps[i] = irctext.Capability{Name: name}
		}
		c.send(&irctext.Cap{Subcmd: "REQ", Caps: caps})
	case "ACK":
		sasl := false
		for _, capab := range r.Caps {
			c.enabledCaps[strings.ToLower(capab.Name)] = struct{}{}
			if strings.EqualFold(capab.Name, "sasl") {
				sasl = true
			}
		}
		if sasl && len(hs.sasl.mechs) > 0 {
			return hs.startSASL()
		}
		if !hs.sasl.active {
			hs.capEnd()
		}
	case "NAK":
		for _, capab := range r.Caps {
			if strings.EqualFold(capab.Name, "sasl") && hs.sasl.required {
				return &RegistrationError{Reason: "server refused the sasl capability"}
			}
		}
		if !hs.sasl.active {
			hs.capEnd()
		}
	case "NEW", "DEL":
		// Rare before CAP END; apply to the map either way.
		for _, capab := range r.Caps {
			if r.Subcmd == "NEW" {
				c.availableCaps[capab.Name] = capab.Value
			} else {
				delete(c.availableCaps, capab.Name)
			}
		}
	default:
		c.logger.Printf("unhandled CAP subcommand during registration: %v", r.Subcmd)
	}
	return nil
}

func (hs *handshake) wantSASL() bool {
	c := hs.c
	if c.config.Password == "" {
		return false
	}
	if c.config.SASL == nil {
		return true // try mode
	}
	hs.sasl.required = *c.config.SASL
	return *c.config.SASL
}

func (hs *handshake) startSASL() error {
	mech := hs.sasl.mechs[hs.sasl.idx]
	client, err := newSASLClient(mech, string(hs.c.nick), hs.c.config.Password)
	if err != nil {
		return &RegistrationError{Reason: err.Error()}
	}
	hs.sasl.client = client
	hs.sasl.started = false
	hs.sasl.active = true
	hs.sasl.challenge = nil
	hs.c.state = StateSaslInProgress
	hs.c.send(&irctext.Authenticate{Data: mech})
	return nil
}

func (hs *handshake) handleAuthenticate(r *irctext.Authenticate) error {
	c := hs.c
	if !hs.sasl.active || hs.sasl.client == nil {
		c.logger.Printf("ignoring unexpected AUTHENTICATE message")
		return nil
	}

	var challenge []byte
	switch r.Data {
	case "+":
		challenge = hs.sasl.challenge
		hs.sasl.challenge = nil
	default:
		raw, err := base64.StdEncoding.DecodeString(r.Data)
		if err != nil {
			c.send(&irctext.Authenticate{Data: "*"})
			return &RegistrationError{Reason: fmt.Sprintf("bad SASL challenge: %v", err)}
		}
		if len(r.Data) == maxSASLChunk {
			// Continuation: buffer until the final chunk arrives.
			hs.sasl.challenge = append(hs.sasl.challenge, raw...)
			return nil
		}
		challenge = append(hs.sasl.challenge, raw...)
		hs.sasl.challenge = nil
	}

	var resp []byte
	var err error
	if !hs.sasl.started {
		_, resp, err = hs.sasl.client.Start()
		hs.sasl.started = true
	} else {
		resp, err = hs.sasl.client.Next(challenge)
	}
	if err != nil {
		c.send(&irctext.Authenticate{Data: "*"})
		c.logger.Printf("SASL mechanism error: %v", err)
		return nil // wait for the server's 904
	}

	encoded := base64.StdEncoding.EncodeToString(resp)
	if encoded == "" {
		c.send(&irctext.Authenticate{Data: "+"})
		return nil
	}
	for len(encoded) > 0 {
		chunk := encoded
		if len(chunk) > maxSASLChunk {
			chunk = chunk[:maxSASLChunk]
		}
		encoded = encoded[len(chunk):]
		c.send(&irctext.Authenticate{Data: chunk})
		if len(chunk) == maxSASLChunk && encoded == "" {
			c.send(&irctext.Authenticate{Data: "+"})
		}
	}
	return nil
}

func (hs *handshake) saslFailed(msg *irctext.Message) error {
	c := hs.c
	c.logger.Printf("SASL authentication failed: %v", msg)
	hs.sasl.idx++
	if hs.sasl.idx < len(hs.sasl.mechs) {
		return hs.startSASL()
	}
	hs.sasl.active = false
	if hs.sasl.required {
		return &RegistrationError{Reason: "all SASL mechanisms failed"}
	}
	hs.capEnd()
	return nil
}

// capEnd closes capability negotiation and moves on to the welcome burst.
func (hs *handshake) capEnd() {
	if hs.capsEnd {
		return
	}
	hs.capsEnd = true
	hs.c.send(&irctext.Cap{Subcmd: "END"})
	hs.c.state = StateAwaitingWelcome
}
