// Package irctext models the IRC wire protocol as typed values: every
// supported client command and numeric reply is a distinct variant with
// validated fields. Ill-formed lines are rejected at parse time with a
// precise reason, and values always render to conformant wire text, so raw
// string handling stays at the edges.
package irctext

import (
	"fmt"
	"strconv"
	"strings"
)

// Payload is the typed body of a message: a client command or a numeric
// reply.
type Payload interface {
	wireParams() []string
}

// ClientMessage is implemented by every typed client command.
type ClientMessage interface {
	Payload
	Verb() string
}

// Reply is implemented by every typed numeric reply.
type Reply interface {
	Payload
	Code() int
}

// Message is a parsed IRC message: an optional source prefix and a typed
// payload.
type Message struct {
	Source  *Source `json:"source,omitempty"`
	Payload Payload `json:"payload"`
}

// ParseMessage parses one wire line, stripped of CRLF, into a typed
// message.
func ParseMessage(line string) (*Message, error) {
	raw, err := ParseRaw(line)
	if err != nil {
		return nil, err
	}
	return FromRaw(raw)
}

// FromRaw types a lexed message. Unknown numerics decode to ReplyUnknown;
// unknown command words are an error.
func FromRaw(raw *RawMessage) (*Message, error) {
	msg := &Message{Source: raw.Source}
	if code, ok := raw.Numeric(); ok {
		decode, ok := replyDecoders[code]
		if !ok {
			msg.Payload = &ReplyUnknown{UnknownCode: code, Params: raw.Params}
			return msg, nil
		}
		f := &fields{cmd: raw.Command, params: raw.Params}
		rpl, err := decode(f)
		if err != nil {
			return nil, err
		}
		msg.Payload = rpl
		return msg, nil
	}

	decode, ok := clientDecoders[raw.Command]
	if !ok {
		return nil, &ParseError{Kind: ErrUnknownCommand, Command: raw.Command}
	}
	f := &fields{cmd: raw.Command, params: raw.Params}
	cm, err := decode(f)
	if err != nil {
		return nil, err
	}
	msg.Payload = cm
	return msg, nil
}

// Raw lowers the message back to its wire parts.
func (m *Message) Raw() *RawMessage {
	var cmd string
	switch p := m.Payload.(type) {
	case ClientMessage:
		cmd = p.Verb()
	case Reply:
		cmd = fmt.Sprintf("%03d", p.Code())
	}
	raw := &RawMessage{
		Source:  m.Source,
		Command: cmd,
		Params:  m.Payload.wireParams(),
	}
	switch m.Payload.(type) {
	case *Ping, *Pong:
		raw.ForceTrailing = true
	}
	return raw
}

// String renders the wire form without the CRLF terminator.
func (m *Message) String() string {
	return m.Raw().String()
}

// ClientMsg wraps a command payload into a sourceless message.
func ClientMsg(cm ClientMessage) *Message {
	return &Message{Payload: cm}
}

// fields iterates over a raw parameter list during decoding. Parameters
// beyond those a numeric reply consumes are ignored.
type fields struct {
	cmd    string
	params []string
	i      int
}

func (f *fields) badField(name string, reason error) error {
	return &ParseError{Kind: ErrBadField, Command: f.cmd, Field: name, Reason: reason}
}

func (f *fields) next(name string) (string, error) {
	if f.i >= len(f.params) {
		return "", &ParseError{Kind: ErrBadParamCount, Command: f.cmd}
	}
	p := f.params[f.i]
	f.i++
	return p, nil
}

// opt returns the next parameter if present.
func (f *fields) opt() (string, bool) {
	if f.i >= len(f.params) {
		return "", false
	}
	p := f.params[f.i]
	f.i++
	return p, true
}

// rest consumes all remaining parameters.
func (f *fields) rest() []string {
	r := f.params[f.i:]
	f.i = len(f.params)
	if len(r) == 0 {
		return nil
	}
	out := make([]string, len(r))
	copy(out, r)
	return out
}

func (f *fields) channel(name string) (Channel, error) {
	s, err := f.next(name)
	if err != nil {
		return "", err
	}
	ch, verr := ParseChannel(s)
	if verr != nil {
		return "", f.badField(name, verr)
	}
	return ch, nil
}

func (f *fields) channels(name string) ([]Channel, error) {
	s, err := f.next(name)
	if err != nil {
		return nil, err
	}
	var chs []Channel
	for _, tok := range strings.Split(s, ",") {
		ch, verr := ParseChannel(tok)
		if verr != nil {
			return nil, f.badField(name, verr)
		}
		chs = append(chs, ch)
	}
	return chs, nil
}

func (f *fields) nickname(name string) (Nickname, error) {
	s, err := f.next(name)
	if err != nil {
		return "", err
	}
	n, verr := ParseNickname(s)
	if verr != nil {
		return "", f.badField(name, verr)
	}
	return n, nil
}

func (f *fields) timestamp(name string) (Timestamp, error) {
	s, err := f.next(name)
	if err != nil {
		return Timestamp{}, err
	}
	ts, verr := ParseTimestamp(s)
	if verr != nil {
		return Timestamp{}, f.badField(name, verr)
	}
	return ts, nil
}

func (f *fields) uint(name string) (uint64, error) {
	s, err := f.next(name)
	if err != nil {
		return 0, err
	}
	n, perr := strconv.ParseUint(s, 10, 64)
	if perr != nil {
		return 0, f.badField(name, perr)
	}
	return n, nil
}

// joinChannels renders a comma-separated channel list.
func joinChannels(chs []Channel) string {
	parts := make([]string, len(chs))
	for i, ch := range chs {
		parts[i] = string(ch)
	}
	return strings.Join(parts, ",")
}

func joinNicknames(ns []Nickname) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = string(n)
	}
	return strings.Join(parts, ",")
}

func formatUint(n uint64) string {
	return strconv.FormatUint(n, 10)
}

func parseUintString(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
