// Package config loads client connection profiles for the cmd/ tools. The
// runtime itself only consumes the resulting struct.
package config

import (
	"fmt"
	"strconv"

	"git.sr.ht/~emersion/go-scfg"

	"git.sr.ht/~edsample/ircnet"
	"git.sr.ht/~edsample/ircnet/irctext"
)

// Profile is a parsed connection profile.
type Profile struct {
	Client ircnet.Config

	// Channels are the channels a tool should operate on, with optional
	// keys.
	Channels []irctext.Channel
	Keys     []irctext.ChannelKey
}

// Load reads a profile from an scfg file:
//
//	host irc.libera.chat
//	nickname edsample
//	password hunter2
//	channel "#rust"
//	channel "#python" secretkey
func Load(path string) (*Profile, error) {
	cfg, err := scfg.Load(path)
	if err != nil {
		return nil, err
	}
	return parse(cfg)
}

func parse(cfg scfg.Block) (*Profile, error) {
	var p Profile
	for _, d := range cfg {
		switch d.Name {
		case "host":
			if err := d.ParseParams(&p.Client.Host); err != nil {
				return nil, err
			}
		case "port":
			var port string
			if err := d.ParseParams(&port); err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(port)
			if err != nil {
				return nil, fmt.Errorf("directive %q: invalid port: %v", d.Name, err)
			}
			p.Client.Port = n
		case "tls":
			b, err := parseBool(d)
			if err != nil {
				return nil, err
			}
			p.Client.TLS = &b
		case "websocket-url":
			if err := d.ParseParams(&p.Client.WebSocketURL); err != nil {
				return nil, err
			}
		case "password":
			if err := d.ParseParams(&p.Client.Password); err != nil {
				return nil, err
			}
		case "nickname":
			if err := d.ParseParams(&p.Client.Nickname); err != nil {
				return nil, err
			}
		case "username":
			if err := d.ParseParams(&p.Client.Username); err != nil {
				return nil, err
			}
		case "realname":
			if err := d.ParseParams(&p.Client.Realname); err != nil {
				return nil, err
			}
		case "sasl":
			b, err := parseBool(d)
			if err != nil {
				return nil, err
			}
			p.Client.SASL = &b
		case "sasl-mechanisms":
			p.Client.SASLMechanisms = d.Params
		case "channel":
			var name string
			if err := d.ParseParams(&name); err != nil {
				return nil, err
			}
			ch, err := irctext.ParseChannel(name)
			if err != nil {
				return nil, fmt.Errorf("directive %q: %v", d.Name, err)
			}
			var key irctext.ChannelKey
			if len(d.Params) > 1 {
				key, err = irctext.ParseChannelKey(d.Params[1])
				if err != nil {
					return nil, fmt.Errorf("directive %q: %v", d.Name, err)
				}
			}
			p.Channels = append(p.Channels, ch)
			p.Keys = append(p.Keys, key)
		default:
			return nil, fmt.Errorf("unknown directive %q", d.Name)
		}
	}
	if p.Client.Host == "" && p.Client.WebSocketURL == "" {
		return nil, fmt.Errorf("missing \"host\" directive")
	}
	if p.Client.Nickname == "" {
		return nil, fmt.Errorf("missing \"nickname\" directive")
	}
	return &p, nil
}

func parseBool(d *scfg.Directive) (bool, error) {
	var s string
	if err := d.ParseParams(&s); err != nil {
		return false, err
	}
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("directive %q: expected true or false, got %q", d.Name, s)
	}
}
