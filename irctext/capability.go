package irctext

import "strings"

// Capability is a server-advertised capability name with an optional value,
// as carried by CAP LS and CAP NEW.
type Capability struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// ParseCapability parses a single "name[=value]" token. A leading '-' (as
// sent in CAP ACK for removals) is kept as part of the name. Dots are
// permitted in names: vendored capabilities such as soju.im/bouncer-networks
// use them.
func ParseCapability(s string) (Capability, error) {
	if s == "" {
		return Capability{}, &ValueError{Type: "capability", Kind: ValueEmpty}
	}
	name, value := s, ""
	if i := strings.IndexByte(s, '='); i >= 0 {
		name, value = s[:i], s[i+1:]
	}
	if name == "" || name == "-" {
		return Capability{}, &ValueError{Type: "capability", Kind: ValueEmpty}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if i == 0 && c == '-' {
			continue
		}
		if !isLetter(c) && !isDigit(c) && c != '/' && c != '-' && c != '.' {
			return Capability{}, &ValueError{Type: "capability", Kind: ValueBadChar, Index: i}
		}
	}
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case 0, '\r', '\n', ' ':
			return Capability{}, &ValueError{Type: "capability", Kind: ValueBadChar, Index: len(name) + 1 + i}
		}
	}
	return Capability{Name: name, Value: value}, nil
}

// ParseCapabilityList parses a space-separated capability list as carried in
// the trailing parameter of CAP messages.
func ParseCapabilityList(s string) ([]Capability, error) {
	var caps []Capability
	for _, tok := range strings.Fields(s) {
		c, err := ParseCapability(tok)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	return caps, nil
}

func (c Capability) String() string {
	if c.Value != "" {
		return c.Name + "=" + c.Value
	}
	return c.Name
}

// CapabilityNames renders a capability list without values, as used in CAP
// REQ.
func CapabilityNames(caps []Capability) string {
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}
