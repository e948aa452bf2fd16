package irctext

import "strings"

// Source is the origin prefix of a message: either a server name or a user
// mask. Exactly one of Server and Nick is set.
type Source struct {
	Server Hostname `json:"server,omitempty"`
	Nick   Nickname `json:"nick,omitempty"`
	User   Username `json:"user,omitempty"`
	// Host is the host part of a user mask. Kept as a plain string:
	// networks routinely put cloaks like "user/alice" here, which are not
	// hostnames.
	Host string `json:"host,omitempty"`
}

// ParseSource parses the text between the leading ':' and the first space
// of a wire line. A token containing '!' or '@' is a user mask; otherwise a
// token containing '.' is taken as a server name, and anything else as a
// bare nickname.
func ParseSource(s string) (*Source, error) {
	if s == "" {
		return nil, &ValueError{Type: "source", Kind: ValueEmpty}
	}
	bang := strings.IndexByte(s, '!')
	at := strings.IndexByte(s, '@')
	if bang < 0 && at < 0 {
		if strings.IndexByte(s, '.') >= 0 {
			server, err := ParseHostname(s)
			if err != nil {
				return nil, err
			}
			return &Source{Server: server}, nil
		}
		nick, err := ParseNickname(s)
		if err != nil {
			return nil, err
		}
		return &Source{Nick: nick}, nil
	}

	var src Source
	rest := s
	if at >= 0 {
		src.Host = rest[at+1:]
		rest = rest[:at]
		if src.Host == "" {
			return nil, &ValueError{Type: "source", Kind: ValueEmpty}
		}
	}
	if bang >= 0 {
		if bang > at && at >= 0 {
			return nil, &ValueError{Type: "source", Kind: ValueBadChar, Index: bang}
		}
		user, err := ParseUsername(rest[bang+1:])
		if err != nil {
			return nil, err
		}
		src.User = user
		rest = rest[:bang]
	}
	nick, err := ParseNickname(rest)
	if err != nil {
		return nil, err
	}
	src.Nick = nick
	return &src, nil
}

// IsServer reports whether the source names a server rather than a user.
func (s *Source) IsServer() bool { return s.Server != "" }

func (s *Source) String() string {
	if s.IsServer() {
		return string(s.Server)
	}
	var sb strings.Builder
	sb.WriteString(string(s.Nick))
	if s.User != "" {
		sb.WriteByte('!')
		sb.WriteString(string(s.User))
	}
	if s.Host != "" {
		sb.WriteByte('@')
		sb.WriteString(s.Host)
	}
	return sb.String()
}
