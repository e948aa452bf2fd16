package irctext

// Channel is a validated channel name: '#' or '&' followed by any
// characters except NUL, BEL, CR, LF, space and comma.
type Channel string

func ParseChannel(s string) (Channel, error) {
	if s == "" {
		return "", &ValueError{Type: "channel", Kind: ValueEmpty}
	}
	if s[0] != '#' && s[0] != '&' {
		return "", &ValueError{Type: "channel", Kind: ValueBadPrefix}
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case 0, 7, '\r', '\n', ' ', ',':
			return "", &ValueError{Type: "channel", Kind: ValueBadChar, Index: i}
		}
	}
	return Channel(s), nil
}

func (c Channel) String() string { return string(c) }

// Equal reports whether two channel names are the same under the given
// casemapping.
func (c Channel) Equal(other Channel, cm CaseMapping) bool {
	return cm(string(c)) == cm(string(other))
}

// ChannelKey is a validated channel key as used by JOIN and MODE +k.
type ChannelKey string

func ParseChannelKey(s string) (ChannelKey, error) {
	if s == "" {
		return "", &ValueError{Type: "channel key", Kind: ValueEmpty}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c == ',' || c == 0x7f {
			return "", &ValueError{Type: "channel key", Kind: ValueBadChar, Index: i}
		}
	}
	return ChannelKey(s), nil
}

func (k ChannelKey) String() string { return string(k) }

// ChannelStatus is the visibility marker carried by RPL_NAMREPLY.
type ChannelStatus byte

const (
	ChannelPublic  ChannelStatus = '='
	ChannelSecret  ChannelStatus = '@'
	ChannelPrivate ChannelStatus = '*'
)

func ParseChannelStatus(s string) (ChannelStatus, error) {
	if s == "" {
		return 0, &ValueError{Type: "channel status", Kind: ValueEmpty}
	}
	if len(s) > 1 {
		return 0, &ValueError{Type: "channel status", Kind: ValueBadChar, Index: 1}
	}
	switch cs := ChannelStatus(s[0]); cs {
	case ChannelPublic, ChannelSecret, ChannelPrivate:
		return cs, nil
	default:
		return 0, &ValueError{Type: "channel status", Kind: ValueBadChar}
	}
}

func (cs ChannelStatus) String() string { return string(cs) }

// MembershipPrefix is a channel membership marker as seen in NAMES replies.
type MembershipPrefix byte

const (
	PrefixFounder   MembershipPrefix = '~'
	PrefixProtected MembershipPrefix = '&'
	PrefixOperator  MembershipPrefix = '@'
	PrefixHalfOp    MembershipPrefix = '%'
	PrefixVoice     MembershipPrefix = '+'
)

// MembershipPrefixes lists the standard prefixes from highest to lowest
// rank.
const MembershipPrefixes = "~&@%+"

func ParseMembershipPrefix(c byte) (MembershipPrefix, bool) {
	for i := 0; i < len(MembershipPrefixes); i++ {
		if MembershipPrefixes[i] == c {
			return MembershipPrefix(c), true
		}
	}
	return 0, false
}

// Rank orders memberships: founder is highest, voice lowest, 0 for unknown
// prefixes.
func (p MembershipPrefix) Rank() int {
	switch p {
	case PrefixFounder:
		return 5
	case PrefixProtected:
		return 4
	case PrefixOperator:
		return 3
	case PrefixHalfOp:
		return 2
	case PrefixVoice:
		return 1
	default:
		return 0
	}
}

func (p MembershipPrefix) String() string { return string(p) }

// SplitMemberships splits the leading membership prefixes off a NAMES
// entry, highest first.
func SplitMemberships(s string) (prefixes []MembershipPrefix, nick string) {
	i := 0
	for i < len(s) {
		p, ok := ParseMembershipPrefix(s[i])
		if !ok {
			break
		}
		prefixes = append(prefixes, p)
		i++
	}
	return prefixes, s[i:]
}
