package ircnet

import (
	"sort"

	"git.sr.ht/~edsample/ircnet/irctext"
)

// channelState is the client's view of one joined channel. Members map
// casemapped nicknames to their membership prefixes; the display nickname
// is kept alongside.
type channelState struct {
	Name      irctext.Channel
	Topic     string
	TopicWho  *irctext.Source
	TopicTime *irctext.Timestamp
	Status    irctext.ChannelStatus
	Members   map[string]*member

	// complete is false while a NAMES bundle is still in flight.
	complete bool
}

type member struct {
	Nick     irctext.Nickname
	Prefixes []irctext.MembershipPrefix
}

func newChannelState(name irctext.Channel) *channelState {
	return &channelState{
		Name:    name,
		Status:  irctext.ChannelPublic,
		Members: make(map[string]*member),
	}
}

func (ch *channelState) addMember(cm irctext.CaseMapping, e irctext.NamEntry) {
	key := cm(string(e.Nick))
	m, ok := ch.Members[key]
	if !ok {
		ch.Members[key] = &member{Nick: e.Nick, Prefixes: e.Prefixes}
		return
	}
	for _, p := range e.Prefixes {
		m.addPrefix(p)
	}
}

func (ch *channelState) removeMember(cm irctext.CaseMapping, nick irctext.Nickname) {
	delete(ch.Members, cm(string(nick)))
}

func (ch *channelState) renameMember(cm irctext.CaseMapping, from, to irctext.Nickname) {
	key := cm(string(from))
	m, ok := ch.Members[key]
	if !ok {
		return
	}
	delete(ch.Members, key)
	m.Nick = to
	ch.Members[cm(string(to))] = m
}

// applyMode updates membership prefixes for mode changes that carry a nick
// argument, per the PREFIX advertisement.
func (ch *channelState) applyMode(cm irctext.CaseMapping, memberships []irctext.Membership, modes irctext.ModeString, args []string) {
	i := 0
	for _, mc := range modes {
		var prefix irctext.MembershipPrefix
		for _, ms := range memberships {
			if ms.Mode == mc.Mode {
				prefix = ms.Prefix
				break
			}
		}
		if prefix == 0 {
			continue
		}
		if i >= len(args) {
			break
		}
		nick := args[i]
		i++
		m, ok := ch.Members[cm(nick)]
		if !ok {
			continue
		}
		if mc.Set {
			m.addPrefix(prefix)
		} else {
			m.removePrefix(prefix)
		}
	}
}

// snapshot returns the members sorted by rank then name, for the Joined
// event.
func (ch *channelState) snapshot() []irctext.NamEntry {
	entries := make([]irctext.NamEntry, 0, len(ch.Members))
	for _, m := range ch.Members {
		prefixes := make([]irctext.MembershipPrefix, len(m.Prefixes))
		copy(prefixes, m.Prefixes)
		entries = append(entries, irctext.NamEntry{Prefixes: prefixes, Nick: m.Nick})
	}
	sort.Slice(entries, func(i, j int) bool {
		ri, rj := 0, 0
		if len(entries[i].Prefixes) > 0 {
			ri = entries[i].Prefixes[0].Rank()
		}
		if len(entries[j].Prefixes) > 0 {
			rj = entries[j].Prefixes[0].Rank()
		}
		if ri != rj {
			return ri > rj
		}
		return entries[i].Nick < entries[j].Nick
	})
	return entries
}

func (m *member) addPrefix(p irctext.MembershipPrefix) {
	for _, have := range m.Prefixes {
		if have == p {
			return
		}
	}
	m.Prefixes = append(m.Prefixes, p)
	// Highest rank first.
	sort.Slice(m.Prefixes, func(i, j int) bool {
		return m.Prefixes[i].Rank() > m.Prefixes[j].Rank()
	})
}

func (m *member) removePrefix(p irctext.MembershipPrefix) {
	for i, have := range m.Prefixes {
		if have == p {
			m.Prefixes = append(m.Prefixes[:i], m.Prefixes[i+1:]...)
			return
		}
	}
}
