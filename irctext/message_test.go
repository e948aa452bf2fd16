package irctext

import (
	"reflect"
	"testing"
)

func TestParseWelcome(t *testing.T) {
	line := ":irc.libera.chat 001 edsample :Welcome to the Libera.Chat Internet Relay Chat Network edsample"
	msg, err := ParseMessage(line)
	if err != nil {
		t.Fatalf("ParseMessage(%q) = %v", line, err)
	}
	if msg.Source == nil || msg.Source.Server != "irc.libera.chat" {
		t.Errorf("source = %v, want server irc.libera.chat", msg.Source)
	}
	want := &RplWelcome{
		Client: "edsample",
		Text:   "Welcome to the Libera.Chat Internet Relay Chat Network edsample",
	}
	if !reflect.DeepEqual(msg.Payload, want) {
		t.Errorf("payload = %#v, want %#v", msg.Payload, want)
	}
}

func TestRenderJoin(t *testing.T) {
	msg := ClientMsg(&Join{Channels: []Channel{"#rust", "#python"}})
	if got, want := msg.String(), "JOIN #rust,#python"; got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestTopicWhoTimeTolerant(t *testing.T) {
	for _, line := range []string{
		":s 333 me #c alice!~a@host 1700000000",
		":s 333 me #c alice 1700000000",
	} {
		msg, err := ParseMessage(line)
		if err != nil {
			t.Fatalf("ParseMessage(%q) = %v", line, err)
		}
		r, ok := msg.Payload.(*RplTopicWhoTime)
		if !ok {
			t.Fatalf("payload = %T, want *RplTopicWhoTime", msg.Payload)
		}
		if r.Channel != "#c" {
			t.Errorf("channel = %q, want #c", r.Channel)
		}
		if r.Setter == nil || r.Setter.Nick != "alice" {
			t.Errorf("setter = %v, want nick alice", r.Setter)
		}
		if r.TimeSet.Raw != 1700000000 {
			t.Errorf("time = %d, want 1700000000", r.TimeSet.Raw)
		}
		if got := r.TimeSet.Time.UTC().Format("2006-01-02T15:04:05Z"); got != "2023-11-14T22:13:20Z" {
			t.Errorf("time = %v, want 2023-11-14T22:13:20Z", got)
		}
	}
}

func TestUnknownNumeric(t *testing.T) {
	msg, err := ParseMessage(":s 999 me :zzz")
	if err != nil {
		t.Fatalf("ParseMessage = %v", err)
	}
	want := &ReplyUnknown{UnknownCode: 999, Params: []string{"me", "zzz"}}
	if !reflect.DeepEqual(msg.Payload, want) {
		t.Errorf("payload = %#v, want %#v", msg.Payload, want)
	}
}

func TestRoundTrip(t *testing.T) {
	// Semantic round-trip: parsing the rendering of a parsed message must
	// yield the same message.
	lines := []string{
		":irc.libera.chat 001 jwodder :Welcome to the Libera.Chat Internet Relay Chat Network jwodder",
		":x.example 004 me x.example solanum-1.0-dev DGIMQRSZ CFILMPQRST bklov",
		":x.example 005 me CHANTYPES=# NICKLEN=16 CASEMAPPING=rfc1459 -EXCEPTS :are supported by this server",
		":x.example 250 me :Highest connection count: 3072 (3071 clients)",
		":x.example 252 me 40 :IRC Operators online",
		":x.example 265 me 2700 3071 :Current local users 2700, max 3071",
		":x.example 322 me #chat 42 :General chatter",
		":x.example 323 me :End of /LIST",
		":x.example 324 me #chat +ntk secret",
		":x.example 333 me #chat alice!~a@host 1700000000",
		":x.example 353 me = #chat :@alice +bob carol",
		":x.example 366 me #chat :End of /NAMES list.",
		":x.example 351 me solanum-1.0 x.example :extra info",
		":x.example 351 me solanum-1.0 x.example",
		":x.example 375 me :- x.example Message of the Day -",
		":x.example 376 me :End of /MOTD command.",
		":x.example 421 me BOGUS :Unknown command",
		":x.example 433 me badnick :Nickname is already in use.",
		":x.example 904 me :SASL authentication failed",
		":x.example 900 me me!u@h account :You are now logged in as account",
		":s 999 me :zzz",
		"PING :serv.example",
		"PONG :serv.example",
		":alice!~a@host PRIVMSG #chat :hello there",
		":alice!~a@host NOTICE bob,#ops :watch out",
		":alice!~a@host JOIN #chat",
		":alice!~a@host PART #chat :gone fishing",
		":alice!~a@host KICK #chat bob :flooding",
		":alice!~a@host TOPIC #chat :new topic",
		":alice!~a@host NICK alice2",
		":alice!~a@host QUIT :Quit: bye",
		":alice!~a@host MODE #chat +ov bob carol",
		"CAP LS 302",
		"CAP REQ :sasl server-time",
		":x.example CAP * LS * :sasl=PLAIN,EXTERNAL account-tag",
		":x.example CAP me ACK :sasl",
		"AUTHENTICATE PLAIN",
		"AUTHENTICATE +",
		"USER jwuser 0 * :Just this guy, you know?",
		"JOIN #a,#b key1",
		"JOIN 0",
		"LIST #a,#b",
		"WHOIS remote.example someone",
		"ERROR :Closing Link",
	}
	for _, line := range lines {
		line := line
		t.Run(line, func(t *testing.T) {
			m1, err := ParseMessage(line)
			if err != nil {
				t.Fatalf("ParseMessage(%q) = %v", line, err)
			}
			rendered := m1.String()
			if len(rendered) > 510 {
				t.Errorf("render %q longer than 510 bytes", rendered)
			}
			m2, err := ParseMessage(rendered)
			if err != nil {
				t.Fatalf("reparse of %q = %v", rendered, err)
			}
			if !reflect.DeepEqual(m1, m2) {
				t.Errorf("round trip mismatch:\n first = %#v\nsecond = %#v", m1.Payload, m2.Payload)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	testCases := []struct {
		name string
		line string
		kind ParseErrorKind
	}{
		{"empty", "", ErrEncoding},
		{"onlySource", ":irc.example.org", ErrEncoding},
		{"missingCommand", ":irc.example.org ", ErrEncoding},
		{"badCommandToken", "PRIV@MSG #c :hi", ErrEncoding},
		{"shortNumeric", ":s 42 me :hi", ErrEncoding},
		{"nulByte", "PING :a\x00b", ErrEncoding},
		{"unknownCommand", "FOOBARBAZ x", ErrUnknownCommand},
		{"privmsgNoText", "PRIVMSG #c", ErrBadParamCount},
		{"welcomeNoText", ":s 001 me", ErrBadParamCount},
		{"nickBadPrefix", "NICK #bad", ErrBadField},
		{"joinNotChannel", "JOIN nochannelprefix", ErrBadField},
		{"kickBadNick", "KICK #c bad!nick", ErrBadField},
		{"topicWhoTimeBadTime", ":s 333 me #c alice notatime", ErrBadField},
		{"listBadCount", ":s 322 me #c notanumber :topic", ErrBadField},
		{"namreplyBadStatus", ":s 353 me ? #c :alice", ErrBadField},
		{"badSource", ":nick!@host PING :x", ErrEncoding},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMessage(tc.line)
			if err == nil {
				t.Fatalf("ParseMessage(%q) succeeded, want %v", tc.line, tc.kind)
			}
			perr, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if perr.Kind != tc.kind {
				t.Errorf("kind = %v, want %v", perr.Kind, tc.kind)
			}
		})
	}
}

func TestTagsDiscarded(t *testing.T) {
	msg, err := ParseMessage("@time=2023-11-14T22:13:20.000Z :serv.example PING :tok")
	if err != nil {
		t.Fatalf("ParseMessage = %v", err)
	}
	p, ok := msg.Payload.(*Ping)
	if !ok || p.Token != "tok" {
		t.Errorf("payload = %#v, want PING tok", msg.Payload)
	}
}

func TestNamReplyMembers(t *testing.T) {
	msg, err := ParseMessage(":s 353 me = #chat :~&@%+alice @bob carol")
	if err != nil {
		t.Fatalf("ParseMessage = %v", err)
	}
	r := msg.Payload.(*RplNamReply)
	want := []NamEntry{
		{Prefixes: []MembershipPrefix{PrefixFounder, PrefixProtected, PrefixOperator, PrefixHalfOp, PrefixVoice}, Nick: "alice"},
		{Prefixes: []MembershipPrefix{PrefixOperator}, Nick: "bob"},
		{Nick: "carol"},
	}
	if !reflect.DeepEqual(r.Members, want) {
		t.Errorf("members = %#v, want %#v", r.Members, want)
	}
}

func TestExtraNumericParamsIgnored(t *testing.T) {
	msg, err := ParseMessage(":s 376 me extratoken :End of /MOTD command.")
	if err != nil {
		t.Fatalf("ParseMessage = %v", err)
	}
	if _, ok := msg.Payload.(*RplEndOfMotd); !ok {
		t.Errorf("payload = %T, want *RplEndOfMotd", msg.Payload)
	}
}
