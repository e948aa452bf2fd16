package irctext

import (
	"reflect"
	"testing"
)

func TestParseNickname(t *testing.T) {
	testCases := []struct {
		in   string
		ok   bool
		kind ValueErrorKind
	}{
		{"edsample", true, 0},
		{"[away]", true, 0},
		{"`tick", true, 0},
		{"a-b-c", true, 0},
		{"x{|}", true, 0},
		{"", false, ValueEmpty},
		{"9digit", false, ValueBadPrefix},
		{"#chan", false, ValueBadPrefix},
		{"has space", false, ValueBadChar},
		{"excl!aim", false, ValueBadChar},
		{"at@sign", false, ValueBadChar},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			n, err := ParseNickname(tc.in)
			if tc.ok {
				if err != nil {
					t.Fatalf("ParseNickname(%q) = %v", tc.in, err)
				}
				if n.String() != tc.in {
					t.Errorf("render = %q, want %q", n.String(), tc.in)
				}
				return
			}
			verr, ok := err.(*ValueError)
			if !ok {
				t.Fatalf("error = %v, want *ValueError", err)
			}
			if verr.Kind != tc.kind {
				t.Errorf("kind = %v, want %v", verr.Kind, tc.kind)
			}
		})
	}
}

func TestParseNicknameMax(t *testing.T) {
	if _, err := ParseNicknameMax("toolongnick", 9); err == nil {
		t.Error("want error for nick over limit")
	} else if verr := err.(*ValueError); verr.Kind != ValueTooLong || verr.Limit != 9 {
		t.Errorf("error = %v, want TooLong(9)", err)
	}
	if _, err := ParseNicknameMax("ninechars", 9); err != nil {
		t.Errorf("ParseNicknameMax(ninechars, 9) = %v", err)
	}
}

func TestParseChannel(t *testing.T) {
	testCases := []struct {
		in   string
		ok   bool
		kind ValueErrorKind
	}{
		{"#chat", true, 0},
		{"&local", true, 0},
		{"#with:colon", true, 0},
		{"", false, ValueEmpty},
		{"chat", false, ValueBadPrefix},
		{"#has space", false, ValueBadChar},
		{"#has,comma", false, ValueBadChar},
		{"#bell\x07", false, ValueBadChar},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			ch, err := ParseChannel(tc.in)
			if tc.ok {
				if err != nil {
					t.Fatalf("ParseChannel(%q) = %v", tc.in, err)
				}
				if ch.String() != tc.in {
					t.Errorf("render = %q, want %q", ch.String(), tc.in)
				}
				return
			}
			if verr, ok := err.(*ValueError); !ok || verr.Kind != tc.kind {
				t.Errorf("error = %v, want kind %v", err, tc.kind)
			}
		})
	}
}

func TestParseUsername(t *testing.T) {
	if _, err := ParseUsername("~jwuser"); err != nil {
		t.Errorf("ParseUsername(~jwuser) = %v", err)
	}
	for _, bad := range []string{"", "with space", "with@at", "with\rcr"} {
		if _, err := ParseUsername(bad); err == nil {
			t.Errorf("ParseUsername(%q) succeeded", bad)
		}
	}
}

func TestParseSource(t *testing.T) {
	testCases := []struct {
		in   string
		want Source
	}{
		{"irc.libera.chat", Source{Server: "irc.libera.chat"}},
		{"alice", Source{Nick: "alice"}},
		{"alice!~a@host.example", Source{Nick: "alice", User: "~a", Host: "host.example"}},
		{"alice!~a@user/alice", Source{Nick: "alice", User: "~a", Host: "user/alice"}},
		{"alice@host.example", Source{Nick: "alice", Host: "host.example"}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			src, err := ParseSource(tc.in)
			if err != nil {
				t.Fatalf("ParseSource(%q) = %v", tc.in, err)
			}
			if !reflect.DeepEqual(*src, tc.want) {
				t.Errorf("source = %#v, want %#v", *src, tc.want)
			}
			if src.String() != tc.in {
				t.Errorf("render = %q, want %q", src.String(), tc.in)
			}
		})
	}

	for _, bad := range []string{"", "bad nick!u@h", "nick!@h"} {
		if _, err := ParseSource(bad); err == nil {
			t.Errorf("ParseSource(%q) succeeded", bad)
		}
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	testCases := []struct {
		in        string
		canonical string
	}{
		{"+iw", "+iw"},
		{"+i-w+o", "+i-w+o"},
		{"-o-v", "-ov"},
		{"+Ziw", "+Ziw"},
	}
	for _, tc := range testCases {
		ms, err := ParseModeString(tc.in)
		if err != nil {
			t.Fatalf("ParseModeString(%q) = %v", tc.in, err)
		}
		if got := ms.String(); got != tc.canonical {
			t.Errorf("ParseModeString(%q).String() = %q, want %q", tc.in, got, tc.canonical)
		}
	}
	for _, bad := range []string{"", "iw", "+i!"} {
		if _, err := ParseModeString(bad); err == nil {
			t.Errorf("ParseModeString(%q) succeeded", bad)
		}
	}
}

func TestCasemapEquality(t *testing.T) {
	if !Nickname("Alice{}").Equal("alice[]", CaseMappingRFC1459) {
		t.Error("rfc1459 should fold {} to []")
	}
	if Nickname("Alice{}").Equal("alice[]", CaseMappingASCII) {
		t.Error("ascii should not fold {} to []")
	}
	if !Channel("#Chat~").Equal("#chat^", CaseMappingRFC1459) {
		t.Error("rfc1459 should fold ~ to ^")
	}
	if Channel("#Chat~").Equal("#chat^", CaseMappingRFC1459Strict) {
		t.Error("rfc1459-strict should not fold ~ to ^")
	}
}

func TestTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("1700000000")
	if err != nil {
		t.Fatalf("ParseTimestamp = %v", err)
	}
	if ts.String() != "1700000000" {
		t.Errorf("render = %q", ts.String())
	}
	rfc, err := ParseTimestamp("2023-11-14T22:13:20Z")
	if err != nil {
		t.Fatalf("ParseTimestamp(rfc3339) = %v", err)
	}
	if rfc.Raw != ts.Raw {
		t.Errorf("rfc3339 raw = %d, want %d", rfc.Raw, ts.Raw)
	}
	if _, err := ParseTimestamp("not a time"); err == nil {
		t.Error("want error for garbage timestamp")
	}
}

func TestParseCapability(t *testing.T) {
	c, err := ParseCapability("sasl=PLAIN,EXTERNAL")
	if err != nil {
		t.Fatalf("ParseCapability = %v", err)
	}
	if c.Name != "sasl" || c.Value != "PLAIN,EXTERNAL" {
		t.Errorf("cap = %#v", c)
	}
	if c.String() != "sasl=PLAIN,EXTERNAL" {
		t.Errorf("render = %q", c.String())
	}
	if _, err := ParseCapability("soju.im/bouncer-networks"); err != nil {
		t.Errorf("vendored capability rejected: %v", err)
	}
	if _, err := ParseCapability("-away-notify"); err != nil {
		t.Errorf("removal capability rejected: %v", err)
	}
	for _, bad := range []string{"", "=", "sp ace"} {
		if _, err := ParseCapability(bad); err == nil {
			t.Errorf("ParseCapability(%q) succeeded", bad)
		}
	}
}
