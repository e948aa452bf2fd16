package irctext

import (
	"reflect"
	"testing"
)

func applyTokens(t *testing.T, is *ISupport, tokens ...string) {
	t.Helper()
	var parsed []ISupportToken
	for _, tok := range tokens {
		p, err := ParseISupportToken(tok)
		if err != nil {
			t.Fatalf("ParseISupportToken(%q) = %v", tok, err)
		}
		parsed = append(parsed, p)
	}
	is.Apply(parsed)
}

func TestISupportAccumulation(t *testing.T) {
	is := NewISupport()
	applyTokens(t, is, "NICKLEN=16", "CHANTYPES=#", "EXCEPTS", "NETWORK=Libera.Chat")
	if is.NickLen() != 16 {
		t.Errorf("NickLen = %d, want 16", is.NickLen())
	}
	if is.ChanTypes() != "#" {
		t.Errorf("ChanTypes = %q, want #", is.ChanTypes())
	}
	if _, ok := is.Get("EXCEPTS"); !ok {
		t.Error("EXCEPTS missing")
	}

	// A later reply overrides matching keys and negation removes them.
	applyTokens(t, is, "NICKLEN=32", "-EXCEPTS")
	if is.NickLen() != 32 {
		t.Errorf("NickLen after override = %d, want 32", is.NickLen())
	}
	if _, ok := is.Get("EXCEPTS"); ok {
		t.Error("EXCEPTS still present after negation")
	}
	if is.Network() != "Libera.Chat" {
		t.Errorf("Network = %q", is.Network())
	}
}

func TestISupportDefaults(t *testing.T) {
	is := NewISupport()
	if got := is.CaseMapping()("A{}"); got != "a[]" {
		t.Errorf("default casemapping folded %q, want rfc1459", got)
	}
	applyTokens(t, is, "CASEMAPPING=ascii")
	if got := is.CaseMapping()("A{}"); got != "a{}" {
		t.Errorf("ascii casemapping folded %q", got)
	}
	if is.ChanTypes() != "#&" {
		t.Errorf("default ChanTypes = %q", is.ChanTypes())
	}
}

func TestISupportMemberships(t *testing.T) {
	is := NewISupport()
	applyTokens(t, is, "PREFIX=(ov)@+")
	want := []Membership{{"o", PrefixOperator}, {"v", PrefixVoice}}
	if got := is.Memberships(); !reflect.DeepEqual(got, want) {
		t.Errorf("Memberships = %#v, want %#v", got, want)
	}

	// Malformed PREFIX falls back to the standard set.
	applyTokens(t, is, "PREFIX=(ov@+")
	if got := is.Memberships(); len(got) != 5 {
		t.Errorf("fallback Memberships = %#v", got)
	}
}

func TestISupportLimits(t *testing.T) {
	is := NewISupport()
	applyTokens(t, is, "CHANLIMIT=#:250", "MAXLIST=bqeI:100")
	if got := is.ChanLimit()["#"]; got != 250 {
		t.Errorf("ChanLimit[#] = %d, want 250", got)
	}
	if got := is.MaxList()["bqeI"]; got != 100 {
		t.Errorf("MaxList[bqeI] = %d, want 100", got)
	}
	applyTokens(t, is, "CHANLIMIT=#:")
	if got := is.ChanLimit()["#"]; got != -1 {
		t.Errorf("unlimited ChanLimit[#] = %d, want -1", got)
	}
}

func TestISupportTokenParse(t *testing.T) {
	for _, bad := range []string{"", "lower=x", "-NEG=x", "1BAD", "BAD-KEY"} {
		if _, err := ParseISupportToken(bad); err == nil {
			t.Errorf("ParseISupportToken(%q) succeeded", bad)
		}
	}
	tok, err := ParseISupportToken("TARGMAX=NAMES:1,LIST:1")
	if err != nil {
		t.Fatalf("ParseISupportToken = %v", err)
	}
	if tok.String() != "TARGMAX=NAMES:1,LIST:1" {
		t.Errorf("render = %q", tok.String())
	}
}
