package ircnet

import (
	"reflect"
	"testing"

	"git.sr.ht/~edsample/ircnet/irctext"
)

func TestChannelStateMemberships(t *testing.T) {
	cm := irctext.CaseMappingRFC1459
	ch := newChannelState("#chat")

	ch.addMember(cm, irctext.NamEntry{Nick: "alice", Prefixes: []irctext.MembershipPrefix{irctext.PrefixVoice}})
	ch.addMember(cm, irctext.NamEntry{Nick: "Bob"})

	// A second sighting merges prefixes, preserving the highest.
	ch.addMember(cm, irctext.NamEntry{Nick: "ALICE", Prefixes: []irctext.MembershipPrefix{irctext.PrefixOperator}})
	if len(ch.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(ch.Members))
	}
	alice := ch.Members["alice"]
	want := []irctext.MembershipPrefix{irctext.PrefixOperator, irctext.PrefixVoice}
	if !reflect.DeepEqual(alice.Prefixes, want) {
		t.Errorf("alice prefixes = %v, want %v", alice.Prefixes, want)
	}

	memberships := []irctext.Membership{
		{Mode: "o", Prefix: irctext.PrefixOperator},
		{Mode: "v", Prefix: irctext.PrefixVoice},
	}
	modes, err := irctext.ParseModeString("-o+v")
	if err != nil {
		t.Fatal(err)
	}
	ch.applyMode(cm, memberships, modes, []string{"alice", "bob"})
	if got := ch.Members["alice"].Prefixes; !reflect.DeepEqual(got, []irctext.MembershipPrefix{irctext.PrefixVoice}) {
		t.Errorf("alice prefixes after -o = %v", got)
	}
	if got := ch.Members["bob"].Prefixes; !reflect.DeepEqual(got, []irctext.MembershipPrefix{irctext.PrefixVoice}) {
		t.Errorf("bob prefixes after +v = %v", got)
	}

	ch.renameMember(cm, "Bob", "robert")
	if _, ok := ch.Members["robert"]; !ok {
		t.Error("rename lost the member")
	}

	snapshot := ch.snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("snapshot = %+v", snapshot)
	}
	if snapshot[0].Nick != "alice" {
		t.Errorf("snapshot order = %+v, want voiced alice first", snapshot)
	}

	ch.removeMember(cm, "ALICE")
	if _, ok := ch.Members["alice"]; ok {
		t.Error("removeMember is not casemap-aware")
	}
}
