package ircnet

import (
	"crypto/sha1"
	"reflect"
	"testing"
)

// Test vector from RFC 5802 section 5.
func TestScramSha1Exchange(t *testing.T) {
	c := newScramClient("SCRAM-SHA-1", sha1.New, "user", "pencil")
	c.nonce = "fyko+d2lbbFgONRv9qkxdawL"

	mech, first, err := c.Start()
	if err != nil {
		t.Fatalf("Start = %v", err)
	}
	if mech != "SCRAM-SHA-1" {
		t.Errorf("mech = %q", mech)
	}
	if got, want := string(first), "n,,n=user,r=fyko+d2lbbFgONRv9qkxdawL"; got != want {
		t.Errorf("client-first = %q, want %q", got, want)
	}

	serverFirst := "r=fyko+d2lbbFgONRv9qkxdawL3rfcNHYJY1ZVvWVs7j,s=QSXCR+Q6sek8bf92,i=4096"
	final, err := c.Next([]byte(serverFirst))
	if err != nil {
		t.Fatalf("Next(server-first) = %v", err)
	}
	want := "c=biws,r=fyko+d2lbbFgONRv9qkxdawL3rfcNHYJY1ZVvWVs7j,p=v0X8v3Bz2T0CJGbJQyF0X+HI4Ts="
	if string(final) != want {
		t.Errorf("client-final = %q, want %q", final, want)
	}

	if _, err := c.Next([]byte("v=rmF9pqV8S7suAoZWja4dJRkFsKQ=")); err != nil {
		t.Errorf("server-final verification failed: %v", err)
	}
}

func TestScramRejectsBadServerSignature(t *testing.T) {
	c := newScramClient("SCRAM-SHA-1", sha1.New, "user", "pencil")
	c.nonce = "fyko+d2lbbFgONRv9qkxdawL"
	if _, _, err := c.Start(); err != nil {
		t.Fatalf("Start = %v", err)
	}
	if _, err := c.Next([]byte("r=fyko+d2lbbFgONRv9qkxdawL3rfcNHYJY1ZVvWVs7j,s=QSXCR+Q6sek8bf92,i=4096")); err != nil {
		t.Fatalf("Next = %v", err)
	}
	if _, err := c.Next([]byte("v=AAAAAAAAAAAAAAAAAAAAAAAAAAA=")); err == nil {
		t.Error("forged server signature accepted")
	}
}

func TestScramRejectsForeignNonce(t *testing.T) {
	c := newScramClient("SCRAM-SHA-1", sha1.New, "user", "pencil")
	if _, _, err := c.Start(); err != nil {
		t.Fatalf("Start = %v", err)
	}
	if _, err := c.Next([]byte("r=completely-different,s=QSXCR+Q6sek8bf92,i=4096")); err == nil {
		t.Error("server nonce not extending the client nonce was accepted")
	}
}

func TestSelectMechanisms(t *testing.T) {
	testCases := []struct {
		name       string
		configured []string
		advertised string
		want       []string
	}{
		{"emptyAdvertisement", DefaultSASLMechanisms, "", DefaultSASLMechanisms},
		{"intersect", DefaultSASLMechanisms, "PLAIN,SCRAM-SHA-256", []string{"SCRAM-SHA-256", "PLAIN"}},
		{"caseInsensitive", []string{"PLAIN"}, "plain", []string{"PLAIN"}},
		{"none", []string{"SCRAM-SHA-512"}, "PLAIN,EXTERNAL", nil},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := selectMechanisms(tc.configured, tc.advertised)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("selectMechanisms(%v, %q) = %v, want %v", tc.configured, tc.advertised, got, tc.want)
			}
		})
	}
}

func TestEscapeSCRAMUsername(t *testing.T) {
	if got := escapeSCRAMUsername("a=b,c"); got != "a=3Db=2Cc" {
		t.Errorf("escaped = %q", got)
	}
}
