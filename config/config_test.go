package config

import (
	"os"
	"path/filepath"
	"testing"
)

func loadString(t *testing.T, s string) (*Profile, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "irc.conf")
	if err := os.WriteFile(path, []byte(s), 0600); err != nil {
		t.Fatal(err)
	}
	return Load(path)
}

func TestLoad(t *testing.T) {
	profile, err := loadString(t, `
host irc.libera.chat
port 6697
nickname edsample
username eds
realname "Ed Sample"
password hunter2
tls true
sasl true
sasl-mechanisms SCRAM-SHA-256 PLAIN
channel "#rust"
channel "#python" secretkey
`)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	c := profile.Client
	if c.Host != "irc.libera.chat" || c.Port != 6697 || c.Nickname != "edsample" {
		t.Errorf("client = %+v", c)
	}
	if c.Username != "eds" || c.Realname != "Ed Sample" || c.Password != "hunter2" {
		t.Errorf("client = %+v", c)
	}
	if c.TLS == nil || !*c.TLS || c.SASL == nil || !*c.SASL {
		t.Errorf("tls/sasl = %v/%v", c.TLS, c.SASL)
	}
	if len(c.SASLMechanisms) != 2 || c.SASLMechanisms[0] != "SCRAM-SHA-256" {
		t.Errorf("mechanisms = %v", c.SASLMechanisms)
	}
	if len(profile.Channels) != 2 || profile.Channels[1] != "#python" || profile.Keys[1] != "secretkey" {
		t.Errorf("channels = %v keys = %v", profile.Channels, profile.Keys)
	}
}

func TestLoadRejects(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"missingHost", "nickname x\n"},
		{"missingNickname", "host irc.example.org\n"},
		{"badPort", "host h\nnickname n\nport many\n"},
		{"badChannel", "host h\nnickname n\nchannel nope\n"},
		{"badBool", "host h\nnickname n\ntls yes\n"},
		{"unknownDirective", "host h\nnickname n\nfrobnicate\n"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadString(t, tc.in); err == nil {
				t.Errorf("Load(%q) succeeded", tc.in)
			}
		})
	}
}
