package ircnet

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"github.com/emersion/go-sasl"
	"golang.org/x/crypto/pbkdf2"
)

// DefaultSASLMechanisms is the preference order used when the configuration
// does not override it.
var DefaultSASLMechanisms = []string{
	"SCRAM-SHA-512",
	"SCRAM-SHA-256",
	"SCRAM-SHA-1",
	"PLAIN",
}

// maxSASLChunk is the payload size limit per AUTHENTICATE message.
const maxSASLChunk = 400

// newSASLClient builds a sasl.Client for one of the supported mechanisms.
func newSASLClient(mech, username, password string) (sasl.Client, error) {
	switch mech {
	case "PLAIN":
		return sasl.NewPlainClient("", username, password), nil
	case "SCRAM-SHA-1":
		return newScramClient(mech, sha1.New, username, password), nil
	case "SCRAM-SHA-256":
		return newScramClient(mech, sha256.New, username, password), nil
	case "SCRAM-SHA-512":
		return newScramClient(mech, sha512.New, username, password), nil
	default:
		return nil, fmt.Errorf("unsupported SASL mechanism %q", mech)
	}
}

// selectMechanisms filters the configured preference list down to what the
// server advertises in the sasl capability value. An empty advertisement
// permits every configured mechanism; servers that elide the value still
// accept at least PLAIN, and failures downshift through the list anyway.
func selectMechanisms(configured []string, advertised string) []string {
	if advertised == "" {
		return configured
	}
	offered := strings.Split(advertised, ",")
	var mechs []string
	for _, want := range configured {
		for _, have := range offered {
			if strings.EqualFold(want, have) {
				mechs = append(mechs, want)
				break
			}
		}
	}
	return mechs
}

// scramClient implements the client side of RFC 5802 SCRAM with channel
// binding "n,," over the go-sasl client interface.
type scramClient struct {
	mech     string
	newHash  func() hash.Hash
	username string
	password string

	nonce       string
	authMessage string
	serverSig   []byte
	step        int
}

var _ sasl.Client = (*scramClient)(nil)

func newScramClient(mech string, newHash func() hash.Hash, username, password string) *scramClient {
	return &scramClient{
		mech:     mech,
		newHash:  newHash,
		username: username,
		password: password,
	}
}

func (c *scramClient) Start() (string, []byte, error) {
	if c.nonce == "" {
		raw := make([]byte, 18)
		if _, err := rand.Read(raw); err != nil {
			return "", nil, err
		}
		c.nonce = base64.StdEncoding.EncodeToString(raw)
	}
	first := "n=" + escapeSCRAMUsername(c.username) + ",r=" + c.nonce
	c.authMessage = first
	return c.mech, []byte("n,," + first), nil
}

func (c *scramClient) Next(challenge []byte) ([]byte, error) {
	defer func() { c.step++ }()
	switch c.step {
	case 0:
		return c.clientFinal(string(challenge))
	case 1:
		return nil, c.verifyServerFinal(string(challenge))
	default:
		return nil, fmt.Errorf("unexpected SCRAM challenge after completion")
	}
}

func (c *scramClient) clientFinal(serverFirst string) ([]byte, error) {
	attrs, err := parseSCRAMAttributes(serverFirst)
	if err != nil {
		return nil, err
	}
	serverNonce, ok := attrs["r"]
	if !ok || !strings.HasPrefix(serverNonce, c.nonce) {
		return nil, fmt.Errorf("SCRAM server nonce does not extend client nonce")
	}
	salt, err := base64.StdEncoding.DecodeString(attrs["s"])
	if err != nil {
		return nil, fmt.Errorf("bad SCRAM salt: %v", err)
	}
	iters, err := strconv.Atoi(attrs["i"])
	if err != nil || iters <= 0 {
		return nil, fmt.Errorf("bad SCRAM iteration count %q", attrs["i"])
	}

	withoutProof := "c=" + base64.StdEncoding.EncodeToString([]byte("n,,")) + ",r=" + serverNonce
	c.authMessage += "," + serverFirst + "," + withoutProof

	salted := pbkdf2.Key([]byte(c.password), salt, iters, c.newHash().Size(), c.newHash)
	clientKey := c.hmac(salted, "Client Key")
	storedKey := c.hash(clientKey)
	clientSig := c.hmac(storedKey, c.authMessage)
	proof := make([]byte, len(clientKey))
	for i := range clientKey {
		proof[i] = clientKey[i] ^ clientSig[i]
	}
	serverKey := c.hmac(salted, "Server Key")
	c.serverSig = c.hmac(serverKey, c.authMessage)

	final := withoutProof + ",p=" + base64.StdEncoding.EncodeToString(proof)
	return []byte(final), nil
}

func (c *scramClient) verifyServerFinal(serverFinal string) error {
	attrs, err := parseSCRAMAttributes(serverFinal)
	if err != nil {
		return err
	}
	if e, ok := attrs["e"]; ok {
		return fmt.Errorf("SCRAM server error: %v", e)
	}
	sig, err := base64.StdEncoding.DecodeString(attrs["v"])
	if err != nil {
		return fmt.Errorf("bad SCRAM server signature: %v", err)
	}
	if !hmac.Equal(sig, c.serverSig) {
		return fmt.Errorf("SCRAM server signature mismatch")
	}
	return nil
}

func (c *scramClient) hash(data []byte) []byte {
	h := c.newHash()
	h.Write(data)
	return h.Sum(nil)
}

func (c *scramClient) hmac(key []byte, data string) []byte {
	h := hmac.New(c.newHash, key)
	h.Write([]byte(data))
	return h.Sum(nil)
}

func parseSCRAMAttributes(s string) (map[string]string, error) {
	attrs := make(map[string]string)
	for _, part := range strings.Split(s, ",") {
		k, v, found := strings.Cut(part, "=")
		if !found || len(k) != 1 {
			return nil, fmt.Errorf("malformed SCRAM attribute %q", part)
		}
		attrs[k] = v
	}
	return attrs, nil
}

func escapeSCRAMUsername(s string) string {
	s = strings.ReplaceAll(s, "=", "=3D")
	return strings.ReplaceAll(s, ",", "=2C")
}
