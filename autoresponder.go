package ircnet

import "git.sr.ht/~edsample/ircnet/irctext"

// AutoResponder reacts to incoming messages that no pending command
// claimed. Implementations must not block: slow work and delayed sends
// belong on SendAfter, which posts back to the runtime.
type AutoResponder interface {
	HandleMessage(msg *irctext.Message, client *Client)
}

// AutoResponderFunc adapts a function to the AutoResponder interface.
type AutoResponderFunc func(msg *irctext.Message, client *Client)

func (f AutoResponderFunc) HandleMessage(msg *irctext.Message, client *Client) {
	f(msg, client)
}

type autoResponderSet struct {
	responders []AutoResponder
	logger     Logger
}

// handleMessage invokes every responder in registration order. A panic in
// one responder is logged and the connection continues.
func (s *autoResponderSet) handleMessage(msg *irctext.Message, client *Client) {
	for _, ar := range s.responders {
		func() {
			defer func() {
				if v := recover(); v != nil {
					s.logger.Printf("autoresponder panicked: %v", v)
				}
			}()
			ar.HandleMessage(msg, client)
		}()
	}
}
