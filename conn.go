package ircnet

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"git.sr.ht/~edsample/ircnet/irctext"
)

const (
	// maxMessageLength is the limit enforced on rendered outbound lines,
	// CRLF included.
	maxMessageLength = 512
	// maxLineBuffer caps the inbound buffer; a line exceeding it without a
	// terminator is a fatal framing error.
	maxLineBuffer = 8192

	writeTimeout = 10 * time.Second

	// Outbound flood control, matching the common server tolerance of a
	// short burst followed by one message every other second.
	messageDelay = 2 * time.Second
	messageBurst = 10
)

// ParseLineError reports a line that could not be parsed into a typed
// message. It is not fatal to the connection unless the underlying kind is
// ErrLineTooLong.
type ParseLineError struct {
	Line string
	Err  *irctext.ParseError
}

func (e *ParseLineError) Error() string {
	return fmt.Sprintf("failed to parse line %q: %v", e.Line, e.Err)
}

func (e *ParseLineError) Unwrap() error { return e.Err }

type connOptions struct {
	Logger         Logger
	Debug          bool
	RateLimitDelay time.Duration
	RateLimitBurst int
}

// conn frames typed IRC messages over a duplex byte stream. Writes are
// serialized through a buffered channel drained by a single goroutine, so
// SendMessage preserves call order and is safe from any goroutine.
type conn struct {
	net     net.Conn
	br      *bufio.Reader
	logger  Logger
	debug   bool
	metrics *metrics

	lock     sync.Mutex
	outgoing chan<- *irctext.Message
	closed   bool
	wdone    chan struct{}
}

func newConn(netConn net.Conn, options *connOptions, m *metrics) *conn {
	outgoing := make(chan *irctext.Message, 64)
	c := &conn{
		net:      netConn,
		br:       bufio.NewReaderSize(netConn, maxLineBuffer),
		logger:   options.Logger,
		debug:    options.Debug,
		metrics:  m,
		outgoing: outgoing,
		wdone:    make(chan struct{}),
	}

	var limiter *rate.Limiter
	if options.RateLimitDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(options.RateLimitDelay), options.RateLimitBurst)
	}

	go func() {
		defer close(c.wdone)
		for msg := range outgoing {
			if limiter != nil {
				if err := limiter.Wait(context.Background()); err != nil {
					break
				}
			}
			line := msg.String()
			if len(line)+2 > maxMessageLength {
				c.logger.Printf("dropping overlong message (%d bytes): %q...", len(line)+2, truncate(line, 64))
				continue
			}
			if err := c.writeMessage(line); err != nil {
				c.logger.Printf("failed to write message: %v", err)
				break
			}
		}
		// Drain the outgoing channel to prevent SendMessage from blocking.
		for range outgoing {
		}
	}()

	return c
}

func (c *conn) writeMessage(line string) error {
	if c.debug {
		c.logger.Printf("sent: %v", line)
	}
	c.net.SetWriteDeadline(time.Now().Add(writeTimeout))
	_, err := c.net.Write([]byte(line + "\r\n"))
	if err == nil && c.metrics != nil {
		c.metrics.messagesSent.Inc()
	}
	return err
}

// ReadMessage reads and types the next line. Per-line parse failures are
// returned as *ParseLineError; the stream remains usable afterwards.
func (c *conn) ReadMessage() (*irctext.Message, error) {
	line, err := c.readLine()
	if err != nil {
		return nil, err
	}
	if c.debug {
		c.logger.Printf("received: %v", line)
	}
	if c.metrics != nil {
		c.metrics.messagesReceived.Inc()
	}
	msg, err := irctext.ParseMessage(line)
	if err != nil {
		perr, ok := err.(*irctext.ParseError)
		if !ok {
			perr = &irctext.ParseError{Kind: irctext.ErrEncoding}
		}
		if c.metrics != nil {
			c.metrics.parseErrors.Inc()
		}
		return nil, &ParseLineError{Line: line, Err: perr}
	}
	return msg, nil
}

func (c *conn) readLine() (string, error) {
	slice, err := c.br.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		return "", &ParseLineError{
			Line: truncate(string(slice), 64),
			Err:  &irctext.ParseError{Kind: irctext.ErrLineTooLong},
		}
	}
	if err != nil {
		return "", err
	}
	line := strings.TrimRight(string(slice), "\r\n")
	return line, nil
}

// SendMessage queues an outgoing message. If the connection is closed the
// message is silently dropped.
func (c *conn) SendMessage(msg *irctext.Message) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return
	}
	c.outgoing <- msg
}

// Close closes the connection. It is safe to call from any goroutine and
// idempotent.
func (c *conn) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.outgoing)
	return c.net.Close()
}

func (c *conn) SetReadDeadline(t time.Time) error {
	return c.net.SetReadDeadline(t)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
