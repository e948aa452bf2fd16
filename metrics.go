package ircnet

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	messagesReceived prometheus.Counter
	messagesSent     prometheus.Counter
	parseErrors      prometheus.Counter
	connects         prometheus.Counter
}

func newMetrics() *metrics {
	return &metrics{
		messagesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ircnet_messages_received_total",
			Help: "Number of IRC messages read from the server",
		}),
		messagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ircnet_messages_sent_total",
			Help: "Number of IRC messages written to the server",
		}),
		parseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ircnet_parse_errors_total",
			Help: "Number of inbound lines rejected by the parser",
		}),
		connects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ircnet_connects_total",
			Help: "Number of completed registrations",
		}),
	}
}

// RegisterMetrics registers the client's counters with a Prometheus
// registry.
func (c *Client) RegisterMetrics(r prometheus.Registerer) error {
	for _, coll := range []prometheus.Collector{
		c.metrics.messagesReceived,
		c.metrics.messagesSent,
		c.metrics.parseErrors,
		c.metrics.connects,
	} {
		if err := r.Register(coll); err != nil {
			return err
		}
	}
	return nil
}
