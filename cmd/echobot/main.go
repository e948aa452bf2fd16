package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.sr.ht/~edsample/ircnet"
	"git.sr.ht/~edsample/ircnet/config"
	"git.sr.ht/~edsample/ircnet/irctext"
)

var (
	configPath = flag.String("config", "irc.conf", "path to the connection profile")
	debug      = flag.Bool("debug", false, "log sent and received lines")
	delay      = flag.Duration("delay", 5*time.Second, "echo delay")
)

func main() {
	flag.Parse()

	profile, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	profile.Client.Debug = *debug

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := ircnet.NewClient(profile.Client)
	client.AddAutoResponder(ircnet.AutoResponderFunc(func(msg *irctext.Message, c *ircnet.Client) {
		pm, ok := msg.Payload.(*irctext.Privmsg)
		if !ok || msg.Source == nil || msg.Source.IsServer() {
			return
		}
		for _, target := range pm.Targets {
			reply := target
			if _, err := irctext.ParseChannel(target); err != nil {
				// A direct message: echo back to the sender instead.
				reply = string(msg.Source.Nick)
			}
			c.SendAfter(*delay, &irctext.Privmsg{Targets: []string{reply}, Text: pm.Text})
		}
	}))

	if _, err := client.Connect(ctx); err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	if len(profile.Channels) > 0 {
		go func() {
			if _, err := client.Join(ctx, profile.Channels, profile.Keys); err != nil {
				log.Printf("join failed: %v", err)
			}
		}()
	}

	for range client.Events() {
	}
}
