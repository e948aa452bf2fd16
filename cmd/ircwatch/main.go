package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"git.sr.ht/~edsample/ircnet"
	"git.sr.ht/~edsample/ircnet/config"
	"git.sr.ht/~edsample/ircnet/irctext"
)

var (
	configPath = flag.String("config", "irc.conf", "path to the connection profile")
	debug      = flag.Bool("debug", false, "log sent and received lines")
)

func main() {
	flag.Parse()

	profile, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	profile.Client.Debug = *debug
	if len(profile.Channels) == 0 {
		log.Fatalf("no channels configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := ircnet.NewClient(profile.Client)
	if _, err := client.Connect(ctx); err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	go func() {
		if _, err := client.Join(ctx, profile.Channels, profile.Keys); err != nil {
			log.Printf("join failed: %v", err)
			client.Quit("")
		}
	}()

	for ev := range client.Events() {
		switch ev := ev.(type) {
		case ircnet.JoinedEvent:
			fmt.Printf("* joined %v (%d users)\n", ev.Channel, len(ev.Users))
		case ircnet.MessageEvent:
			printMessage(ev.Message)
		case ircnet.ParseErrorEvent:
			log.Printf("parse error: %v", ev.Err)
		case ircnet.DisconnectedEvent:
			fmt.Println("* disconnected")
		}
	}
}

func printMessage(msg *irctext.Message) {
	from := "?"
	if msg.Source != nil {
		if msg.Source.IsServer() {
			from = string(msg.Source.Server)
		} else {
			from = string(msg.Source.Nick)
		}
	}
	switch m := msg.Payload.(type) {
	case *irctext.Privmsg:
		fmt.Printf("<%s> %s\n", from, m.Text)
	case *irctext.Notice:
		fmt.Printf("-%s- %s\n", from, m.Text)
	case *irctext.Join:
		fmt.Printf("* %s joined\n", from)
	case *irctext.Part:
		fmt.Printf("* %s left\n", from)
	case *irctext.Quit:
		fmt.Printf("* %s quit (%s)\n", from, m.Reason)
	case *irctext.Topic:
		if m.Topic != nil {
			fmt.Printf("* %s set the topic to %q\n", from, *m.Topic)
		}
	}
}
