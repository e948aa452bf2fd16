package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"git.sr.ht/~edsample/ircnet"
	"git.sr.ht/~edsample/ircnet/config"
)

var (
	configPath = flag.String("config", "irc.conf", "path to the connection profile")
	debug      = flag.Bool("debug", false, "log sent and received lines")
)

// irclog streams every event as one JSON object per line.
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

	enc := json.NewEncoder(os.Stdout)
	for ev := range client.Events() {
		record := map[string]interface{}{}
		switch ev := ev.(type) {
		case ircnet.ConnectedEvent:
			record["connected"] = ev
		case ircnet.JoinedEvent:
			record["joined"] = ev
		case ircnet.MessageEvent:
			record["command"] = ev.Message.Raw().Command
			record["message"] = ev.Message.Payload
			if ev.Message.Source != nil {
				record["source"] = ev.Message.Source
			}
		case ircnet.ParseErrorEvent:
			record["parse_error"] = map[string]string{"line": ev.Line, "error": ev.Err.Error()}
		case ircnet.DisconnectedEvent:
			record["disconnected"] = true
		}
		if err := enc.Encode(record); err != nil {
			log.Fatalf("failed to encode event: %v", err)
		}
	}
}
