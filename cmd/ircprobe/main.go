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

var probes = []ircnet.ProbeKind{
	ircnet.ProbeAdmin,
	ircnet.ProbeVersion,
	ircnet.ProbeLinks,
	ircnet.ProbeInfo,
	ircnet.ProbeLusers,
	ircnet.ProbeMotd,
}

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
	connected, err := client.Connect(ctx)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	go func() {
		for range client.Events() {
		}
	}()

	enc := json.NewEncoder(os.Stdout)
	enc.Encode(map[string]interface{}{"connected": connected})

	for _, kind := range probes {
		cmd := &ircnet.Probe{Kind: kind}
		if err := client.Run(ctx, cmd); err != nil {
			log.Printf("probe %v failed: %v", kind, err)
			continue
		}
		if err := cmd.Err(); err != nil {
			log.Printf("probe %v failed: %v", kind, err)
			continue
		}
		enc.Encode(map[string]interface{}{string(kind): cmd.Replies})
	}

	client.Shutdown(context.Background())
}
