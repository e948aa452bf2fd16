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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := ircnet.NewClient(profile.Client)
	if _, err := client.Connect(ctx); err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	go drain(client)

	cmd := &ircnet.ListChannels{Channels: profile.Channels}
	if err := client.Run(ctx, cmd); err != nil {
		log.Fatalf("LIST failed: %v", err)
	}
	if err := cmd.Err(); err != nil {
		log.Fatalf("LIST failed: %v", err)
	}
	for _, entry := range cmd.Entries {
		fmt.Printf("%s\t%d\t%s\n", entry.Channel, entry.Clients, entry.Topic)
	}

	client.Shutdown(context.Background())
}

func drain(client *ircnet.Client) {
	for range client.Events() {
	}
}
