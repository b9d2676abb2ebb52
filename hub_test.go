package main

import (
	"testing"

	"github.com/google/uuid"
)

func TestHubTracksClients(t *testing.T) {
	hub := NewHub()
	if hub.HasClients() {
		t.Fatalf("a fresh hub must have no clients")
	}

	c := &Client{id: uuid.New(), hub: hub, send: make(chan []byte, 1)}
	hub.Register(c)
	if !hub.HasClients() {
		t.Fatalf("expected the registered client to be tracked")
	}

	hub.Unregister(c)
	if hub.HasClients() {
		t.Fatalf("expected no clients after unregister")
	}
	hub.Unregister(c)
}
