package main

import (
	"testing"

	"github.com/atomicstack/tree-navigator/internal/app"
	"github.com/atomicstack/tree-navigator/internal/config"
	"github.com/atomicstack/tree-navigator/internal/menu"
)

func TestDescribeStreamsCoversEveryRole(t *testing.T) {
	roles := describeStreams()
	want := map[string]string{"keys": "stdin", "ui": "stderr", "payload": "stdout"}
	if len(roles) != len(want) {
		t.Fatalf("expected %d streams, got %d", len(want), len(roles))
	}
	for _, r := range roles {
		if want[r.Role] != r.Stream {
			t.Fatalf("expected role %q on %q, got %q", r.Role, want[r.Role], r.Stream)
		}
		if !r.IsTerminal && (r.Width != 0 || r.Height != 0) {
			t.Fatalf("expected no size for non-terminal %s, got %dx%d", r.Stream, r.Width, r.Height)
		}
	}
}

func TestStartupTracePayloadDescribesMenu(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			MenuPath:   "menu.yaml",
			Format:     "auto",
			Height:     8,
			Fullscreen: true,
		},
		Flags: map[string]string{"config": "menu.yaml"},
		Args:  []string{"-config", "menu.yaml", "-fullscreen"},
	}
	stats := menu.Stats{Nodes: 12, Leaves: 8, Depth: 3}

	payload := startupTracePayload(cfg, "yaml", stats)

	details, ok := payload["menu"].(menuDetails)
	if !ok {
		t.Fatalf("expected menu details in payload, got %T", payload["menu"])
	}
	if details.Path != "menu.yaml" || details.Format != "yaml" {
		t.Fatalf("expected resolved path and format, got %#v", details)
	}
	if details.Stats != stats {
		t.Fatalf("expected stats %#v, got %#v", stats, details.Stats)
	}
	render, ok := payload["render"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected render settings in payload")
	}
	if render["mode"] != "fullscreen" || render["height"] != 8 {
		t.Fatalf("unexpected render settings %#v", render)
	}
	if flags, ok := payload["flags"].(map[string]string); !ok || flags["config"] != "menu.yaml" {
		t.Fatalf("expected flags carried through, got %#v", payload["flags"])
	}
	if _, ok := payload["streams"].([]streamRole); !ok {
		t.Fatalf("expected stream roles in payload")
	}
}
