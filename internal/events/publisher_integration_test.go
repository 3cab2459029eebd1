//go:build integration

package events

import (
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
)

func skipWithoutNATS(t *testing.T) string {
	t.Helper()
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set, skipping integration test")
	}
	return url
}

func TestIntegration_AnalysisCompleted(t *testing.T) {
	natsURL := skipWithoutNATS(t)

	publisher, err := Connect(natsURL, os.Getenv("NATS_TOKEN"), slog.Default())
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer publisher.Close()

	nc, err := nats.Connect(natsURL)
	if err != nil {
		t.Fatalf("failed to connect subscriber: %v", err)
	}
	defer nc.Close()

	received := make(chan AnalysisEvent, 1)
	_, err = nc.Subscribe(SubjectAnalysisCompleted, func(msg *nats.Msg) {
		var ev AnalysisEvent
		json.Unmarshal(msg.Data, &ev)
		received <- ev
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	// Give subscription time to propagate
	time.Sleep(100 * time.Millisecond)

	if err := publisher.AnalysisCompleted(AnalysisEvent{Kind: "risk", RiskLevel: "HIGH", Score: 62}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case ev := <-received:
		if ev.Kind != "risk" || ev.RiskLevel != "HIGH" {
			t.Errorf("unexpected event %+v", ev)
		}
		if ev.RequestID == "" || ev.Timestamp == "" {
			t.Errorf("expected request id and timestamp filled in, got %+v", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}
