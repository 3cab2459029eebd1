// Package events publishes analysis activity to NATS so downstream
// consumers (dashboards, digest builders) can react without polling the
// API. The publisher is optional; the service runs fine without a broker.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// SubjectAnalysisCompleted is the NATS subject for completed analyses.
const SubjectAnalysisCompleted = "insight.analysis.completed"

// AnalysisEvent is emitted after each successful analyzer invocation.
// Summary fields are per-kind: risk carries RiskLevel and Score, blindspot
// carries Findings, assumption carries Score and Findings, tags and
// similar carry Findings (result counts).
type AnalysisEvent struct {
	RequestID string `json:"request_id"`
	Kind      string `json:"kind"`
	RiskLevel string `json:"risk_level,omitempty"`
	Score     int    `json:"score,omitempty"`
	Findings  int    `json:"findings,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Publisher is a thin wrapper over a NATS connection.
type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// Connect dials NATS with retry-friendly options and returns a publisher.
func Connect(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

// AnalysisCompleted publishes ev on SubjectAnalysisCompleted, filling in
// the request id and timestamp when absent. A nil publisher is a no-op so
// callers don't need to branch on whether NATS is configured.
func (p *Publisher) AnalysisCompleted(ev AnalysisEvent) error {
	if p == nil {
		return nil
	}
	if ev.RequestID == "" {
		ev.RequestID = uuid.NewString()
	}
	if ev.Timestamp == "" {
		ev.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.conn.Publish(SubjectAnalysisCompleted, payload)
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.conn.Close()
}
