package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"najdimajstra/internal/model"
)

// SubjectTurnProcessed is published after every answered user turn
const SubjectTurnProcessed = "triage.turn.processed"

// TurnProcessed describes one answered turn for downstream consumers
type TurnProcessed struct {
	SessionID    string          `json:"session_id"`
	Category     model.Category  `json:"category"`
	Language     model.Language  `json:"language"`
	Signals      model.SignalSet `json:"signals"`
	CandidateIDs []string        `json:"candidate_ids"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Publisher emits turn events
type Publisher interface {
	PublishTurn(event TurnProcessed) error
	Close()
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) PublishTurn(TurnProcessed) error { return nil }
func (NopPublisher) Close()                          {}

// NATSPublisher publishes turn events to NATS
type NATSPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

// NewNATSPublisher connects to url. Connection failures at start-up are
// retried in the background by the client.
func NewNATSPublisher(url, token string, logger *zap.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("najdimajstra-triage"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
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

	return &NATSPublisher{conn: nc, logger: logger}, nil
}

// PublishTurn publishes event on SubjectTurnProcessed
func (p *NATSPublisher) PublishTurn(event TurnProcessed) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal turn event: %w", err)
	}
	if err := p.conn.Publish(SubjectTurnProcessed, payload); err != nil {
		return fmt.Errorf("publish %s: %w", SubjectTurnProcessed, err)
	}
	return nil
}

// Close drains pending messages and closes the connection
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
