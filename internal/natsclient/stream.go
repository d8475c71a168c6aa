package natsclient

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	// StreamAccessEvents is the durable stream that captures every outbox
	// event: attempts, decisions, commands and policy changes.
	StreamAccessEvents = "ACCESS_EVENTS"
	// SubjectAccessEvents is the wildcard subject hierarchy for outbox messages.
	SubjectAccessEvents = "access.evt.>"
	// subjectAccessEventsPrefix prefixes per-organization publish subjects.
	subjectAccessEventsPrefix = "access.evt."

	// StreamAuditDLQ holds envelopes the audit consumer could not process.
	StreamAuditDLQ = "AUDIT_DLQ"
	// SubjectAuditDLQ is the dead-letter subject for audit envelopes.
	SubjectAuditDLQ = "audit.dlq"

	// StreamAuditParking holds envelopes that also failed the DLQ retry.
	// Rows land here for manual inspection only.
	StreamAuditParking = "AUDIT_PARKING"
	// SubjectAuditParking is the parking-lot subject.
	SubjectAuditParking = "audit.parking"
)

// SubjectForOrg returns the publish subject for one organization's events.
// The organization is the routing key: consumers see per-tenant ordering.
func SubjectForOrg(orgID string) string {
	return subjectAccessEventsPrefix + orgID
}

// ProvisionStreams idempotently creates the required JetStream streams.
func (c *Client) ProvisionStreams() error {
	streams := []*nats.StreamConfig{
		{
			Name:      StreamAccessEvents,
			Subjects:  []string{SubjectAccessEvents},
			Storage:   nats.FileStorage,
			Retention: nats.LimitsPolicy,
		},
		{
			Name:      StreamAuditDLQ,
			Subjects:  []string{SubjectAuditDLQ},
			Storage:   nats.FileStorage,
			Retention: nats.LimitsPolicy,
		},
		{
			Name:      StreamAuditParking,
			Subjects:  []string{SubjectAuditParking},
			Storage:   nats.FileStorage,
			Retention: nats.LimitsPolicy,
		},
	}

	for _, cfg := range streams {
		if err := c.provisionStream(cfg); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) provisionStream(cfg *nats.StreamConfig) error {
	_, err := c.JS.StreamInfo(cfg.Name)
	if err == nil {
		c.Log.Info("NATS stream exists", zap.String("stream", cfg.Name))
		return nil
	}

	if err != nats.ErrStreamNotFound {
		return fmt.Errorf("failed to check stream info: %w", err)
	}

	if _, err := c.JS.AddStream(cfg); err != nil {
		return fmt.Errorf("failed to create stream %s: %w", cfg.Name, err)
	}

	c.Log.Info("NATS stream provisioned", zap.String("stream", cfg.Name))
	return nil
}
