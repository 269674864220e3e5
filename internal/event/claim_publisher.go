package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"claims-service/internal/models"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	claimsExchange         = "claims.events"
	routingKeyDecided      = "claim.decided"
	routingKeyManualReview = "claim.manual_review"
)

// ClaimDecisionEvent is the message published for every adjudicated claim.
type ClaimDecisionEvent struct {
	ClaimID        string             `json:"claim_id"`
	PatientName    string             `json:"patient_name,omitempty"`
	Status         models.ClaimStatus `json:"status"`
	ApprovedAmount float64            `json:"approved_amount"`
	Reasons        []string           `json:"reasons"`
	DecidedAt      time.Time          `json:"decided_at"`
}

// ClaimPublisher publishes claim decision events. A nil publisher is valid
// and drops everything, so the service can run without a broker.
type ClaimPublisher struct {
	conn *RabbitMQConnection
}

func NewClaimPublisher(conn *RabbitMQConnection) (*ClaimPublisher, error) {
	err := conn.Channel.ExchangeDeclare(
		claimsExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", claimsExchange, err)
	}

	return &ClaimPublisher{conn: conn}, nil
}

// PublishDecision emits the decision event; manual-review claims additionally
// go out under their own routing key for the review queue. Publishing is
// best-effort: failures are logged and never fail the submission.
func (p *ClaimPublisher) PublishDecision(ctx context.Context, evt ClaimDecisionEvent) {
	if p == nil {
		return
	}

	p.publish(ctx, routingKeyDecided, evt)
	if evt.Status == models.ClaimManualReview {
		p.publish(ctx, routingKeyManualReview, evt)
	}
}

func (p *ClaimPublisher) publish(ctx context.Context, routingKey string, evt ClaimDecisionEvent) {
	body, err := json.Marshal(evt)
	if err != nil {
		slog.Error("failed to marshal claim event", "claim_id", evt.ClaimID, "error", err)
		return
	}

	err = p.conn.Channel.PublishWithContext(ctx,
		claimsExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
	if err != nil {
		slog.Error("failed to publish claim event",
			"claim_id", evt.ClaimID,
			"routing_key", routingKey,
			"error", err)
		return
	}

	slog.Info("Published claim event", "claim_id", evt.ClaimID, "routing_key", routingKey)
}
