package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/survey-manager/survey-backend/internal/surveys/domain"
)

const eventChannelPrefix = "surveys:events:"

// EventEnvelope is the wire form of a published event.
type EventEnvelope struct {
	Type     string          `json:"type"`
	SurveyID string          `json:"survey_id"`
	Payload  json.RawMessage `json:"payload"`
}

// RedisEventBus publishes survey events on one Pub/Sub channel per survey.
type RedisEventBus struct {
	client *redis.Client
}

func NewRedisEventBus(client *redis.Client) *RedisEventBus {
	return &RedisEventBus{client: client}
}

func EventChannel(surveyID string) string {
	return eventChannelPrefix + surveyID
}

func (b *RedisEventBus) Publish(ctx context.Context, e domain.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", e.EventName(), err)
	}
	data, err := json.Marshal(EventEnvelope{
		Type:     e.EventName(),
		SurveyID: e.SurveyID(),
		Payload:  payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	if err := b.client.Publish(ctx, EventChannel(e.SurveyID()), data).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", e.EventName(), err)
	}
	return nil
}

// Subscribe delivers every survey event until ctx is cancelled. Messages that
// do not decode are passed to onError and skipped.
func (b *RedisEventBus) Subscribe(ctx context.Context, handle func(EventEnvelope), onError func(error)) error {
	sub := b.client.PSubscribe(ctx, eventChannelPrefix+"*")
	defer sub.Close()

	// wait for the subscription to be confirmed before reading
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to survey events: %w", err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var env EventEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				if onError != nil {
					onError(fmt.Errorf("bad event on %s: %w", msg.Channel, err))
				}
				continue
			}
			handle(env)
		}
	}
}
