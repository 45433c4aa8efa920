package service

import (
	"context"
	"encoding/json"

	"emogo-be/internal/dto"
	"emogo-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drops the cached aggregation view whenever a record lands,
// so the interactive view never serves data older than the last ingest.
type consumerService struct {
	pubSub             *gochannel.GoChannel
	topicName          string
	aggregationService IAggregationService
	log                logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	aggregationService IAggregationService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:             pubSub,
		topicName:          topicName,
		aggregationService: aggregationService,
		log:                log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.RecordCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.aggregationService.InvalidateCache()

	cs.log.Debug("consumer", "aggregation cache invalidated", map[string]interface{}{
		"kind": payload.Kind,
		"id":   payload.Id,
	})
	msg.Ack()
}
