package service

import (
	"context"
	"encoding/json"

	"lms-presentation-be/internal/dto"
	"lms-presentation-be/internal/pkg/cache"
	"lms-presentation-be/internal/pkg/logger"
	"lms-presentation-be/internal/repository/specification"
	"lms-presentation-be/internal/repository/unitofwork"
	"lms-presentation-be/pkg/export"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	uowFactory  unitofwork.RepositoryFactory
	exporter    *export.Exporter
	exportCache cache.ExportCache
	logger      logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	exporter *export.Exporter,
	exportCache cache.ExportCache,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		uowFactory:  uowFactory,
		exporter:    exporter,
		exportCache: exportCache,
		logger:      log,
	}
}

// Consume subscribes to the pre-render topic and handles messages in the background
// until ctx is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RenderExportMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // poison message, retrying will not help
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	p, err := uow.PresentationRepository().FindOne(ctx, specification.ByID{ID: payload.PresentationId})
	if err != nil {
		cs.logger.Error("CONSUMER", "Failed to load presentation", map[string]interface{}{
			"presentation_id": payload.PresentationId,
			"error":           err.Error(),
		})
		msg.Nack()
		return
	}
	if p == nil {
		// deleted after it was queued
		msg.Ack()
		return
	}

	key := cache.ExportKey(p.Id, versionOf(p))
	if _, found, err := cs.exportCache.Get(ctx, key); err == nil && found {
		msg.Ack()
		return
	}

	data, err := cs.exporter.Export(*p)
	if err != nil {
		// rendering is deterministic, a retry would fail the same way
		cs.logger.Error("CONSUMER", "Failed to render presentation", map[string]interface{}{
			"presentation_id": p.Id,
			"error":           err.Error(),
		})
		msg.Ack()
		return
	}

	if err := cs.exportCache.Set(ctx, key, data); err != nil {
		cs.logger.Error("CONSUMER", "Failed to store rendered deck", map[string]interface{}{
			"presentation_id": p.Id,
			"error":           err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("CONSUMER", "Presentation pre-rendered", map[string]interface{}{
		"presentation_id": p.Id,
		"slides":          len(p.Slides),
	})
	msg.Ack()
}
