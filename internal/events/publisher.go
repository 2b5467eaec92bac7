package events

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/satya-supercluster/brand-voice-service/internal/domain"
)

// Tipos de evento emitidos por el servicio.
const (
	EventProfileCreated      = "PROFILE_CREATED"
	EventProfileDeleted      = "PROFILE_DELETED"
	EventValidationPerformed = "VALIDATION_PERFORMED"
)

// Publisher emite eventos de ciclo de vida best-effort: un fallo de
// publicacion nunca se propaga a la operacion que lo origino.
type Publisher interface {
	PublishProfileCreated(profile domain.BrandProfile)
	PublishProfileDeleted(customerID string)
	PublishValidationPerformed(customerID string, consistencyScore float64, verdict string)
	Close()
}

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher publica via Redis Pub/Sub detras de una cola acotada drenada
// por workers. Si la cola se llena, el evento se descarta y se cuenta; nunca
// se aplica backpressure al request.
type RedisPublisher struct {
	client          redisPublisher
	profileTopic    string
	validationTopic string
	queue           chan queuedEvent
	dropped         atomic.Int64
	closed          atomic.Bool
	wg              sync.WaitGroup
	logger          *zap.Logger
}

type queuedEvent struct {
	topic   string
	payload []byte
}

const (
	publishQueueSize = 256
	publishWorkers   = 4
	publishTimeout   = 2 * time.Second
)

func NewRedisPublisher(client *redis.Client, profileTopic, validationTopic string, logger *zap.Logger) *RedisPublisher {
	return newRedisPublisher(client, profileTopic, validationTopic, logger)
}

func newRedisPublisher(client redisPublisher, profileTopic, validationTopic string, logger *zap.Logger) *RedisPublisher {
	p := &RedisPublisher{
		client:          client,
		profileTopic:    profileTopic,
		validationTopic: validationTopic,
		queue:           make(chan queuedEvent, publishQueueSize),
		logger:          logger,
	}
	p.wg.Add(publishWorkers)
	for i := 0; i < publishWorkers; i++ {
		go p.drain()
	}
	return p
}

func (p *RedisPublisher) PublishProfileCreated(profile domain.BrandProfile) {
	p.enqueue(p.profileTopic, profileCreatedEvent{
		EventType:       EventProfileCreated,
		Timestamp:       eventTimestamp(),
		CustomerID:      profile.CustomerID,
		BrandName:       profile.BrandName,
		ProfileID:       profile.ID,
		ConfidenceScore: profile.ConfidenceScore,
	})
}

func (p *RedisPublisher) PublishProfileDeleted(customerID string) {
	p.enqueue(p.profileTopic, profileDeletedEvent{
		EventType:  EventProfileDeleted,
		Timestamp:  eventTimestamp(),
		CustomerID: customerID,
	})
}

func (p *RedisPublisher) PublishValidationPerformed(customerID string, consistencyScore float64, verdict string) {
	p.enqueue(p.validationTopic, validationPerformedEvent{
		EventType:        EventValidationPerformed,
		Timestamp:        eventTimestamp(),
		CustomerID:       customerID,
		ConsistencyScore: consistencyScore,
		Verdict:          verdict,
	})
}

// Close cierra la cola y espera a que los workers terminen de drenarla.
func (p *RedisPublisher) Close() {
	if p.closed.CompareAndSwap(false, true) {
		close(p.queue)
		p.wg.Wait()
	}
}

// Dropped devuelve cuantos eventos se descartaron por cola llena.
func (p *RedisPublisher) Dropped() int64 {
	return p.dropped.Load()
}

func (p *RedisPublisher) enqueue(topic string, event any) {
	if p.closed.Load() {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("marshal event failed", zap.Error(err))
		}
		return
	}
	select {
	case p.queue <- queuedEvent{topic: topic, payload: payload}:
	default:
		dropped := p.dropped.Add(1)
		if p.logger != nil {
			p.logger.Warn("event queue full, dropping event",
				zap.String("topic", topic),
				zap.Int64("dropped_total", dropped),
			)
		}
	}
}

func (p *RedisPublisher) drain() {
	defer p.wg.Done()
	for ev := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := p.client.Publish(ctx, ev.topic, ev.payload).Err()
		cancel()
		if err != nil && p.logger != nil {
			p.logger.Warn("event publish failed", zap.Error(err), zap.String("topic", ev.topic))
		}
	}
}

func eventTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

type profileCreatedEvent struct {
	EventType       string  `json:"eventType"`
	Timestamp       string  `json:"timestamp"`
	CustomerID      string  `json:"customerId"`
	BrandName       string  `json:"brandName"`
	ProfileID       string  `json:"profileId"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

type profileDeletedEvent struct {
	EventType  string `json:"eventType"`
	Timestamp  string `json:"timestamp"`
	CustomerID string `json:"customerId"`
}

type validationPerformedEvent struct {
	EventType        string  `json:"eventType"`
	Timestamp        string  `json:"timestamp"`
	CustomerID       string  `json:"customerId"`
	ConsistencyScore float64 `json:"consistencyScore"`
	Verdict          string  `json:"verdict"`
}

type disabledPublisher struct{}

// NewDisabledPublisher devuelve un publisher no-op para cuando no hay bus
// configurado.
func NewDisabledPublisher() Publisher {
	return disabledPublisher{}
}

func (disabledPublisher) PublishProfileCreated(domain.BrandProfile)          {}
func (disabledPublisher) PublishProfileDeleted(string)                       {}
func (disabledPublisher) PublishValidationPerformed(string, float64, string) {}
func (disabledPublisher) Close()                                             {}
