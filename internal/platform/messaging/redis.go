package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	fieldType    = "type"
	fieldPayload = "payload"
)

type RedisPublisher struct {
	client redis.Cmdable
	maxLen int64
}

// NewRedisPublisher returns a publisher that trims each stream to roughly
// maxLen entries; zero disables trimming.
func NewRedisPublisher(client redis.Cmdable, maxLen int64) *RedisPublisher {
	return &RedisPublisher{client: client, maxLen: maxLen}
}

func (p *RedisPublisher) Publish(ctx context.Context, stream string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			fieldType:    event.EventName(),
			fieldPayload: payload,
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("client.XAdd[%s]: %w", stream, err)
	}

	return nil
}

type Message struct {
	ID      string
	Stream  string
	Type    string
	Payload []byte
}

// Decode unmarshals the payload of msg into T.
func Decode[T any](msg Message) (T, error) {
	var v T
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("json.Unmarshal[%s]: %w", msg.Type, err)
	}
	return v, nil
}

type HandlerFunc func(ctx context.Context, msg Message) error

// ConsumerConfig.MinIdle is how long an entry must stay unacknowledged
// before it is claimed again; ClaimInterval is how often Run looks for such
// entries.
type ConsumerConfig struct {
	Stream        string
	Group         string
	Consumer      string
	Block         time.Duration
	Batch         int64
	MinIdle       time.Duration
	ClaimInterval time.Duration
}

type RedisConsumer struct {
	client *redis.Client
	cfg    ConsumerConfig
	log    *zap.Logger
}

func NewRedisConsumer(client *redis.Client, cfg ConsumerConfig, log *zap.Logger) *RedisConsumer {
	if cfg.Block <= 0 {
		cfg.Block = 5 * time.Second
	}
	if cfg.Batch <= 0 {
		cfg.Batch = 10
	}
	if cfg.MinIdle <= 0 {
		cfg.MinIdle = 30 * time.Second
	}
	if cfg.ClaimInterval <= 0 {
		cfg.ClaimInterval = cfg.MinIdle
	}
	return &RedisConsumer{
		client: client,
		cfg:    cfg,
		log:    log.With(zap.String("stream", cfg.Stream), zap.String("group", cfg.Group)),
	}
}

// Run consumes the stream until ctx is done. Entries left pending by an
// earlier run of the same consumer are retried first. While running, entries
// idle for MinIdle in the group are claimed and retried every ClaimInterval.
// An entry is acknowledged only after handle succeeds.
func (c *RedisConsumer) Run(ctx context.Context, handle HandlerFunc) error {
	if err := c.ensureGroup(ctx); err != nil {
		return err
	}

	if err := c.drainPending(ctx, handle); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	c.log.Info("consumer started")

	nextClaim := time.Now().Add(c.cfg.ClaimInterval)
	for {
		if ctx.Err() != nil {
			c.log.Info("consumer stopped")
			return nil
		}

		if now := time.Now(); !now.Before(nextClaim) {
			if err := c.reclaim(ctx, handle); err != nil && ctx.Err() == nil {
				c.log.Error("reclaim pending", zap.Error(err))
			}
			nextClaim = now.Add(c.cfg.ClaimInterval)
		}

		_, err := c.read(ctx, ">", c.cfg.Block, handle)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			c.log.Error("read stream", zap.Error(err))

			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
		}
	}
}

func (c *RedisConsumer) ensureGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("client.XGroupCreateMkStream[%s]: %w", c.cfg.Stream, err)
	}
	return nil
}

func (c *RedisConsumer) drainPending(ctx context.Context, handle HandlerFunc) error {
	start := "0"
	for {
		lastID, err := c.read(ctx, start, -1, handle)
		if err != nil {
			return err
		}
		if lastID == "" {
			return nil
		}
		start = lastID
	}
}

// reclaim takes over entries of the group that stayed unacknowledged for at
// least MinIdle, whichever consumer they were delivered to, and handles them.
func (c *RedisConsumer) reclaim(ctx context.Context, handle HandlerFunc) error {
	start := "0-0"
	for {
		entries, next, err := c.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   c.cfg.Stream,
			Group:    c.cfg.Group,
			Consumer: c.cfg.Consumer,
			MinIdle:  c.cfg.MinIdle,
			Start:    start,
			Count:    c.cfg.Batch,
		}).Result()
		if err != nil {
			return fmt.Errorf("client.XAutoClaim: %w", err)
		}

		for _, entry := range entries {
			c.process(ctx, c.cfg.Stream, entry, handle)
		}

		if next == "" || next == "0-0" {
			return nil
		}
		start = next
	}
}

// read fetches one batch starting at start and returns the id of the last
// entry seen, or "" when the batch was empty.
func (c *RedisConsumer) read(ctx context.Context, start string, block time.Duration, handle HandlerFunc) (string, error) {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		Streams:  []string{c.cfg.Stream, start},
		Count:    c.cfg.Batch,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("client.XReadGroup: %w", err)
	}

	var lastID string
	for _, stream := range streams {
		for _, entry := range stream.Messages {
			lastID = entry.ID
			c.process(ctx, stream.Stream, entry, handle)
		}
	}

	return lastID, nil
}

func (c *RedisConsumer) process(ctx context.Context, stream string, entry redis.XMessage, handle HandlerFunc) {
	msg := Message{
		ID:      entry.ID,
		Stream:  stream,
		Type:    stringValue(entry.Values[fieldType]),
		Payload: []byte(stringValue(entry.Values[fieldPayload])),
	}

	log := c.log.With(zap.String("messageId", msg.ID), zap.String("type", msg.Type))

	if err := handle(ctx, msg); err != nil {
		log.Error("handle message, left pending", zap.Error(err))
		return
	}

	if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID).Err(); err != nil {
		log.Error("client.XAck", zap.Error(err))
		return
	}

	log.Debug("message handled")
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return ""
	}
}
