package messaging_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/platform/messaging"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"
)

type redisBusSuite struct {
	suite.Suite

	container *tcredis.RedisContainer
	client    *redis.Client
}

func TestRedisBusSuite(t *testing.T) {
	suite.Run(t, new(redisBusSuite))
}

func (suite *redisBusSuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error
	suite.container, err = tcredis.Run(ctx, "redis:7.4-alpine")
	suite.Require().NoError(err)

	connStr, err := suite.container.ConnectionString(ctx)
	suite.Require().NoError(err)

	opts, err := redis.ParseURL(connStr)
	suite.Require().NoError(err)

	suite.client = redis.NewClient(opts)
}

func (suite *redisBusSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		_ = testcontainers.TerminateContainer(suite.container)
	}
}

func (suite *redisBusSuite) TestPublishConsume() {
	t := suite.T()
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	stream := "test-" + gofakeit.UUID()
	event := randomCheckoutEvent()

	pub := messaging.NewRedisPublisher(suite.client, 1000)
	require.NoError(t, pub.Publish(ctx, stream, event))

	consumer := messaging.NewRedisConsumer(suite.client, messaging.ConsumerConfig{
		Stream:   stream,
		Group:    "ordering",
		Consumer: "ordering-1",
		Block:    100 * time.Millisecond,
	}, zap.NewNop())

	received := make(chan messaging.BasketCheckoutEvent, 1)
	done := make(chan error, 1)
	go func() {
		done <- consumer.Run(ctx, func(_ context.Context, msg messaging.Message) error {
			got, err := messaging.Decode[messaging.BasketCheckoutEvent](msg)
			if err != nil {
				return err
			}
			received <- got
			return nil
		})
	}()

	select {
	case got := <-received:
		if diff := cmp.Diff(event, got, decimalComparer()); diff != "" {
			t.Errorf("event mismatch (-want +got):\n%s", diff)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("event was not consumed")
	}

	cancel()
	require.NoError(t, <-done)

	pending, err := suite.client.XPending(context.Background(), stream, "ordering").Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}

func (suite *redisBusSuite) TestFailedMessageIsRetried() {
	t := suite.T()

	stream := "test-" + gofakeit.UUID()
	cfg := messaging.ConsumerConfig{
		Stream:   stream,
		Group:    "ordering",
		Consumer: "ordering-1",
		Block:    100 * time.Millisecond,
	}

	pub := messaging.NewRedisPublisher(suite.client, 0)
	require.NoError(t, pub.Publish(t.Context(), stream, randomCheckoutEvent()))

	var attempts atomic.Int32
	run := func(handle messaging.HandlerFunc, until func() bool) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- messaging.NewRedisConsumer(suite.client, cfg, zap.NewNop()).Run(ctx, handle) }()

		require.Eventually(t, until, 10*time.Second, 50*time.Millisecond)
		cancel()
		require.NoError(t, <-done)
	}

	run(func(context.Context, messaging.Message) error {
		attempts.Add(1)
		return errors.New("database is down")
	}, func() bool { return attempts.Load() == 1 })

	pending, err := suite.client.XPending(t.Context(), stream, "ordering").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.Count)

	run(func(context.Context, messaging.Message) error {
		attempts.Add(1)
		return nil
	}, func() bool { return attempts.Load() == 2 })

	pending, err = suite.client.XPending(t.Context(), stream, "ordering").Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}

func (suite *redisBusSuite) TestFailedMessageIsRetriedWhileRunning() {
	t := suite.T()
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	stream := "test-" + gofakeit.UUID()
	consumer := messaging.NewRedisConsumer(suite.client, messaging.ConsumerConfig{
		Stream:        stream,
		Group:         "ordering",
		Consumer:      "ordering-1",
		Block:         100 * time.Millisecond,
		MinIdle:       200 * time.Millisecond,
		ClaimInterval: 100 * time.Millisecond,
	}, zap.NewNop())

	pub := messaging.NewRedisPublisher(suite.client, 0)
	require.NoError(t, pub.Publish(ctx, stream, randomCheckoutEvent()))

	var attempts atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- consumer.Run(ctx, func(context.Context, messaging.Message) error {
			if attempts.Add(1) == 1 {
				return errors.New("database is down")
			}
			return nil
		})
	}()

	require.Eventually(t, func() bool {
		if attempts.Load() < 2 {
			return false
		}
		pending, err := suite.client.XPending(ctx, stream, "ordering").Result()
		return err == nil && pending.Count == 0
	}, 10*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(2), attempts.Load())
}

func (suite *redisBusSuite) TestIdleMessageOfOtherConsumerIsClaimed() {
	t := suite.T()
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	stream := "test-" + gofakeit.UUID()
	require.NoError(t, suite.client.XGroupCreateMkStream(ctx, stream, "ordering", "0").Err())

	pub := messaging.NewRedisPublisher(suite.client, 0)
	require.NoError(t, pub.Publish(ctx, stream, randomCheckoutEvent()))

	// delivered to a consumer that never acknowledges it
	_, err := suite.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    "ordering",
		Consumer: "ordering-gone",
		Streams:  []string{stream, ">"},
		Count:    1,
	}).Result()
	require.NoError(t, err)

	consumer := messaging.NewRedisConsumer(suite.client, messaging.ConsumerConfig{
		Stream:        stream,
		Group:         "ordering",
		Consumer:      "ordering-1",
		Block:         100 * time.Millisecond,
		MinIdle:       100 * time.Millisecond,
		ClaimInterval: 100 * time.Millisecond,
	}, zap.NewNop())

	var handled atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- consumer.Run(ctx, func(context.Context, messaging.Message) error {
			handled.Add(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool {
		pending, err := suite.client.XPending(ctx, stream, "ordering").Result()
		return err == nil && pending.Count == 0
	}, 10*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), handled.Load())
}

func randomCheckoutEvent() messaging.BasketCheckoutEvent {
	e := messaging.BasketCheckoutEvent{
		IntegrationEvent: messaging.NewIntegrationEvent("BasketCheckoutEvent"),
		UserName:         gofakeit.Username(),
		CustomerID:       uuid.New(),
		TotalPrice:       decimal.RequireFromString("1349.99"),
		FirstName:        gofakeit.FirstName(),
		LastName:         gofakeit.LastName(),
		EmailAddress:     gofakeit.Email(),
		AddressLine:      gofakeit.Street(),
		Country:          gofakeit.Country(),
		State:            gofakeit.State(),
		ZipCode:          gofakeit.Zip(),
		CardName:         gofakeit.Name(),
		CardNumber:       gofakeit.CreditCardNumber(nil),
		Expiration:       gofakeit.CreditCardExp(),
		CVV:              gofakeit.CreditCardCvv(),
		PaymentMethod:    1,
		Items: []messaging.BasketCheckoutItem{
			{ProductID: uuid.New(), ProductName: "IPhone X", Quantity: 1, Price: decimal.RequireFromString("999"), Color: "Black"},
			{ProductID: uuid.New(), ProductName: "Sony WH-1000XM4", Quantity: 1, Price: decimal.RequireFromString("350.99"), Color: "Silver"},
		},
	}
	return e
}

func decimalComparer() cmp.Option {
	return cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
}
