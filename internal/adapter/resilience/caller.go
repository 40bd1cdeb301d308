// Package resilience guards remote lookups with a read-through cache, a circuit
// breaker, bounded retries and a fallback.
//
// The policies nest as cache → circuit breaker → retry → remote call. A cache hit
// never reaches the breaker. All retries of one call run inside a single breaker
// execution, so the breaker counts calls, not attempts. Any final failure other
// than "not found" is converted by the fallback into *domain.UnavailableError.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Fetch performs one remote lookup by identifier.
type Fetch[T any] func(ctx context.Context, id string) (T, error)

type Policy struct {
	RetryAttempts    uint
	RetryDelay       time.Duration
	Window           time.Duration
	CoolDown         time.Duration
	MinRequests      uint32
	FailureRatio     float64
	HalfOpenRequests uint32
}

func PolicyFromConfig(conf *config.Remote) Policy {
	return Policy{
		RetryAttempts:    conf.RetryAttempts,
		RetryDelay:       conf.RetryDelay,
		Window:           conf.BreakerWindow,
		CoolDown:         conf.BreakerTimeout,
		MinRequests:      conf.BreakerMinRequests,
		FailureRatio:     conf.BreakerFailureRatio,
		HalfOpenRequests: conf.BreakerHalfOpen,
	}
}

type Caller[T any] struct {
	dependency string
	operation  string
	fetch      Fetch[T]
	cache      port.Cache
	breaker    *gobreaker.CircuitBreaker[T]
	policy     Policy
	logger     *zap.Logger
}

// NewCaller builds a guarded lookup. dependency names the remote service in fallback
// messages, operation namespaces the cache keys.
func NewCaller[T any](dependency, operation string, fetch Fetch[T],
	cache port.Cache, policy Policy, logger *zap.Logger) *Caller[T] {
	if policy.RetryAttempts == 0 {
		policy.RetryAttempts = 1
	}

	c := &Caller[T]{
		dependency: dependency,
		operation:  operation,
		fetch:      fetch,
		cache:      cache,
		policy:     policy,
		logger:     logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        operation,
		MaxRequests: policy.HalfOpenRequests,
		Interval:    policy.Window,
		Timeout:     policy.CoolDown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < policy.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= policy.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		IsSuccessful: isSuccessful,
	})

	return c
}

// Call returns the cached value for id or performs the guarded remote lookup.
// Errors are either domain.ErrRemoteNotFound or *domain.UnavailableError.
func (c *Caller[T]) Call(ctx context.Context, id string) (T, error) {
	var zero T
	key := c.cache.GenerateKey(c.operation, id)

	var cached T
	ok, err := c.cache.Get(ctx, key, &cached)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return cached, nil
	}

	result, err := c.breaker.Execute(func() (T, error) {
		return retry.DoWithData(
			func() (T, error) { return c.fetch(ctx, id) },
			c.retryOptions(ctx, id)...,
		)
	})
	if err != nil {
		if errors.Is(err, domain.ErrRemoteNotFound) {
			return zero, err
		}
		return zero, c.fallback(id, err)
	}

	if err := c.cache.Set(ctx, key, result); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}

	return result, nil
}

func (c *Caller[T]) State() gobreaker.State {
	return c.breaker.State()
}

func (c *Caller[T]) retryOptions(ctx context.Context, id string) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(c.policy.RetryAttempts),
		retry.Delay(c.policy.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, domain.ErrRemoteNotFound)
		}),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("Retrying remote call",
				zap.String("dependency", c.dependency),
				zap.String("id", id),
				zap.Uint("attempt", n+1),
				zap.Error(err))
		}),
	}
}

func (c *Caller[T]) fallback(id string, err error) error {
	c.logger.Warn("Fallback triggered",
		zap.String("dependency", c.dependency),
		zap.String("id", id),
		zap.Error(err))

	return domain.NewUnavailableError(c.dependency, err)
}

func isSuccessful(err error) bool {
	return err == nil || errors.Is(err, domain.ErrRemoteNotFound)
}
