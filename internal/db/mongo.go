package db

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Sufiyanali07/erp-backend/internal/config"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

// dialFunc establishes a client session against the store.
type dialFunc func(ctx context.Context) (*mongo.Client, error)

// attempt is a single in-flight connection attempt shared by all callers
// that arrive before it resolves.
type attempt struct {
	done   chan struct{}
	client *mongo.Client
	err    error
}

// Provider hands out a single reusable database handle. The first Acquire
// dials the store; callers that arrive while the dial is in flight wait on
// the same attempt instead of racing duplicate connections. A failed dial
// clears the attempt so a later call can retry.
type Provider struct {
	uri            string
	name           string
	connectTimeout time.Duration
	maxPoolSize    uint64
	logger         zerolog.Logger

	dial dialFunc

	mu       sync.Mutex
	client   *mongo.Client
	inflight *attempt
}

// NewProvider creates a connection provider from configuration. No network
// activity happens until the first Acquire.
func NewProvider(cfg *config.Config, lgr zerolog.Logger) *Provider {
	p := &Provider{
		uri:            cfg.Database.URI,
		name:           cfg.Database.Name,
		connectTimeout: cfg.ConnectTimeout(),
		maxPoolSize:    uint64(cfg.Database.MaxPoolSize),
		logger:         lgr,
	}
	p.dial = p.connect
	return p
}

// Acquire returns the cached database handle, waiting on the shared
// connection attempt when one is in flight.
func (p *Provider) Acquire(ctx context.Context) (*mongo.Database, error) {
	p.mu.Lock()
	if p.client != nil {
		client := p.client
		p.mu.Unlock()
		return client.Database(p.name), nil
	}

	att := p.inflight
	if att == nil {
		att = &attempt{done: make(chan struct{})}
		p.inflight = att
		go p.run(att)
	}
	p.mu.Unlock()

	select {
	case <-att.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if att.err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrConnection, "database connection failed")
	}
	return att.client.Database(p.name), nil
}

// run resolves a connection attempt and publishes the result.
func (p *Provider) run(att *attempt) {
	ctx, cancel := context.WithTimeout(context.Background(), p.connectTimeout)
	defer cancel()

	client, err := p.dial(ctx)

	p.mu.Lock()
	att.client = client
	att.err = err
	if err != nil {
		// Clear the marker so a subsequent Acquire may retry.
		p.inflight = nil
		p.logger.Error().Err(err).Msg("Database connection attempt failed")
	} else {
		p.client = client
		p.inflight = nil
		p.logger.Info().Str("database", p.name).Msg("Database connection established")
	}
	p.mu.Unlock()

	close(att.done)
}

// connect dials the store and verifies the session with a ping.
func (p *Provider) connect(ctx context.Context) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(p.uri).
		SetMaxPoolSize(p.maxPoolSize).
		SetConnectTimeout(p.connectTimeout).
		SetPoolMonitor(p.poolMonitor())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}

// poolMonitor logs connection lifecycle transitions. Observability only;
// reconnection is handled by the driver.
func (p *Provider) poolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionCreated:
				p.logger.Debug().Str("address", evt.Address).Msg("Store connection created")
			case event.ConnectionClosed:
				p.logger.Debug().Str("address", evt.Address).Str("reason", evt.Reason).Msg("Store connection closed")
			case event.PoolCleared:
				p.logger.Warn().Str("address", evt.Address).Msg("Store connection pool cleared")
			}
		},
	}
}

// Close disconnects the underlying client. Safe to call when no connection
// was ever established.
func (p *Provider) Close(ctx context.Context) error {
	p.mu.Lock()
	client := p.client
	p.client = nil
	p.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
