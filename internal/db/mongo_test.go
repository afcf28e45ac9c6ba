package db

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sufiyanali07/erp-backend/internal/config"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

func newTestProvider() *Provider {
	cfg := &config.Config{}
	cfg.Database.URI = "mongodb://localhost:27017"
	cfg.Database.Name = "college_erp_test"
	cfg.Database.ConnectTimeout = "2s"
	cfg.Database.MaxPoolSize = 5
	return NewProvider(cfg, zerolog.Nop())
}

func TestAcquireSingleFlight(t *testing.T) {
	p := newTestProvider()

	var dials int32
	p.dial = func(ctx context.Context) (*mongo.Client, error) {
		atomic.AddInt32(&dials, 1)
		time.Sleep(50 * time.Millisecond)
		return &mongo.Client{}, nil
	}

	const callers = 10
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = p.Acquire(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
	}
	// All concurrent callers share the one in-flight dial.
	require.Equal(t, int32(1), atomic.LoadInt32(&dials))

	// A later caller reuses the cached client without dialing again.
	_, err := p.Acquire(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&dials))
}

func TestAcquireRetriesAfterFailure(t *testing.T) {
	p := newTestProvider()

	var dials int32
	p.dial = func(ctx context.Context) (*mongo.Client, error) {
		if atomic.AddInt32(&dials, 1) == 1 {
			return nil, errors.New("connection refused")
		}
		return &mongo.Client{}, nil
	}

	_, err := p.Acquire(context.Background())
	require.ErrorIs(t, err, apperrors.ErrConnection)

	// The failed attempt is cleared, so the next caller dials fresh.
	_, err = p.Acquire(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&dials))
}

func TestAcquireFailureSharedByWaiters(t *testing.T) {
	p := newTestProvider()

	var dials int32
	p.dial = func(ctx context.Context) (*mongo.Client, error) {
		atomic.AddInt32(&dials, 1)
		time.Sleep(50 * time.Millisecond)
		return nil, errors.New("connection refused")
	}

	const callers = 5
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = p.Acquire(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.ErrorIs(t, errs[i], apperrors.ErrConnection)
	}
	require.Equal(t, int32(1), atomic.LoadInt32(&dials))
}

func TestAcquireHonorsContext(t *testing.T) {
	p := newTestProvider()

	release := make(chan struct{})
	p.dial = func(ctx context.Context) (*mongo.Client, error) {
		<-release
		return &mongo.Client{}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.Acquire(ctx)
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Acquire did not return after context cancellation")
	}

	close(release)
}

func TestCloseWithoutConnection(t *testing.T) {
	p := newTestProvider()
	require.NoError(t, p.Close(context.Background()))
}
