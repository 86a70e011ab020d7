package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"seguridad/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type stubPool struct {
	stats sql.DBStats
}

func (p *stubPool) Stats() sql.DBStats {
	return p.stats
}

func TestPoolMonitor_Observe(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pool := &stubPool{stats: sql.DBStats{WaitCount: 3, WaitDuration: time.Second}}
	monitor := newPoolMonitor(pool, logger)
	ctx := context.Background()

	t.Run("no new waits is silent", func(t *testing.T) {
		buf.Reset()
		monitor.observe(ctx, sql.DBStats{OpenConnections: 4, InUse: 2, WaitCount: 3, WaitDuration: time.Second})

		assert.Empty(t, buf.String())
		assert.Equal(t, float64(4), testutil.ToFloat64(metrics.DBOpenConnections))
		assert.Equal(t, float64(2), testutil.ToFloat64(metrics.DBInUseConnections))
	})

	t.Run("short waits log at debug", func(t *testing.T) {
		buf.Reset()
		monitor.observe(ctx, sql.DBStats{WaitCount: 5, WaitDuration: time.Second + 10*time.Millisecond})

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "waits=2")
		assert.Contains(t, buf.String(), "avg_wait=5ms")
	})

	t.Run("long waits log at warn", func(t *testing.T) {
		buf.Reset()
		monitor.observe(ctx, sql.DBStats{WaitCount: 6, WaitDuration: 2 * time.Second})

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "waits=1")
		assert.Equal(t, float64(6), testutil.ToFloat64(metrics.DBWaitCount))
	})
}
