package database

import (
	"errors"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

// ConnectionPoolMonitor periodically samples the connection pool, logs
// pressure and exports the numbers as prometheus gauges
type ConnectionPoolMonitor struct {
	db           *Manager
	logger       coreport.Logger
	gauges       *prometheus.GaugeVec
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor.
// Gauges are registered on registerer when it is not nil.
func NewConnectionPoolMonitor(db *Manager, logger coreport.Logger, registerer prometheus.Registerer) *ConnectionPoolMonitor {
	monitor := &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}

	if registerer != nil {
		gauges := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "user_leveling",
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Connection pool statistics by state.",
		}, []string{"state"})

		if err := registerer.Register(gauges); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				gauges = already.ExistingCollector.(*prometheus.GaugeVec)
			} else {
				logger.Warn("Failed to register connection pool metrics", map[string]any{"error": err.Error()})
				gauges = nil
			}
		}
		monitor.gauges = gauges
	}

	return monitor
}

// Start begins monitoring the connection pool
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

// GetMetrics returns the current connection pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}

	return *m.metricsCache
}

// collectMetrics collects current connection pool metrics
func (m *ConnectionPoolMonitor) collectMetrics() error {
	sqlDB, err := m.db.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()

	m.mutex.Lock()
	m.metricsCache = &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
	m.mutex.Unlock()

	if m.gauges != nil {
		m.gauges.WithLabelValues("open").Set(float64(stats.OpenConnections))
		m.gauges.WithLabelValues("idle").Set(float64(stats.Idle))
		m.gauges.WithLabelValues("in_use").Set(float64(stats.InUse))
		m.gauges.WithLabelValues("max_open").Set(float64(stats.MaxOpenConnections))
	}

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return nil
}
