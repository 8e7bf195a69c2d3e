package listeners

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"asset-system/internal/events"
	"asset-system/pkg/eventbus"
)

// SettlementStats - счётчики завершённых операций по ресурсу.
type SettlementStats struct {
	Fulfilled int
	Rejected  int
	LastError string
}

// SettlementListener пишет завершения операций сторов в лог и ведёт счётчики.
type SettlementListener struct {
	logger *zap.Logger

	mu    sync.Mutex
	stats map[string]SettlementStats
}

func NewSettlementListener(logger *zap.Logger) *SettlementListener {
	return &SettlementListener{
		logger: logger.Named("settlements"),
		stats:  make(map[string]SettlementStats),
	}
}

func (l *SettlementListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.StoreSettledEventName, l.handleStoreSettled)
	l.logger.Debug("SettlementListener подписан на событие", zap.String("event", events.StoreSettledEventName))
}

func (l *SettlementListener) handleStoreSettled(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.StoreSettled)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}

	fields := []zap.Field{
		zap.String("resource", e.Resource),
		zap.String("op", string(e.Op)),
		zap.String("phase", string(e.Phase)),
		zap.Int("items", e.Items),
	}

	l.mu.Lock()
	st := l.stats[e.Resource]
	if e.Failed() {
		st.Rejected++
		st.LastError = e.Error
	} else {
		st.Fulfilled++
	}
	l.stats[e.Resource] = st
	l.mu.Unlock()

	switch {
	case e.Failed():
		l.logger.Warn("Операция завершилась ошибкой", append(fields, zap.String("error", e.Error))...)
	case e.Warning != "":
		l.logger.Warn("Операция выполнена с предупреждением", append(fields, zap.String("warning", e.Warning))...)
	default:
		l.logger.Info("Операция выполнена", fields...)
	}
	return nil
}

// Stats - копия счётчиков.
func (l *SettlementListener) Stats() map[string]SettlementStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]SettlementStats, len(l.stats))
	for k, v := range l.stats {
		out[k] = v
	}
	return out
}
