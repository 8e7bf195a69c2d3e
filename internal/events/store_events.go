package events

import (
	"time"

	"asset-system/internal/store"
)

const StoreSettledEventName = "store.settled"

// StoreSettled - операция стора завершилась (fulfilled или rejected).
type StoreSettled struct {
	Resource string
	Op       store.Operation
	Phase    store.Phase
	Error    string
	Warning  string
	Items    int
	At       time.Time
}

// Name - реализуем интерфейс eventbus.Event
func (e StoreSettled) Name() string {
	return StoreSettledEventName
}

func (e StoreSettled) Failed() bool {
	return e.Phase == store.PhaseRejected
}
