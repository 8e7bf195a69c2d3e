package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	apperrors "asset-system/pkg/errors"
)

// Listener получает копию состояния после каждого перехода.
// Вызывается вне блокировки стора, по одному и в порядке переходов, поэтому
// из слушателя можно читать Snapshot и вызывать операции стора.
// Паника слушателя логируется и не влияет на состояние.
type Listener[T Identifiable] func(resource string, state State[T])

// Store - клиентский кэш одной серверной коллекции.
//
// Каждая операция проходит pending -> fulfilled | rejected. Переходы атомарны,
// вызов шлюза выполняется вне блокировки, поэтому порядок завершения, а не порядок
// вызова, определяет итоговое состояние. Отмены нет: контекст только передаётся
// в шлюз, и отменённый запрос завершается как rejected.
type Store[T Identifiable] struct {
	resource string
	gateway  Gateway[T]
	messages Messages
	logger   *zap.Logger

	mu        sync.Mutex
	state     State[T]
	listeners map[int]Listener[T]
	nextID    int

	// очередь снимков для слушателей; раздаёт её тот, кто выставил draining
	queue    []State[T]
	draining bool
}

func New[T Identifiable](resource string, gateway Gateway[T], messages Messages, logger *zap.Logger) *Store[T] {
	if messages.StaleUpdate == "" {
		messages.StaleUpdate = defaultStaleUpdate
	}
	return &Store[T]{
		resource:  resource,
		gateway:   gateway,
		messages:  messages,
		logger:    logger.Named("store").With(zap.String("resource", resource)),
		state:     State[T]{Phase: PhaseIdle},
		listeners: make(map[int]Listener[T]),
	}
}

func (s *Store[T]) Resource() string { return s.resource }

func (s *Store[T]) Messages() Messages { return s.messages }

// Snapshot возвращает копию текущего состояния.
func (s *Store[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe регистрирует слушателя, возвращает функцию отписки.
func (s *Store[T]) Subscribe(l Listener[T]) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// --- Переходы. Меняют state только они. ---

func (s *Store[T]) transition(mutate func(st *State[T])) {
	s.mu.Lock()
	mutate(&s.state)
	if len(s.listeners) == 0 {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, s.state.clone())
	if s.draining {
		// снимок раздаст текущий drain, в том числе при вызове из слушателя
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()
	s.drain()
}

// drain раздаёт снимки из очереди слушателям вне блокировки.
func (s *Store[T]) drain() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.queue = nil
			s.draining = false
			s.mu.Unlock()
			return
		}
		snap := s.queue[0]
		s.queue = s.queue[1:]
		listeners := make([]Listener[T], 0, len(s.listeners))
		for _, l := range s.listeners {
			listeners = append(listeners, l)
		}
		s.mu.Unlock()

		for _, l := range listeners {
			s.notify(l, snap)
		}
	}
}

func (s *Store[T]) notify(l Listener[T], snap State[T]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("паника в слушателе стора",
				zap.String("phase", string(snap.Phase)),
				zap.Any("panic", r),
			)
		}
	}()
	l(s.resource, snap)
}

func (s *Store[T]) pending(op Operation) {
	s.transition(func(st *State[T]) {
		st.Loading = true
		st.Error = ""
		st.Warning = ""
		st.Phase = PhasePending
		st.LastOp = op
	})
}

func (s *Store[T]) fulfilled(op Operation, apply func(st *State[T])) {
	s.transition(func(st *State[T]) {
		st.Loading = false
		st.Phase = PhaseFulfilled
		st.LastOp = op
		st.Settlements++
		if apply != nil {
			apply(st)
		}
	})
}

func (s *Store[T]) rejected(op Operation, message string) {
	s.transition(func(st *State[T]) {
		st.Loading = false
		st.Error = message
		st.Phase = PhaseRejected
		st.LastOp = op
		st.Settlements++
	})
}

// ClearError - явный сброс ошибки.
func (s *Store[T]) ClearError() {
	s.transition(func(st *State[T]) {
		st.Error = ""
		st.Warning = ""
	})
}

// ClearCurrent - явный сброс текущего элемента.
func (s *Store[T]) ClearCurrent() {
	s.transition(func(st *State[T]) {
		st.Current = nil
	})
}

// Run - общий каркас операции. call ходит во внешний мир, apply применяет
// результат к состоянию внутри перехода fulfilled. Паника в call превращается в rejected.
func (s *Store[T]) Run(ctx context.Context, op Operation, fallback string, call func(ctx context.Context) error, apply func(st *State[T])) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("паника в операции стора", zap.String("op", string(op)), zap.Any("panic", r))
			err = s.fail(op, fallback, fmt.Errorf("panic: %v", r))
		}
	}()

	s.pending(op)
	s.logger.Debug("операция запущена", zap.String("op", string(op)))

	if callErr := call(ctx); callErr != nil {
		return s.fail(op, fallback, callErr)
	}

	s.fulfilled(op, apply)
	s.logger.Debug("операция выполнена", zap.String("op", string(op)))
	return nil
}

func (s *Store[T]) fail(op Operation, fallback string, cause error) error {
	message := apperrors.Message(cause, fallback)
	s.rejected(op, message)
	s.logger.Warn("операция завершилась ошибкой",
		zap.String("op", string(op)),
		zap.String("message", message),
		zap.Error(cause),
	)
	return &OperationError{Resource: s.resource, Op: op, Message: message, Err: cause}
}

// --- CRUD ---

// FetchAll заменяет Items целиком ответом сервера.
func (s *Store[T]) FetchAll(ctx context.Context) ([]T, error) {
	var items []T
	err := s.Run(ctx, OpFetchAll, s.messages.FetchAll, func(ctx context.Context) error {
		var err error
		items, err = s.gateway.FetchAll(ctx)
		return err
	}, func(st *State[T]) {
		st.Items = cloneItems(items)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceAll - для отфильтрованных выборок: тот же эффект, что FetchAll, но другой источник.
func (s *Store[T]) ReplaceAll(ctx context.Context, fallback string, fetch func(ctx context.Context) ([]T, error)) ([]T, error) {
	var items []T
	err := s.Run(ctx, OpFetchAll, fallback, func(ctx context.Context) error {
		var err error
		items, err = fetch(ctx)
		return err
	}, func(st *State[T]) {
		st.Items = cloneItems(items)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store[T]) FetchByID(ctx context.Context, id uint64) (*T, error) {
	var item *T
	err := s.Run(ctx, OpFetchByID, s.messages.FetchByID, func(ctx context.Context) error {
		var err error
		item, err = nonEmpty(s.gateway.FetchByID(ctx, id))
		return err
	}, func(st *State[T]) {
		current := *item
		st.Current = &current
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Create добавляет канонический объект сервера в конец Items.
func (s *Store[T]) Create(ctx context.Context, payload any) (*T, error) {
	var item *T
	err := s.Run(ctx, OpCreate, s.messages.Create, func(ctx context.Context) error {
		var err error
		item, err = nonEmpty(s.gateway.Create(ctx, payload))
		return err
	}, func(st *State[T]) {
		st.Items = append(st.Items, *item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Update заменяет элемент на месте. Если элемента нет в кэше - Error пуст,
// но выставляется Warning.
func (s *Store[T]) Update(ctx context.Context, id uint64, patch any) (*T, error) {
	var item *T
	err := s.Run(ctx, OpUpdate, s.messages.Update, func(ctx context.Context) error {
		var err error
		item, err = nonEmpty(s.gateway.Update(ctx, id, patch))
		return err
	}, func(st *State[T]) {
		s.applyReplace(st, *item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Replace - применить обновлённый сервером элемент (используется операциями вроде approve).
func (s *Store[T]) Replace(ctx context.Context, op Operation, fallback string, call func(ctx context.Context) (*T, error)) (*T, error) {
	var item *T
	err := s.Run(ctx, op, fallback, func(ctx context.Context) error {
		var err error
		item, err = nonEmpty(call(ctx))
		return err
	}, func(st *State[T]) {
		s.applyReplace(st, *item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Store[T]) applyReplace(st *State[T], item T) {
	id := item.GetID()
	if i := st.IndexOf(id); i >= 0 {
		st.Items[i] = item
	} else {
		st.Warning = s.messages.StaleUpdate
		s.logger.Warn("обновлённый элемент отсутствует в кэше", zap.Uint64("id", id))
	}
	if st.Current != nil && (*st.Current).GetID() == id {
		current := item
		st.Current = &current
	}
}

// Delete удаляет элемент по id. Ответ {success:false} считается отказом.
func (s *Store[T]) Delete(ctx context.Context, id uint64, reason string) error {
	return s.Run(ctx, OpDelete, s.messages.Delete, func(ctx context.Context) error {
		res, err := s.gateway.Delete(ctx, id, reason)
		if err != nil {
			return err
		}
		if !res.Success {
			if res.Message != "" {
				return &apperrors.APIError{Message: res.Message}
			}
			return apperrors.ErrEmptyResponse
		}
		return nil
	}, func(st *State[T]) {
		if i := st.IndexOf(id); i >= 0 {
			st.Items = append(st.Items[:i:i], st.Items[i+1:]...)
		}
		if st.Current != nil && (*st.Current).GetID() == id {
			st.Current = nil
		}
	})
}

func nonEmpty[T any](item *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.ErrEmptyResponse
	}
	return item, nil
}

func cloneItems[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
