package store

// Phase - фаза жизненного цикла последней операции.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhasePending   Phase = "pending"
	PhaseFulfilled Phase = "fulfilled"
	PhaseRejected  Phase = "rejected"
)

// Operation - какая операция перевела стор в текущую фазу.
type Operation string

const (
	OpFetchAll  Operation = "fetchAll"
	OpFetchByID Operation = "fetchById"
	OpCreate    Operation = "create"
	OpUpdate    Operation = "update"
	OpDelete    Operation = "delete"
)

// Identifiable - единственное, что стор знает об элементе: его id.
type Identifiable interface {
	GetID() uint64
}

// State - читаемое состояние стора. Snapshot отдаёт копию.
type State[T Identifiable] struct {
	Items   []T       `json:"items"`
	Current *T        `json:"current_item"`
	Loading bool      `json:"loading"`
	Error   string    `json:"error"`
	Warning string    `json:"warning,omitempty"`
	Phase   Phase     `json:"phase"`
	LastOp  Operation `json:"last_op,omitempty"`

	// Settlements растёт на каждом fulfilled/rejected.
	Settlements uint64 `json:"-"`
}

func (s State[T]) clone() State[T] {
	out := s
	if s.Items != nil {
		out.Items = make([]T, len(s.Items))
		copy(out.Items, s.Items)
	}
	if s.Current != nil {
		current := *s.Current
		out.Current = &current
	}
	return out
}

// IndexOf возвращает позицию элемента с данным id или -1.
func (s State[T]) IndexOf(id uint64) int {
	for i, item := range s.Items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// Find ищет элемент в кэше по id.
func (s State[T]) Find(id uint64) (T, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s.Items[i], true
	}
	var zero T
	return zero, false
}

// Messages - запасные сообщения об ошибках на случай, когда ни сервер,
// ни транспорт не дали текста.
type Messages struct {
	FetchAll    string
	FetchByID   string
	Create      string
	Update      string
	Delete      string
	StaleUpdate string
}

const defaultStaleUpdate = "Dữ liệu đã thay đổi, vui lòng tải lại danh sách"
