package observer

import "sync"

// 历史记录变更事件
const (
	EventAppend = "append"
	EventDelete = "delete"
	EventClear  = "clear"
)

type Observer interface {
	Update(event string, data interface{})
}

type Subject interface {
	Attach(o Observer)
	Notify(event string, data interface{})
}

// Observers is a Subject meant to be embedded.
type Observers struct {
	lock sync.RWMutex
	list []Observer
}

func (s *Observers) Attach(o Observer) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.list = append(s.list, o)
}

func (s *Observers) Notify(event string, data interface{}) {
	s.lock.RLock()
	list := make([]Observer, len(s.list))
	copy(list, s.list)
	s.lock.RUnlock()
	for _, o := range list {
		o.Update(event, data)
	}
}
