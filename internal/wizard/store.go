package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store потокобезопасное in-memory хранилище сессий мастера.
// Сессии эфемерны: всё долговременное состояние живет на backend,
// поэтому потеря сессий при рестарте сервиса допустима
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Machine
	ttl      time.Duration
}

// NewStore создает хранилище с заданным временем жизни сессии
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Machine),
		ttl:      ttl,
	}
}

// Put регистрирует машину и возвращает идентификатор сессии
func (s *Store) Put(m *Machine) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = m

	return id
}

// Get возвращает машину по идентификатору сессии
// Протухшие сессии удаляются лениво
func (s *Store) Get(id string) (*Machine, error) {
	s.mu.RLock()
	m, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if s.expired(m) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	return m, nil
}

// Delete удаляет сессию
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len возвращает количество живых сессий
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep удаляет протухшие сессии. Запускается периодически из main
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, m := range s.sessions {
		if s.expired(m) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper запускает периодическую очистку до закрытия stopCh
func (s *Store) RunSweeper(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-stopCh:
			return
		}
	}
}

func (s *Store) expired(m *Machine) bool {
	if s.ttl <= 0 {
		return false
	}
	return time.Since(m.CreatedAt()) > s.ttl
}
