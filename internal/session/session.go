// Package session раздаёт живые калькуляторы удалённым клавиатурам и
// сериализует доставку событий каждому из них.
package session

import (
	"errors"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"deskcalc/internal/calculator"
)

var ErrNotFound = errors.New("session not found")

// Session — один живой калькулятор. Мьютекс сериализует события: движок
// требует строго последовательной доставки.
type Session struct {
	ID     string
	UserID int

	mu       sync.Mutex
	calc     *calculator.Calculator
	lastUsed time.Time
}

// Apply доставляет клавишу движку и возвращает новое состояние дисплея.
func (s *Session) Apply(key string) (calculator.RenderState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	return s.calc.Press(key)
}

// Render возвращает текущий дисплей без обработки события.
func (s *Session) Render() calculator.RenderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	return s.calc.Render()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Manager хранит сессии калькуляторов по идентификаторам.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	onEvent  func(sessionID, event string, s calculator.Snapshot)
}

// NewManager создаёт менеджер. Время жизни простаивающей сессии берётся из
// SESSION_TTL_MIN (в минутах), по умолчанию 30.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      time.Duration(getEnvOrDefaultInt("SESSION_TTL_MIN", 30)) * time.Minute,
	}
}

// SetEventHook задаёт совещательный хук нажатий для всех новых сессий.
func (m *Manager) SetEventHook(hook func(sessionID, event string, s calculator.Snapshot)) {
	m.onEvent = hook
}

// Create создаёт новый калькулятор для пользователя. Заодно выметаются
// просроченные сессии.
func (m *Manager) Create(userID int) *Session {
	m.sweep()

	s := &Session{
		ID:       uuid.New().String(),
		UserID:   userID,
		calc:     calculator.New(),
		lastUsed: time.Now(),
	}
	if m.onEvent != nil {
		id := s.ID
		hook := m.onEvent
		s.calc.OnEvent = func(event string, snap calculator.Snapshot) {
			hook(id, event, snap)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get возвращает сессию, если она существует и принадлежит пользователю.
func (m *Manager) Get(id string, userID int) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return nil, ErrNotFound
	}
	return s, nil
}

// Remove удаляет сессию пользователя.
func (m *Manager) Remove(id string, userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Len возвращает количество живых сессий.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) sweep() {
	if m.ttl <= 0 {
		return
	}
	deadline := time.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.idleSince().Before(deadline) {
			delete(m.sessions, id)
			log.Printf("Сессия %s удалена по таймауту простоя", id)
		}
	}
}

// getEnvOrDefaultInt получает значение переменной окружения или возвращает
// значение по умолчанию.
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Ошибка при преобразовании значения переменной %s", key)
	}
	return defaultValue
}
