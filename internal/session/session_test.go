package session

import (
	"testing"
	"time"

	"deskcalc/internal/calculator"
)

func TestCreateAndApply(t *testing.T) {
	m := NewManager()

	s := m.Create(1)
	if s.ID == "" {
		t.Fatal("у сессии нет идентификатора")
	}

	if rs := s.Render(); rs.DisplayText != "0" || rs.ClearLabel != "AC" {
		t.Fatalf("начальный дисплей: %+v", rs)
	}

	for _, k := range []string{"2", "+", "3", "="} {
		if _, err := s.Apply(k); err != nil {
			t.Fatalf("Apply(%q): %v", k, err)
		}
	}
	if rs := s.Render(); rs.DisplayText != "5" {
		t.Errorf("дисплей после 2+3= равен %q, ожидалось 5", rs.DisplayText)
	}

	if _, err := s.Apply("bogus"); err == nil {
		t.Error("ожидалась ошибка для неизвестной клавиши")
	}
}

func TestOwnership(t *testing.T) {
	m := NewManager()
	s := m.Create(1)

	if _, err := m.Get(s.ID, 1); err != nil {
		t.Fatalf("Get для владельца: %v", err)
	}
	if _, err := m.Get(s.ID, 2); err != ErrNotFound {
		t.Errorf("Get чужой сессии: err = %v, ожидалось ErrNotFound", err)
	}
	if err := m.Remove(s.ID, 2); err != ErrNotFound {
		t.Errorf("Remove чужой сессии: err = %v, ожидалось ErrNotFound", err)
	}
	if err := m.Remove(s.ID, 1); err != nil {
		t.Errorf("Remove владельцем: %v", err)
	}
	if _, err := m.Get(s.ID, 1); err != ErrNotFound {
		t.Errorf("Get после удаления: err = %v, ожидалось ErrNotFound", err)
	}
}

func TestSweepExpired(t *testing.T) {
	m := NewManager()
	m.ttl = time.Minute

	stale := m.Create(1)
	stale.mu.Lock()
	stale.lastUsed = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	fresh := m.Create(1)

	if _, err := m.Get(stale.ID, 1); err != ErrNotFound {
		t.Errorf("просроченная сессия пережила sweep: err = %v", err)
	}
	if _, err := m.Get(fresh.ID, 1); err != nil {
		t.Errorf("живая сессия удалена: %v", err)
	}
	if got := m.Len(); got != 1 {
		t.Errorf("Len() = %d, ожидалось 1", got)
	}
}

func TestEventHook(t *testing.T) {
	m := NewManager()

	var gotSession, gotEvent string
	m.SetEventHook(func(sessionID, event string, s calculator.Snapshot) {
		gotSession, gotEvent = sessionID, event
	})

	s := m.Create(7)
	if _, err := s.Apply("9"); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if gotSession != s.ID || gotEvent != "digit" {
		t.Errorf("хук получил (%q, %q), ожидалось (%q, digit)", gotSession, gotEvent, s.ID)
	}
}
