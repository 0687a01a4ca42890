package engine

import (
	"sync"
	"time"

	"github.com/nvkalinin/kalendar/store"
)

type Memory struct {
	mu    sync.RWMutex
	store map[store.Country]map[int]store.Months
}

func NewMemory() *Memory {
	return &Memory{
		store: make(map[store.Country]map[int]store.Months, len(store.Countries())),
	}
}

func (m *Memory) FindDay(c store.Country, y int, mon time.Month, d int) (*store.Day, bool) {
	month, ok := m.FindMonth(c, y, mon)
	if !ok {
		return nil, false
	}

	day, ok := month[d]
	if !ok {
		return nil, false
	}

	return &day, true
}

func (m *Memory) FindMonth(c store.Country, y int, mon time.Month) (store.Days, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	month, ok := m.store[c][y][mon]
	if !ok {
		return nil, false
	}

	return month.Copy(), true
}

func (m *Memory) FindYear(c store.Country, y int) (store.Months, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	year, ok := m.store[c][y]
	if !ok {
		return nil, false
	}

	return year.Copy(), true
}

func (m *Memory) PutYear(c store.Country, y int, data store.Months) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.store[c]; !ok {
		m.store[c] = make(map[int]store.Months, 2)
	}
	m.store[c][y] = data.Copy()
	return nil
}
