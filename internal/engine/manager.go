package engine

import "sync"

// Manager keeps one Table per chat. The bot serves many chats at once;
// each table itself stays single-owner.
type Manager struct {
	tables map[int64]*Table
	mu     sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		tables: make(map[int64]*Table),
	}
}

func (m *Manager) Get(chatID int64) *Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tables[chatID]
}

// GetOrCreate returns the chat's table, seeding a new one with the
// starting balance on first use.
func (m *Manager) GetOrCreate(chatID int64, startBalance int) *Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tables[chatID]; ok {
		return t
	}
	t := NewTable(startBalance)
	m.tables[chatID] = t
	return t
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables, chatID)
}
