package state

import (
	"sync"
	"time"

	"github.com/salonberry/schedule_bot/internal/calendarview"
)

// Manager управляет состояниями чатов
type Manager struct {
	mu    sync.RWMutex
	chats map[int64]*ChatData
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		chats: make(map[int64]*ChatData),
	}
}

// chatData возвращает состояние чата, создавая его при первом обращении.
// Вызывается только под мьютексом.
func (m *Manager) chatData(chatID int64) *ChatData {
	data, exists := m.chats[chatID]
	if !exists {
		data = &ChatData{
			Data: make(map[string]interface{}),
			View: calendarview.NewViewState(time.Now()),
		}
		m.chats[chatID] = data
	}
	return data
}

// View возвращает состояние календарной панели чата.
// Панель живёт всё время жизни чата и не сбрасывается вместе с диалогом.
func (m *Manager) View(chatID int64) *calendarview.ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.chatData(chatID).View
}

// GetDialog возвращает текущий шаг диалога чата
func (m *Manager) GetDialog(chatID int64) DialogState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if data, exists := m.chats[chatID]; exists {
		return data.Dialog
	}
	return StateNone
}

// SetDialog устанавливает шаг диалога чата
func (m *Manager) SetDialog(chatID int64, dialog DialogState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.chatData(chatID).Dialog = dialog
}

// GetData возвращает временные данные диалога
func (m *Manager) GetData(chatID int64, key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if data, exists := m.chats[chatID]; exists {
		value, ok := data.Data[key]
		return value, ok
	}
	return nil, false
}

// SetData сохраняет временные данные диалога
func (m *Manager) SetData(chatID int64, key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.chatData(chatID).Data[key] = value
}

// ClearDialog сбрасывает диалог и его данные, панель календаря остаётся
func (m *Manager) ClearDialog(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if data, exists := m.chats[chatID]; exists {
		data.Dialog = StateNone
		data.Data = make(map[string]interface{})
	}
}

// Chats возвращает идентификаторы всех чатов с состоянием —
// для минутного обновления линии текущего времени
func (m *Manager) Chats() []int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	chats := make([]int64, 0, len(m.chats))
	for chatID := range m.chats {
		chats = append(chats, chatID)
	}
	return chats
}
