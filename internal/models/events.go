package models

import (
	"sync"

	"github.com/google/uuid"
)

// Table names used in change events.
const (
	TableTransactions = "transactions"
	TableBudgetItems  = "budget_items"
	TableTodos        = "todos"
)

// ChangeEvent signals that records of one household changed in a table.
//
// Delivery is at-least-once and may be redundant, consumers must
// recompute idempotently from the current store state.
type ChangeEvent struct {
	Table       string
	HouseholdID uuid.UUID
}

type changeHub struct {
	mu   sync.Mutex
	subs map[uint64]chan ChangeEvent
	next uint64
}

var hub = changeHub{subs: make(map[uint64]chan ChangeEvent)}

// SubscribeChanges registers a change subscriber and returns its event
// channel together with a cancel function. After cancel returns, the
// channel is closed and no further events are delivered.
func SubscribeChanges() (<-chan ChangeEvent, func()) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	id := hub.next
	hub.next++

	ch := make(chan ChangeEvent, 16)
	hub.subs[id] = ch

	cancel := func() {
		hub.mu.Lock()
		defer hub.mu.Unlock()

		if sub, ok := hub.subs[id]; ok {
			delete(hub.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// notifyChange delivers a change event to all subscribers.
//
// Sending never blocks the database hook that triggered it: when a
// subscriber's buffer is full, delivery finishes in a goroutine.
func notifyChange(table string, householdID uuid.UUID) {
	event := ChangeEvent{Table: table, HouseholdID: householdID}

	hub.mu.Lock()
	defer hub.mu.Unlock()

	for _, sub := range hub.subs {
		select {
		case sub <- event:
		default:
			go func(sub chan ChangeEvent) {
				defer func() {
					// The subscriber may cancel while the send is in
					// flight, which closes the channel
					_ = recover()
				}()
				sub <- event
			}(sub)
		}
	}
}
