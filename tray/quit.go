package tray

import "sync"

// quitHook runs fn at most once. Once disarmed it never runs.
type quitHook struct {
	once sync.Once
	fn   func()
}

func (q *quitHook) fire() {
	q.once.Do(func() {
		if q.fn != nil {
			q.fn()
		}
	})
}

// disarm is used when the owner shuts the tray down itself
func (q *quitHook) disarm() {
	q.once.Do(func() {})
}
