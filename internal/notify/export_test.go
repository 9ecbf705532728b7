package notify

import "time"

func (f *Feed) SetClock(now func() time.Time) {
	f.now = now
}

func (f *Feed) Sessions() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.sessions)
}
