package service

import "time"

func SetCartClock(cs CartService, now func() time.Time) {
	cs.(*cartService).now = now
}
