// Package clock provides an injectable time source so that code which
// stamps timestamps can be tested against a fixed instant.
//
// Production code takes a Clock and is handed Real(). Tests hand it a
// FakeClock, which only moves when Advance or Set is called.
package clock

import "time"

// Clock abstracts the current time.
type Clock interface {
	Now() time.Time
}

// Real returns a Clock backed by time.Now.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
