// Package pairlock serializes mutations on a pair of ids with a fixed set of striped mutexes.
package pairlock

import "sync"

const DefaultStripes = 64

type Locker struct {
	stripes []sync.Mutex
}

func New(stripes int) *Locker {
	if stripes <= 0 {
		stripes = DefaultStripes
	}
	return &Locker{stripes: make([]sync.Mutex, stripes)}
}

// Lock locks the ordered pair (a, b) and returns the matching unlock.
func (l *Locker) Lock(a, b int64) func() {
	m := &l.stripes[l.index(a, b)]
	m.Lock()
	return m.Unlock
}

// LockUnordered locks {a, b}: Lock(a, b) and Lock(b, a) share a stripe.
func (l *Locker) LockUnordered(a, b int64) func() {
	if a > b {
		a, b = b, a
	}
	return l.Lock(a, b)
}

func (l *Locker) index(a, b int64) int {
	h := uint64(a)*0x9E3779B97F4A7C15 ^ uint64(b)
	return int(h % uint64(len(l.stripes)))
}
