// Released under an MIT license. See LICENSE.

// Package frame provides nemo's environment: a chain of scopes.
//
// Closures hold a pointer to the frame they were created in. The frame is
// shared, never copied, so later assignments are visible to the closure.
package frame

import (
	"sort"
	"sync"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/struct/slot"
)

// T (frame) is one scope in the environment chain.
type T struct {
	sync.RWMutex
	previous *frame
	slots    map[string]*slot.T
}

type frame = T

// New creates a new frame enclosed by the frame p. The global frame has a nil p.
func New(p *frame) *frame {
	return &frame{
		previous: p,
		slots:    map[string]*slot.T{},
	}
}

// Assign binds k to c. If k is bound in this frame or any enclosing frame,
// the innermost binding is updated in place. Otherwise k is created here.
func (f *frame) Assign(k string, c cell.I) {
	if s := f.Lookup(k); s != nil {
		s.Set(c)

		return
	}

	f.Define(k, c)
}

// Define binds k to c in this frame, shadowing any enclosing binding.
func (f *frame) Define(k string, c cell.I) {
	f.Lock()
	defer f.Unlock()

	if s, ok := f.slots[k]; ok {
		s.Set(c)

		return
	}

	f.slots[k] = slot.New(c)
}

// Lookup returns the innermost slot for k or nil if k is unbound.
func (f *frame) Lookup(k string) *slot.T {
	for ; f != nil; f = f.previous {
		f.RLock()
		s, ok := f.slots[k]
		f.RUnlock()

		if ok {
			return s
		}
	}

	return nil
}

// Names returns the sorted names bound directly in this frame.
func (f *frame) Names() []string {
	f.RLock()
	defer f.RUnlock()

	ns := make([]string, 0, len(f.slots))
	for k := range f.slots {
		ns = append(ns, k)
	}

	sort.Strings(ns)

	return ns
}

// Previous returns the enclosing frame.
func (f *frame) Previous() *frame {
	return f.previous
}

// Resolve returns the value bound to k.
func (f *frame) Resolve(k string) (cell.I, bool) {
	s := f.Lookup(k)
	if s == nil {
		return nil, false
	}

	return s.Get(), true
}
