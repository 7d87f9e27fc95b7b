package overscroll

import (
	"sync"
	"time"
)

// program is a lazily compiled, process-shareable shader program. The first
// load compiles under the write lock; every later load only takes the read
// lock. A failed compile is cached like a successful one so a broken source
// is not recompiled on every frame.
type program[T any] struct {
	name    string
	compile func() (T, error)
	release func(T)

	mu       sync.RWMutex
	ready    bool
	handle   T
	err      error
	attempts int
}

func newProgram[T any](name string, compile func() (T, error), release func(T)) *program[T] {
	return &program[T]{name: name, compile: compile, release: release}
}

// load returns the compiled program, compiling it on first use. Concurrent
// callers arriving before the first compile finishes block until it does.
func (p *program[T]) load() (T, error) {
	p.mu.RLock()
	if p.ready {
		h, err := p.handle, p.err
		p.mu.RUnlock()
		return h, err
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		start := time.Now()
		p.handle, p.err = p.compile()
		p.attempts++
		p.ready = true
		if p.err != nil {
			Logger().Warn("shader compile failed", "program", p.name, "err", p.err)
		} else {
			Logger().Debug("shader compiled", "program", p.name, "elapsed", time.Since(start))
		}
	}
	return p.handle, p.err
}

// compiles returns how many times the program has been compiled.
func (p *program[T]) compiles() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.attempts
}

// reset forgets the compiled program so the next load recompiles. The
// previous handle is passed to release, if any. Instances created before the
// reset keep referring to the old handle.
func (p *program[T]) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready && p.err == nil && p.release != nil {
		p.release(p.handle)
	}
	var zero T
	p.handle, p.err, p.ready = zero, nil, false
}
