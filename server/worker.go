// Package server provides a single-writer front for the symbol
// registry, for embedders that prefer message passing over sharing the
// registry's lock across subsystems.
package server

import (
	"fmt"

	"github.com/EDubaj/MacRuby/symbol"
)

// request represents a unit of work to be executed on the worker goroutine.
type request struct {
	fn   func(*symbol.Registry) interface{}
	done chan result
}

// result holds the return value from a registry operation.
type result struct {
	value interface{}
	err   error
}

// Worker serializes all registry access through a single goroutine.
// Handlers that share one registry across concurrent subsystems can go
// through the worker instead of relying on callers to interleave safely.
type Worker struct {
	reg      *symbol.Registry
	requests chan request
	quit     chan struct{}
}

// NewWorker creates a Worker and starts the processing goroutine.
func NewWorker(reg *symbol.Registry) *Worker {
	w := &Worker{
		reg:      reg,
		requests: make(chan request, 64),
		quit:     make(chan struct{}),
	}
	go w.loop()
	return w
}

// loop processes requests sequentially on a dedicated goroutine.
func (w *Worker) loop() {
	for {
		select {
		case req := <-w.requests:
			req.done <- w.execute(req.fn)
		case <-w.quit:
			return
		}
	}
}

// execute runs a function on the registry, recovering from panics.
func (w *Worker) execute(fn func(*symbol.Registry) interface{}) result {
	var res result
	func() {
		defer func() {
			if r := recover(); r != nil {
				res.err = fmt.Errorf("%v", r)
			}
		}()
		res.value = fn(w.reg)
	}()
	return res
}

// Do submits a function for execution on the worker goroutine and
// blocks until it completes. Returns the result and any error
// (including panics).
func (w *Worker) Do(fn func(*symbol.Registry) interface{}) (interface{}, error) {
	req := request{
		fn:   fn,
		done: make(chan result, 1),
	}
	w.requests <- req
	res := <-req.done
	return res.value, res.err
}

// Intern interns name on the worker goroutine.
func (w *Worker) Intern(name string) (symbol.ID, error) {
	v, err := w.Do(func(reg *symbol.Registry) interface{} {
		return reg.Intern(name)
	})
	if err != nil {
		return symbol.ID{}, err
	}
	return v.(symbol.ID), nil
}

// Resolve resolves id on the worker goroutine. An unknown ID yields
// ("", false), not an error.
func (w *Worker) Resolve(id symbol.ID) (string, bool, error) {
	type res struct {
		name string
		ok   bool
	}
	v, err := w.Do(func(reg *symbol.Registry) interface{} {
		name, ok := reg.Resolve(id)
		return res{name, ok}
	})
	if err != nil {
		return "", false, err
	}
	r := v.(res)
	return r.name, r.ok, nil
}

// Stop shuts down the worker goroutine.
func (w *Worker) Stop() {
	close(w.quit)
}

// Registry returns the underlying registry (for read-only access to
// fully-published records, which needs no serialization).
func (w *Worker) Registry() *symbol.Registry {
	return w.reg
}
