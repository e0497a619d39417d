// Package storage keeps the most recent sampling results for read-side
// consumers. Nothing is persisted: readings are memory-only by design.
package storage

import (
	"errors"
	"sync"

	"github.com/DrBitshift/statmon/model"
)

var ErrValueNotFound = errors.New("value not found")

// LatestStore is a mutex-guarded holder of the last Reading and the
// composed status text. It bridges the sampling goroutine and the HTTP
// handlers.
type LatestStore struct {
	mu      sync.RWMutex
	reading model.Reading
	text    string
	has     bool
}

func NewLatestStore() *LatestStore {
	return &LatestStore{}
}

// Store records the result of one completed sampling tick.
func (store *LatestStore) Store(r model.Reading, text string) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.reading = r
	store.text = text
	store.has = true
}

// Reading returns the last stored reading. ok is false before the first
// tick completes.
func (store *LatestStore) Reading() (model.Reading, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.reading, store.has
}

// Text returns the last composed status line, empty before the first tick.
func (store *LatestStore) Text() string {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.text
}

// Value returns a named derived value from the last reading: cpu, memory,
// swap, download or upload.
func (store *LatestStore) Value(name string) (float64, error) {
	r, ok := store.Reading()
	if !ok {
		return 0, ErrValueNotFound
	}

	switch name {
	case "cpu":
		if r.HasCPU {
			return r.CPUUsage, nil
		}
	case "memory":
		if r.HasMem {
			return r.MemUsage, nil
		}
	case "swap":
		if r.HasSwap {
			return r.SwapUsage, nil
		}
	case "download":
		if r.HasNet {
			return r.DownloadBps, nil
		}
	case "upload":
		if r.HasNet {
			return r.UploadBps, nil
		}
	}
	return 0, ErrValueNotFound
}
