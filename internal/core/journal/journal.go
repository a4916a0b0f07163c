// If you are AI: This file implements the decode journal: a bounded ring of
// the most recent decode outcomes, shared by the inspect and API services.
// Capacity is a power of 2 so ring indices are masked, not divided.

package journal

import (
	"sync"
	"time"
)

// Sources of journal records.
const (
	SourceAPI     = "api"
	SourceInspect = "inspect"
)

// Record is one decode outcome. Result carries the envelope's result field
// when the decode succeeded and that field is a string; Error carries the
// decode error text when it failed.
type Record struct {
	Time   time.Time
	Source string
	Size   int
	OK     bool
	Result string
	Error  string
}

// Journal is a fixed-capacity ring of decode records. When full, appends
// overwrite the oldest record. Both services append concurrently, so access
// is mutex-guarded; the head counter is free-running and only masked when
// indexing the ring.
type Journal struct {
	mu      sync.RWMutex
	records []Record
	size    uint32
	mask    uint32 // size - 1, ring index = head & mask
	head    uint64 // next write position, free-running
}

// New creates a journal holding at least capacity records. Capacity is
// rounded up to a power of 2; zero rounds up to 1.
func New(capacity uint32) *Journal {
	actual := uint32(1)
	for actual < capacity {
		actual <<= 1
	}
	return &Journal{
		records: make([]Record, actual),
		size:    actual,
		mask:    actual - 1,
	}
}

// Append records one decode outcome, overwriting the oldest record when the
// ring is full. It never blocks a decode on journal capacity.
func (j *Journal) Append(r Record) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records[uint32(j.head)&j.mask] = r
	j.head++
}

// Recent returns up to n records, newest first. n <= 0 returns everything
// the ring still holds. The returned slice is a copy.
func (j *Journal) Recent(n int) []Record {
	j.mu.RLock()
	defer j.mu.RUnlock()
	length := j.lenLocked()
	if n <= 0 || n > length {
		n = length
	}
	out := make([]Record, n)
	for i := 0; i < n; i++ {
		out[i] = j.records[uint32(j.head-1-uint64(i))&j.mask]
	}
	return out
}

// Len returns the number of records the ring currently holds.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.lenLocked()
}

// lenLocked computes the held record count. Callers hold the mutex.
func (j *Journal) lenLocked() int {
	if j.head > uint64(j.size) {
		return int(j.size)
	}
	return int(j.head)
}

// Capacity returns the ring size after power-of-2 rounding.
func (j *Journal) Capacity() int {
	return int(j.size)
}

// Evicted returns how many records have been overwritten.
func (j *Journal) Evicted() uint64 {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.head > uint64(j.size) {
		return j.head - uint64(j.size)
	}
	return 0
}
