package image

import (
	"math/bits"
	"sync"
)

// Pool recycles pixel byte slices grouped by power-of-two capacity.
//
// All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets [bits.UintSize][][]byte
	maxSize int // max slices retained per bucket
}

// NewPool creates a pool that keeps at most maxPerBucket slices of each
// capacity class. Zero means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{maxSize: maxPerBucket}
}

func bucketOf(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Get returns a zeroed slice of length n.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}
	k := bucketOf(n)

	p.mu.Lock()
	if bucket := p.buckets[k]; len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[k] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		buf = buf[:n]
		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n, 1<<k)
}

// Put hands buf back for reuse. Slices whose capacity is not a power of two
// are dropped.
func (p *Pool) Put(buf []byte) {
	c := cap(buf)
	if c == 0 || c&(c-1) != 0 {
		return
	}
	k := bucketOf(c)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.maxSize > 0 && len(p.buckets[k]) >= p.maxSize {
		return
	}
	p.buckets[k] = append(p.buckets[k], buf[:0])
}

// Len returns the number of retained slices.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
