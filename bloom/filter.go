// Package bloom provides a probabilistic seen-URL filter. A negative
// answer is definitive (the URL has never been indexed), so page-status
// checks for brand-new URLs can skip the store entirely; a positive
// answer still requires a store lookup.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// SeenFilter tracks which URLs have ever been indexed.
type SeenFilter struct {
	mu sync.RWMutex
	f  *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected URLs with the
// given false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as seen.
func (f *SeenFilter) Add(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(url)
}

// Warm marks a batch of URLs as seen. Used at engine startup with the
// store's full URL list.
func (f *SeenFilter) Warm(urls []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, url := range urls {
		f.f.AddString(url)
	}
}

// Seen returns true if the URL might have been indexed. False positives
// are possible; false negatives are not.
func (f *SeenFilter) Seen(url string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *SeenFilter) EstimatedCount() uint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return uint(f.f.ApproximatedSize())
}
