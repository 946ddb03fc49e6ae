// Package tune derives default capacity hints from the host's available
// memory via github.com/pbnjay/memory.
package tune

import "github.com/pbnjay/memory"

// approxEnvelopeBytes is a rough per-envelope memory estimate (struct
// overhead plus a typical short content string) used only to turn a memory
// fraction into an element count; it is deliberately not exact.
const approxEnvelopeBytes = 256

// memoryFraction is the share of free system memory a single bulk queue is
// allowed to claim when auto-sizing its reserve.
const memoryFraction = 0.0005

// minReserve and maxReserve bound the auto-sized reserve so a machine with
// very little or very much free memory still gets a sane starting capacity.
const (
	minReserve = 64
	maxReserve = 1 << 16
)

// DefaultReserve returns an auto-sized bulk-queue reserve capacity based on
// current free system memory. Callers that already know the right reserve
// for their workload should pass it explicitly instead of calling this.
func DefaultReserve() int {
	free := memory.FreeMemory()
	if free == 0 {
		return minReserve
	}

	budget := float64(free) * memoryFraction
	reserve := int(budget / approxEnvelopeBytes)

	if reserve < minReserve {
		return minReserve
	}
	if reserve > maxReserve {
		return maxReserve
	}
	return reserve
}
