package model

const defaultHistorySize = 5

// History keeps the most recent grid hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a History holding at most size hashes
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds a hash and drops the oldest once the history is full
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Stagnant reports whether hash repeats one of the last three recorded
// states, i.e. the board is static or cycling with period 3 or less.
func (h *History) Stagnant(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}

// Clear forgets every recorded hash
func (h *History) Clear() {
	h.hashes = nil
}
