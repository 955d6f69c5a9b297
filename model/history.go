package model

// historySize is how many recent generations are remembered for cycle detection
const historySize = 5

// History keeps the hashes of recent generations to spot static or cycling boards
type History struct {
	hashes []string
}

// Record adds a generation hash and drops the oldest beyond historySize
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether hash repeats one of the last three recorded
// generations, which covers still lifes and period 2 and 3 oscillators
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}

	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}
