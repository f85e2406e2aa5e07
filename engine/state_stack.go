package engine

// RepetitionStack holds the hash keys of every position reached by a played
// move, followed by the keys pushed along the current search line.
type RepetitionStack struct {
	keys []uint64
}

// Push appends a key.
func (r *RepetitionStack) Push(key uint64) {
	r.keys = append(r.keys, key)
}

// Pop drops the most recent key.
func (r *RepetitionStack) Pop() {
	if len(r.keys) == 0 {
		return
	}
	r.keys = r.keys[:len(r.keys)-1]
}

// Contains reports whether key was reached before.
func (r *RepetitionStack) Contains(key uint64) bool {
	for i := len(r.keys) - 1; i >= 0; i-- {
		if r.keys[i] == key {
			return true
		}
	}
	return false
}

// Len returns the number of stored keys.
func (r *RepetitionStack) Len() int { return len(r.keys) }

// Reset forgets every key.
func (r *RepetitionStack) Reset() {
	r.keys = r.keys[:0]
}
