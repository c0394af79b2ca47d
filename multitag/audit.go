package multitag

import "bytes"

// Shadow describes a candidate that can never be reported because an
// earlier candidate is a prefix of it.
type Shadow struct {
	// Winner is the earlier candidate that matches first.
	Winner int
	// Hidden is the unreachable candidate.
	Hidden int
}

// Shadowed lists every candidate hidden by an earlier prefix of itself.
// Identical candidates shadow each other as well. An empty result means every
// candidate is reachable.
//
// Order candidates longest-first to avoid shadowing, e.g. "Accept-Charset"
// before "Accept".
func (s *CandidateSet) Shadowed() []Shadow {
	var out []Shadow
	for j, hidden := range s.candidates {
		for i := 0; i < j; i++ {
			if bytes.HasPrefix(hidden, s.candidates[i]) {
				out = append(out, Shadow{Winner: i, Hidden: j})
				break
			}
		}
	}
	return out
}
