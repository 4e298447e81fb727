package progress

import "maps"

// Record maps topic ids to their status. It is sparse: an id with no
// entry is not-started. Treat a Record as a value; With returns a copy.
type Record map[string]NodeStatus

// Lookup returns the status for id, defaulting to not-started.
func (r Record) Lookup(id string) NodeStatus {
	if s, ok := r[id]; ok {
		return s
	}
	return StatusNotStarted
}

// With returns a new record equal to r except that id maps to status.
// r itself is left untouched.
func (r Record) With(id string, status NodeStatus) Record {
	out := make(Record, len(r)+1)
	maps.Copy(out, r)
	out[id] = status
	return out
}

// Clone returns a copy of r. A nil record clones to an empty one.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	maps.Copy(out, r)
	return out
}
