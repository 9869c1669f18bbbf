package chronofold

// offsetMap is a sparse map from LogIndex to Optional[LogIndex], storing only
// entries whose value deviates from a per-map default offset (next[i]
// defaults to i+1, reference[i] defaults to i-1). This compresses the common
// case of appended, linear edits down to O(number of non-default entries).
//
// Ported from original_source/src/offsetmap.rs.
type offsetMap struct {
	defaultDelta int
	entries      map[LogIndex]*LogIndex // nil value means explicit "none"
}

func newOffsetMap(defaultDelta int) *offsetMap {
	return &offsetMap{defaultDelta: defaultDelta, entries: make(map[LogIndex]*LogIndex)}
}

// get returns the value that would be read for key, applying the default
// offset when no explicit entry exists.
func (m *offsetMap) get(key LogIndex) (LogIndex, bool) {
	if v, ok := m.entries[key]; ok {
		if v == nil {
			return 0, false
		}
		return *v, true
	}
	return LogIndex(int(key) + m.defaultDelta), true
}

// set stores value for key, omitting the write entirely if value already
// equals the defaulted value (so the map never grows for the common case).
func (m *offsetMap) set(key LogIndex, value LogIndex, ok bool) {
	if !ok {
		m.entries[key] = nil
		return
	}
	if value == LogIndex(int(key)+m.defaultDelta) {
		delete(m.entries, key)
		return
	}
	v := value
	m.entries[key] = &v
}

// entryCount reports how many explicit (non-default) entries are stored.
func (m *offsetMap) entryCount() int {
	return len(m.entries)
}
