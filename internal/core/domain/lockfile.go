package domain

// SelfKey is the reserved lock key of the project root location.
const SelfKey = "self"

// ProjectLock maps every install location to the snapshot installed there.
// Keys are package names, or SelfKey for the project root.
// It is rebuilt from scratch on every update run and never patched.
type ProjectLock struct {
	Dependencies map[string]Snapshot
}

// NewProjectLock creates an empty lock.
func NewProjectLock() *ProjectLock {
	return &ProjectLock{Dependencies: make(map[string]Snapshot)}
}

// Get returns the snapshot recorded for key.
// Empty snapshots count as not recorded.
func (l *ProjectLock) Get(key string) (Snapshot, bool) {
	if l == nil {
		return nil, false
	}
	snap, ok := l.Dependencies[key]
	if !ok || snap.Empty() {
		return nil, false
	}
	return snap, true
}

// Set records the snapshot for key. Empty snapshots are not recorded.
func (l *ProjectLock) Set(key string, snap Snapshot) {
	if snap.Empty() {
		return
	}
	if l.Dependencies == nil {
		l.Dependencies = make(map[string]Snapshot)
	}
	l.Dependencies[key] = snap
}
