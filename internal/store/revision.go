package store

import "sync/atomic"

// revision is a monotonically increasing change counter.
type revision struct{ n atomic.Uint64 }

func (r *revision) bump() uint64 { return r.n.Add(1) }

func (r *revision) load() uint64 { return r.n.Load() }
