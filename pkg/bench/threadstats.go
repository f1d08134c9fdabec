package bench

// threadStats holds the counters a user routine sets through State. It is
// owned by a single worker's State for the routine's duration and merged
// into the shared run state once, when the routine returns -- the Design
// Notes' replacement for the original's thread-local-storage key.
type threadStats struct {
	bytesProcessed int64
	itemsProcessed int64
}

func (s *threadStats) add(other threadStats) {
	s.bytesProcessed += other.bytesProcessed
	s.itemsProcessed += other.itemsProcessed
}
