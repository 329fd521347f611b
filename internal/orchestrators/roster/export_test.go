package roster

// LockCount reports how many roster locks are currently tracked
func (o *Orchestrator) LockCount() int {
	return o.locks.len()
}
