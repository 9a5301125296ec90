package models

// Batch is one atomic unit of persistence work. Either everything in it is
// committed or nothing is. Sprints and Tasks are upserts: entries with ID 0
// are inserted and get their generated id written back on success.
type Batch struct {
	Sprints       []Sprint
	Tasks         []Task
	DetachTasks   []int64 // clear sprint reference, keep deadline and pin flag
	DeleteSprints []int64
	DeleteTasks   []int64
}

// Empty reports whether the batch carries no work.
func (b *Batch) Empty() bool {
	return len(b.Sprints) == 0 && len(b.Tasks) == 0 &&
		len(b.DetachTasks) == 0 && len(b.DeleteSprints) == 0 && len(b.DeleteTasks) == 0
}
