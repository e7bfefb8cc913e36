package domain

// SelectActive derives the active list: active tasks only, then filter, then
// sort. Both filter and sort may be nil. The result is always a fresh slice.
func SelectActive(tasks []Task, f *Filter, s *Sort, today Date) []Task {
	active := inBucket(tasks, BucketActive)
	return s.Apply(f.Apply(active, today))
}

// SelectArchiveCompleted returns completed, non-deleted tasks in creation order
func SelectArchiveCompleted(tasks []Task) []Task {
	return ByCreation(inBucket(tasks, BucketCompleted))
}

// SelectArchiveDeleted returns deleted tasks in creation order, whether or
// not they were completed first
func SelectArchiveDeleted(tasks []Task) []Task {
	return ByCreation(inBucket(tasks, BucketDeleted))
}

func inBucket(tasks []Task, b Bucket) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Bucket() == b {
			result = append(result, t)
		}
	}
	return result
}
