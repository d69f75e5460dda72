package listfilter

// DiffJobs compares the previously registered job ids with the
// currently selected set and returns what must be added and removed,
// keeping input order. Equal sets yield two empty slices, so no batch
// call fires.
func DiffJobs(registered, selected []int) (toAdd, toRemove []int) {
	registeredSet := make(map[int]struct{}, len(registered))
	for _, id := range registered {
		registeredSet[id] = struct{}{}
	}
	selectedSet := make(map[int]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}

	for _, id := range selected {
		if _, ok := registeredSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range registered {
		if _, ok := selectedSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	return toAdd, toRemove
}
