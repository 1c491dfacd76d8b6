package seaway

// Merger joins lanes of the same type which continue each other end to end
type Merger struct {
	lanes           []*Lane
	mergeCount      int
	unmergableCount int
}

func NewMerger(lanes []*Lane) *Merger {
	return &Merger{
		lanes: lanes,
	}
}

func (m *Merger) Merge() {
	// index lanes by their first node
	startsAt := make(map[int64][]*Lane)
	for _, lane := range m.lanes {
		if len(lane.NodeIDs) < 2 {
			m.unmergableCount++
			continue
		}
		startsAt[lane.NodeIDs[0]] = append(startsAt[lane.NodeIDs[0]], lane)
	}

	merged := make(map[int64]bool)
	var newLanes []*Lane

	for _, lane := range m.lanes {
		if merged[lane.ID] || len(lane.NodeIDs) < 2 {
			continue
		}
		merged[lane.ID] = true

		current := lane
		for {
			end := current.NodeIDs[len(current.NodeIDs)-1]

			foundNext := false
			for _, next := range startsAt[end] {
				if merged[next.ID] || !canMerge(current, next) {
					continue
				}
				current = mergeTwoLanes(current, next)
				merged[next.ID] = true
				m.mergeCount++
				foundNext = true
				break
			}

			if !foundNext {
				break
			}
		}

		newLanes = append(newLanes, current)
	}

	m.lanes = newLanes
}

func canMerge(l1, l2 *Lane) bool {
	return l1.Type == l2.Type
}

func mergeTwoLanes(l1, l2 *Lane) *Lane {
	merged := &Lane{
		ID:   l1.ID,
		Type: l1.Type,
		Tags: l1.Tags,
	}
	merged.NodeIDs = make([]int64, 0, len(l1.NodeIDs)+len(l2.NodeIDs)-1)
	merged.NodeIDs = append(merged.NodeIDs, l1.NodeIDs...)
	// the first node of l2 is the last node of l1
	merged.NodeIDs = append(merged.NodeIDs, l2.NodeIDs[1:]...)
	return merged
}

func (m *Merger) Lanes() []*Lane {
	return m.lanes
}

func (m *Merger) MergeCount() int {
	return m.mergeCount
}

func (m *Merger) UnmergableLaneCount() int {
	return m.unmergableCount
}
