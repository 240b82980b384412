// pkg/cache/eviction.go
package cache

// orderedItem pairs a tracked item's cache key with its metadata, for
// ranking inside GetEvictionCandidates.
type orderedItem struct {
	key  string
	info *ItemInfo
}

// priorityScale separates priority tiers in orderedItemKey's composite
// key. It must exceed any plausible Unix-seconds value so a lower
// priority always sorts before a higher one regardless of recency.
const priorityScale = 1e12

// orderedItemKey packs (priority, last access) into a single float64:
// priority occupies the integral scale, last access (in seconds since
// the Unix epoch) breaks ties within a priority tier, oldest first.
func orderedItemKey(it orderedItem) float64 {
	return float64(it.info.Priority)*priorityScale + float64(it.info.LastAccess.UnixNano())/1e9
}
