// pkg/sortedseq/check.go
package sortedseq

import "fmt"

// check audits the invariants the engine depends on: chunk sizes sit
// within [half, twice load] except for an allowed single undersized
// last chunk, keyChunks mirrors chunks under the key projection, maxes
// holds the true greatest key of its chunk, key order is non-decreasing
// both within and across chunks, n matches the total element count,
// and, when the index tree is built, pos/loc agree with direct counting.
func (l *list[V, K]) check() error {
	if len(l.chunks) != len(l.keyChunks) || len(l.chunks) != len(l.maxes) {
		return fmt.Errorf("sortedseq: chunk/keyChunk/maxes length mismatch: %d/%d/%d",
			len(l.chunks), len(l.keyChunks), len(l.maxes))
	}

	total := 0
	var prevMax K
	havePrev := false

	for i, chunk := range l.chunks {
		if len(chunk) != len(l.keyChunks[i]) {
			return fmt.Errorf("sortedseq: chunk %d length %d != keyChunk length %d", i, len(chunk), len(l.keyChunks[i]))
		}
		if len(chunk) == 0 {
			return fmt.Errorf("sortedseq: chunk %d is empty", i)
		}
		if i < len(l.chunks)-1 && len(chunk) < l.half {
			return fmt.Errorf("sortedseq: chunk %d has %d elements, below half-load %d", i, len(chunk), l.half)
		}
		if len(chunk) > l.twice {
			return fmt.Errorf("sortedseq: chunk %d has %d elements, above 2x-load %d", i, len(chunk), l.twice)
		}

		for j, v := range chunk {
			k := l.keyChunks[i][j]
			if k != l.key(v) {
				return fmt.Errorf("sortedseq: chunk %d offset %d key mismatch", i, j)
			}
			if j > 0 && l.keyChunks[i][j-1] > k {
				return fmt.Errorf("sortedseq: chunk %d offset %d out of order", i, j)
			}
		}

		last := l.keyChunks[i][len(l.keyChunks[i])-1]
		if last != l.maxes[i] {
			return fmt.Errorf("sortedseq: maxes[%d]=%v does not match chunk's greatest key %v", i, l.maxes[i], last)
		}
		if havePrev && prevMax > l.keyChunks[i][0] {
			return fmt.Errorf("sortedseq: chunk %d starts before previous chunk's max", i)
		}
		prevMax = last
		havePrev = true

		total += len(chunk)
	}

	if total != l.n {
		return fmt.Errorf("sortedseq: n=%d but chunks hold %d elements", l.n, total)
	}

	if len(l.index) > 0 {
		for i := 0; i < l.n; i++ {
			pos, off, err := l.pos(i)
			if err != nil {
				return fmt.Errorf("sortedseq: pos(%d) failed: %w", i, err)
			}
			if got := l.loc(pos, off); got != i {
				return fmt.Errorf("sortedseq: loc(pos(%d)) = %d, want %d", i, got, i)
			}
		}
	}

	return nil
}
