package parserxml

import "sort"

// lineIndex maps a byte offset in the source document to a 1-based line
// number, built once from the newline positions in the whole document so
// per-element line lookups during the token loop are a binary search rather
// than a re-scan.
type lineIndex struct {
	newlineOffsets []int64
}

func newLineIndex(data []byte) *lineIndex {
	li := &lineIndex{}
	for i, b := range data {
		if b == '\n' {
			li.newlineOffsets = append(li.newlineOffsets, int64(i))
		}
	}
	return li
}

// lineAt returns the 1-based line number containing offset.
func (li *lineIndex) lineAt(offset int64) int {
	n := sort.Search(len(li.newlineOffsets), func(i int) bool {
		return li.newlineOffsets[i] >= offset
	})
	return n + 1
}
