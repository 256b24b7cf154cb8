package validate

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/apparentlymart/go-textseg/v15/textseg"

	"github.com/vk/bpmncore/internal/model"
)

// maxSuggestionDistance bounds how different a candidate id may be from the
// dangling reference before it stops being offered as a "did you mean"
// suggestion. One or two typos is a plausible fat-finger; anything more
// is more likely an unrelated id.
const maxSuggestionDistance = 2

// maxQuotedIDGraphemes caps how much of an over-long identifier is quoted
// in a diagnostic message, counted in user-perceived characters rather than
// bytes so a multi-byte grapheme is never split mid-sequence.
const maxQuotedIDGraphemes = 64

// withSuggestion appends a "did you mean '...'?" hint to message when the
// process declares an id close enough to ref to plausibly be what the
// author meant, leaving message unchanged otherwise.
func withSuggestion(process *model.Process, ref model.ID, message string) string {
	suggestion, ok := nearestID(process, ref)
	if !ok {
		return message
	}
	return fmt.Sprintf("%s Did you mean '%s'?", message, quoteID(suggestion))
}

// nearestID picks the closest candidate id to ref by Levenshtein distance.
// Candidates are visited in sorted order, and only a strictly smaller
// distance replaces the current best, so a tie between two candidates at
// the same distance always resolves to the lexicographically first one —
// map iteration order is not stable across calls, and without this
// tie-break the suggestion could differ between repeated Validate calls on
// the same unchanged model.
func nearestID(process *model.Process, ref model.ID) (string, bool) {
	given := ref.String()

	candidates := make([]string, 0, len(process.FlowElementMap))
	for candidate := range process.FlowElementMap {
		if candidate == given {
			continue
		}
		candidates = append(candidates, candidate)
	}
	sort.Strings(candidates)

	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, candidate := range candidates {
		dist := levenshtein.Distance(given, candidate, nil)
		if dist < bestDist {
			bestDist = dist
			best = candidate
		}
	}
	if bestDist > maxSuggestionDistance {
		return "", false
	}
	return best, true
}

// quoteID truncates an identifier to maxQuotedIDGraphemes grapheme clusters,
// appending an ellipsis marker when truncated.
func quoteID(id string) string {
	scanner := bufio.NewScanner(strings.NewReader(id))
	scanner.Split(textseg.ScanGraphemeClusters)

	var b strings.Builder
	count := 0
	for scanner.Scan() {
		count++
		if count > maxQuotedIDGraphemes {
			b.WriteString("…")
			return b.String()
		}
		b.WriteString(scanner.Text())
	}
	return b.String()
}
