package report

import (
	"sort"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
)

// topKBuffer keeps the k best-scored feedback items seen so far without
// sorting the full input. While under capacity every offer is kept; once full,
// the incoming item replaces the worst-ranked buffer entry only when it
// strictly outranks it. One Offer is an O(k) scan, so a full pass over n
// records stays O(n*k).
type topKBuffer struct {
	k        int
	outranks func(a, b float64) bool // true when score a ranks ahead of score b
	items    []models.Feedback
}

func newTopKBuffer(k int, outranks func(a, b float64) bool) *topKBuffer {
	return &topKBuffer{
		k:        k,
		outranks: outranks,
		items:    make([]models.Feedback, 0, k),
	}
}

// newTopPositive ranks higher scores first
func newTopPositive(k int) *topKBuffer {
	return newTopKBuffer(k, func(a, b float64) bool { return a > b })
}

// newTopNegative ranks lower scores first
func newTopNegative(k int) *topKBuffer {
	return newTopKBuffer(k, func(a, b float64) bool { return a < b })
}

// Offer considers one record for retention
func (t *topKBuffer) Offer(fb models.Feedback) {
	if len(t.items) < t.k {
		t.items = append(t.items, fb)
		return
	}

	worst := 0
	for i := 1; i < len(t.items); i++ {
		if t.outranks(t.items[worst].SentimentScore, t.items[i].SentimentScore) {
			worst = i
		}
	}

	if t.outranks(fb.SentimentScore, t.items[worst].SentimentScore) {
		t.items[worst] = fb
	}
}

// Sorted returns the retained items ordered best first
func (t *topKBuffer) Sorted() []models.Feedback {
	out := append([]models.Feedback(nil), t.items...)
	sort.SliceStable(out, func(i, j int) bool {
		return t.outranks(out[i].SentimentScore, out[j].SentimentScore)
	})
	return out
}
