package predictor

// candidate is one scored dictionary entry under consideration for the
// final top-K list.
type candidate struct {
	word  string
	score float64
	freq  uint32
	seq   uint64 // insertion order, used only to make Less total
}

// candidateHeap implements container/heap.Interface as a max-heap on
// score, so the worst-scoring survivor always sits at the root and can be
// evicted in O(log k) when a better candidate arrives.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	return h[i].seq < h[j].seq
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(candidate))
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}
