package queue

import (
	"container/heap"
	"strings"
)

// MinHeap is an indexed binary heap. Items remember their position, so priorities can be
// decreased in O(log n).
type MinHeap[T Priorizable] struct {
	Queue PriorityQueue // hold the priority queue
}

func NewMinHeap[T Priorizable](items []T) *MinHeap[T] {
	h := &MinHeap[T]{}
	h.Queue = make(PriorityQueue, len(items))
	for i, item := range items {
		h.Queue[i] = item
		item.SetIndex(i)
	}
	heap.Init(&h.Queue)
	return h
}

type Priorizable interface {
	Priority() float64
	Index() int
	SetIndex(index int)
	String() string
}

// Implements heap.Interface
type PriorityQueue []Priorizable

func (q PriorityQueue) Len() int           { return len(q) }
func (q PriorityQueue) Less(i, j int) bool { return q[i].Priority() < q[j].Priority() }
func (q PriorityQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].SetIndex(i)
	q[j].SetIndex(j)
}
func (q *PriorityQueue) Push(item any) {
	n := len(*q)
	pqItem := item.(Priorizable)
	pqItem.SetIndex(n)
	*q = append(*q, pqItem)
}
func (q *PriorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.SetIndex(-1) // popped items are no longer in the heap
	*q = old[:n-1]
	return item
}

func (h *MinHeap[T]) Len() int    { return h.Queue.Len() }
func (h *MinHeap[T]) Push(item T) { heap.Push(&h.Queue, item) }
func (h *MinHeap[T]) Pop() T      { return heap.Pop(&h.Queue).(T) }
func (h *MinHeap[T]) Peek() T     { return h.Queue[0].(T) }

// Update restores the heap order after the priority of item changed
func (h *MinHeap[T]) Update(item T) {
	if item.Index() < 0 {
		h.Push(item)
		return
	}
	heap.Fix(&h.Queue, item.Index())
}

func (h *MinHeap[T]) String() string {
	var sb strings.Builder
	for _, item := range h.Queue {
		sb.WriteString(item.String())
	}
	return sb.String()
}
