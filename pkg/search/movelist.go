package search

import (
	"container/heap"
	"fmt"

	"github.com/610th/rusty-duke/pkg/board"
	"github.com/610th/rusty-duke/pkg/eval"
)

// Priority represents the move order priority. Greater is explored first.
type Priority int32

const (
	placeNewPriority Priority = 1 << 30
	capturePriority  Priority = 1 << 20
)

// MoveList is a move priority queue for move ordering. Equal-priority
// actions come out in their original enumeration order (stable), since
// the comparator must be stable with respect to GetTileActions/GetActions
// enumeration order for pinned test behavior.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list ordered by ActionPriority, given
// the state the actions were enumerated from (needed to look up capture
// victims' tile utility).
func NewMoveList(state *board.GameState, actions []board.Action) *MoveList {
	h := make(moveHeap, len(actions))
	for i, a := range actions {
		h[i] = elm{a: a, val: ActionPriority(state, a), idx: i}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next action. It is the highest priority action in the
// list.
func (ml *MoveList) Next() (board.Action, bool) {
	if ml.Size() == 0 {
		return board.Action{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.a, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].a, ml.Size())
}

type elm struct {
	a   board.Action
	val Priority
	idx int
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	if h[i].val != h[j].val {
		return h[i].val > h[j].val
	}
	return h[i].idx < h[j].idx
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}

// ActionPriority implements action_cmp's ordering as a single priority
// value: PlaceNew beats everything; a capture's priority is the victim's
// tile utility (so a higher-value victim is explored first, and any
// capture outranks any non-capture); NewFromBag and other non-captures
// are neutral (zero).
func ActionPriority(state *board.GameState, a board.Action) Priority {
	if a.Type == board.PlaceNew {
		return placeNewPriority
	}
	if a.Result == board.ResultCapture {
		victim := state.Square(a.TargetPos).Tile
		return capturePriority + Priority(eval.TileUtility(victim.Kind))
	}
	return 0
}
