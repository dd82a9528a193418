package searcher

import (
	"container/heap"

	"gameai/game"
)

type node[A any, S any] struct {
	state    S
	score    int
	first    A // action taken at the root of this lineage
	hasFirst bool
}

// frontier is a max-heap of nodes by score. Equal scores have no defined order.
type frontier[A any, S any] []node[A, S]

func (f frontier[A, S]) Len() int           { return len(f) }
func (f frontier[A, S]) Less(i, j int) bool { return f[i].score > f[j].score }
func (f frontier[A, S]) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier[A, S]) Push(x any) {
	*f = append(*f, x.(node[A, S]))
}

func (f *frontier[A, S]) Pop() any {
	old := *f
	n := old[len(old)-1]
	*f = old[:len(old)-1]
	return n
}

func (f *frontier[A, S]) push(n node[A, S]) {
	heap.Push(f, n)
}

func (f *frontier[A, S]) pop() node[A, S] {
	return heap.Pop(f).(node[A, S])
}

// best panics on an empty frontier.
func (f frontier[A, S]) best() node[A, S] {
	return f[0]
}

func rootNode[A any, S game.State[A, S]](state S) node[A, S] {
	return node[A, S]{state: state.Clone(), score: state.Evaluate()}
}

// expand pushes one child per legal action of n and returns how many it
// pushed. Children of the root record the action that produced them; deeper
// children inherit it.
func expand[A any, S game.State[A, S]](n node[A, S], into *frontier[A, S]) int {
	actions := n.state.LegalActions()
	for _, action := range actions {
		state := n.state.Clone()
		state.Advance(action)
		child := node[A, S]{state: state, score: state.Evaluate(), first: n.first, hasFirst: n.hasFirst}
		if !n.hasFirst {
			child.first, child.hasFirst = action, true
		}
		into.push(child)
	}
	return len(actions)
}
