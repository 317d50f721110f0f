package vtree

// L is a position within the visible tree: a node plus a row offset into
// that node's own displayed lines. The zero value L{nil, 0} is the "past
// the last visible row" sentinel — it never names a real row, only the
// position one step beyond the final node.
type L struct {
	Node *N
	Line int
}

// End returns the past-the-end sentinel position.
func End() L { return L{} }

// DistanceFwd walks forward from from to to along Next, summing the rows
// crossed. It returns -1 if to does not occur at or after from in visible
// order (so the caller knows to search the other direction instead of
// looping forever).
func DistanceFwd(from, to L) int {
	cur := from.Node
	line := from.Line
	sum := 0
	for {
		if cur == to.Node {
			return sum + to.Line
		}
		if cur == nil {
			return -1
		}
		sum += cur.Lines() - line
		line = 0
		cur = cur.Next
	}
}

// Move steps delta rows forward (delta > 0) or backward (delta < 0) from l.
// With safe set, the result clamps to the first or last real row instead of
// ever returning the past-the-end sentinel; without it, overshooting the
// end returns End().
func Move(l L, delta int, safe bool) L {
	if delta > 0 {
		return moveForward(l, delta, safe)
	}
	if delta < 0 {
		return moveBackward(l, -delta, safe)
	}
	return l
}

func moveForward(l L, delta int, safe bool) L {
	cur := l.Node
	line := l.Line
	if cur == nil {
		return End()
	}
	for delta > 0 {
		if line+1 < cur.Lines() {
			line++
			delta--
			continue
		}
		nxt := cur.Next
		if nxt == nil {
			if safe {
				return L{cur, cur.Lines() - 1}
			}
			return End()
		}
		cur = nxt
		line = 0
		delta--
	}
	return L{cur, line}
}

func moveBackward(l L, delta int, safe bool) L {
	cur := l.Node
	line := l.Line
	if cur == nil {
		return End()
	}
	for delta > 0 {
		if line > 0 {
			line--
			delta--
			continue
		}
		prv := cur.Prev
		if prv == nil {
			return L{cur, 0}
		}
		cur = prv
		line = cur.Lines() - 1
		delta--
	}
	return L{cur, line}
}
