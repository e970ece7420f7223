package roster

type operationType int

const (
	opAdd operationType = iota
	opRemove
	opRemoveAll
)

type operation struct {
	typ    operationType
	entity Entity
	group  string
}

type opQueue struct {
	ops         []operation
	pendingWipe map[Entity]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingWipe: make(map[Entity]struct{}),
	}
}

func (q *opQueue) enqueue(op operation) {
	// Once a full wipe is queued for an entity, further ops for it are moot:
	// the handle is on its way out and must not be resurrected mid-drain.
	if _, wiped := q.pendingWipe[op.entity]; wiped {
		return
	}
	if op.typ == opRemoveAll {
		for i := range q.ops {
			if q.ops[i].entity == op.entity {
				// Mark operation as no-op by setting type to invalid
				q.ops[i].typ = -1
			}
		}
		q.pendingWipe[op.entity] = struct{}{}
	}
	q.ops = append(q.ops, op)
}

func (gi *groupIndex) processOperationQueue() {
	for _, op := range gi.opQueue.ops {
		switch op.typ {
		case opAdd:
			gi.addNow(op.entity, op.group)
		case opRemove:
			gi.removeNow(op.entity, op.group)
		case opRemoveAll:
			gi.removeFromAllNow(op.entity)
		}
	}
	gi.opQueue.ops = gi.opQueue.ops[:0]
	clear(gi.opQueue.pendingWipe)
}
