package avl

// Min returns the node with the lowest key.
func (t *tree[K, V]) Min() (Node[K, V], bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return t.root.minimum(), true
}

// Max returns the node with the highest key.
func (t *tree[K, V]) Max() (Node[K, V], bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return t.root.maximum(), true
}

// Iterator returns an ascending iterator positioned before the lowest key.
// Any Put or Remove on the tree leaves the iterator undefined.
func (t *tree[K, V]) Iterator() Iterator[K, V] {
	it := &iterator[K, V]{
		stack: make([]*node[K, V], 0, t.Height()),
	}
	if t != nil {
		it.pushLeft(t.root)
	}
	return it
}

func (it *iterator[K, V]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator[K, V]) Next() (Node[K, V], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	last := len(it.stack) - 1
	cur := it.stack[last]
	it.stack = it.stack[:last]
	it.pushLeft(cur.right)
	return cur, nil
}

// stack n and its chain of left descendants
func (it *iterator[K, V]) pushLeft(n *node[K, V]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}
