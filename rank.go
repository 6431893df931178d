package avl

// Select returns the node at the zero based index in key order.
func (t *tree[K, V]) Select(index int) (Node[K, V], bool) {
	if index < 0 || index >= t.Size() {
		return nil, false
	}
	n := t.root
	for n != nil {
		nl := n.left.Size()
		switch {
		case index < nl:
			n = n.left
		case index > nl:
			// skip the left subtree and this node
			index -= nl + 1
			n = n.right
		default:
			return n, true
		}
	}
	return nil, false
}

// Rank returns the zero based position of key in key order, or -1 when
// key is not present.
func (t *tree[K, V]) Rank(key K) int {
	if t == nil {
		return notFound
	}
	index := 0
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			index += n.left.Size() + 1
			n = n.right
		default:
			return index + n.left.Size()
		}
	}
	return notFound
}
