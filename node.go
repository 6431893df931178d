package avl

func (n *node[K, V]) Key() K {
	return n.key
}

func (n *node[K, V]) Value() V {
	return n.value
}

func (n *node[K, V]) Height() int {
	if n == nil {
		return nilHeight
	}
	return n.height
}

func (n *node[K, V]) Size() int {
	if n == nil {
		return nilSize
	}
	return n.size
}

// recompute height and size from the current children
func (n *node[K, V]) update() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
	n.size = 1 + n.left.Size() + n.right.Size()
}

// height(left) - height(right), zero for an absent node
func (n *node[K, V]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// rotateRight turns (n (p a b) c) into (p a (n b c)).
// n is demoted so it is updated before p.
func (n *node[K, V]) rotateRight() *node[K, V] {
	p := n.left
	n.left = p.right
	p.right = n
	n.update()
	p.update()
	return p
}

// rotateLeft turns (n a (p b c)) into (p (n a b) c).
func (n *node[K, V]) rotateLeft() *node[K, V] {
	p := n.right
	n.right = p.left
	p.left = n
	n.update()
	p.update()
	return p
}

// rebalance restores the AVL condition at n, whose children are already
// balanced, and returns the root of the subtree.  n's derived fields must
// be current.
func (n *node[K, V]) rebalance() *node[K, V] {
	switch bf := n.balanceFactor(); {
	case bf > maxImbalance:
		if n.left.balanceFactor() < 0 { // left-right
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()

	case bf < -maxImbalance:
		if n.right.balanceFactor() > 0 { // right-left
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	}
	return n
}

// find the lowest node under n
func (n *node[K, V]) minimum() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// find the highest node under n
func (n *node[K, V]) maximum() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
