package avl

// Height of the root, zero for an empty tree.
func (t *tree[K, V]) Height() int {
	if t == nil {
		return nilHeight
	}
	return t.root.Height()
}

// RepOK verifies the whole structure: strict key ordering, the AVL balance
// condition and exact cached heights and sizes.  It is a diagnostic for
// test harnesses and is never called by Put or Remove.
func (t *tree[K, V]) RepOK() bool {
	if t == nil {
		return true
	}
	return t.check(t.root, nil, nil)
}

// internal: every key under n must lie strictly between low and high,
// where a nil bound is open
func (t *tree[K, V]) check(n *node[K, V], low *K, high *K) bool {
	if n == nil {
		return true
	}
	if low != nil && t.cmp(n.key, *low) <= 0 {
		return false
	}
	if high != nil && t.cmp(n.key, *high) >= 0 {
		return false
	}

	if bf := n.balanceFactor(); bf < -maxImbalance || bf > maxImbalance {
		return false
	}
	if n.height != 1+max(n.left.Height(), n.right.Height()) {
		return false
	}
	if n.size != 1+n.left.Size()+n.right.Size() {
		return false
	}

	return t.check(n.left, low, &n.key) && t.check(n.right, &n.key, high)
}
