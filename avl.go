package avl

const (
	// absent subtrees have height and size zero
	nilHeight = 0
	nilSize   = 0

	// a fresh leaf
	leafHeight = 1
	leafSize   = 1

	// largest tolerated |height(left) - height(right)|
	maxImbalance = 1

	notFound = -1
)

var (
	ErrNoMoreNodes   = NotFoundError("There are no more nodes in the tree")
	ErrNilComparator = InvalidError("comparison function is nil")
	ErrNilKey        = InvalidError("key is nil")
)

type (
	tree[K, V any] struct {
		root *node[K, V]
		cmp  func(K, K) int
		// K can hold nil, so keys are checked on insert
		nilable bool
	}

	node[K, V any] struct {
		key    K
		value  V
		left   *node[K, V]
		right  *node[K, V]
		height int
		size   int
	}

	// iterator walks the tree in key order keeping the path of pending
	// ancestors on an explicit stack
	iterator[K, V any] struct {
		stack []*node[K, V]
	}
)

func newLeaf[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		height: leafHeight,
		size:   leafSize,
	}
}
