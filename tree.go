package avl

import (
	"iter"
	"reflect"
)

func (t *tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

func (t *tree[K, V]) Size() int {
	if t == nil {
		return 0
	}
	return t.root.Size()
}

func (t *tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

func (t *tree[K, V]) Get(key K) (V, bool) {
	n := t.find(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (t *tree[K, V]) find(key K) *node[K, V] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Put stores value under key, replacing the value of an existing equal key.
func (t *tree[K, V]) Put(key K, value V) error {
	if t.nilable && isNilKey(key) {
		return ErrNilKey
	}
	t.root = t.put(t.root, key, value)
	return nil
}

func (t *tree[K, V]) put(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		return newLeaf(key, value)
	}

	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		n.left = t.put(n.left, key, value)
	case c > 0:
		n.right = t.put(n.right, key, value)
	default:
		// shape is unchanged, nothing to recompute
		n.value = value
		return n
	}

	n.update()
	return n.rebalance()
}

// Remove deletes key and reports whether it was present.
func (t *tree[K, V]) Remove(key K) bool {
	if t.IsEmpty() {
		return false
	}
	removed := false
	t.root, removed = t.remove(t.root, key)
	return removed
}

func (t *tree[K, V]) remove(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}

	removed := false
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		n.left, removed = t.remove(n.left, key)
	case c > 0:
		n.right, removed = t.remove(n.right, key)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		// two children: take over the in-order successor's entry and
		// unlink the successor, which has no left child
		successor := n.right.minimum()
		n.key, n.value = successor.key, successor.value
		n.right = n.right.removeMinimum()
		removed = true
	}

	if !removed {
		return n, false
	}
	n.update()
	return n.rebalance(), true
}

// unlink the lowest node under n, returning the new subtree root
func (n *node[K, V]) removeMinimum() *node[K, V] {
	if n.left == nil {
		return n.right
	}
	n.left = n.left.removeMinimum()
	n.update()
	return n.rebalance()
}

// Keys returns a snapshot of all keys in ascending order.
func (t *tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	if t == nil {
		return keys
	}
	t.root.walk(func(n *node[K, V]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// All yields every entry in ascending key order.  The tree must not be
// modified while the sequence is being consumed.
func (t *tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		t.root.walk(func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}
}

// in-order walk, stops as soon as callback returns false
func (n *node[K, V]) walk(callback func(*node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.walk(callback) {
		return false
	}
	if !callback(n) {
		return false
	}
	return n.right.walk(callback)
}

// only the kinds below have a nil value that a comparison function could
// not order; a nil slice is an empty key
func canBeNil[K any]() bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

func isNilKey[K any](key K) bool {
	v := reflect.ValueOf(&key).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
