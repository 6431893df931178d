// Package avl implements an ordered map as an AVL tree whose nodes also
// cache their subtree size, giving logarithmic lookup, insertion, deletion
// and order statistics.
//
// A tree is not safe for concurrent use; guard it with a mutex when shared.
package avl

import (
	"cmp"
	"io"
	"iter"
)

type Tree[K, V any] interface {
	IsEmpty() bool
	Size() int
	Contains(key K) bool
	Get(key K) (V, bool)
	Put(key K, value V) error
	Remove(key K) bool
	Keys() []K
	All() iter.Seq2[K, V]
	Iterator() Iterator[K, V]
	Min() (Node[K, V], bool)
	Max() (Node[K, V], bool)
	Select(index int) (Node[K, V], bool)
	Rank(key K) int
	Height() int
	RepOK() bool
	Print(w io.Writer, withValues bool) int
}

type Iterator[K, V any] interface {
	HasNext() bool
	Next() (Node[K, V], error)
}

type Node[K, V any] interface {
	Key() K
	Value() V
	Height() int
	Size() int
}

// New returns an empty tree ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() Tree[K, V] {
	return &tree[K, V]{cmp: cmp.Compare[K]}
}

// NewFunc returns an empty tree ordered by compare, which must be a total
// order returning a negative, zero or positive result.
func NewFunc[K, V any](compare func(K, K) int) (Tree[K, V], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	return &tree[K, V]{
		cmp:     compare,
		nilable: canBeNil[K](),
	}, nil
}
