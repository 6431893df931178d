package avl

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openacid/testkeys"
)

func rootOf[K, V any](t Tree[K, V]) *node[K, V] {
	return t.(*tree[K, V]).root
}

func heightBound(n int) int {
	return int(1.44 * math.Log2(float64(n+2)))
}

func TestTreeScenario(t *testing.T) {
	tree := New[int, string]()
	assert.True(t, tree.IsEmpty())

	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
		require.NoError(t, tree.Put(k, "v"))
		require.True(t, tree.RepOK(), "after put %d", k)
	}
	assert.False(t, tree.IsEmpty())
	assert.Equal(t, 10, tree.Size())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, tree.Keys())

	assert.True(t, tree.Remove(5))
	assert.Equal(t, 9, tree.Size())
	assert.False(t, tree.Contains(5))
	assert.True(t, tree.RepOK())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 6, 7, 8, 9}, tree.Keys())
}

func TestTreePutGet(t *testing.T) {
	dataSet := []struct {
		name    string
		keys    []string
		missing []string
	}{
		{"empty", []string{}, []string{"a", ""}},
		{"single", []string{"api"}, []string{"ap", "apis"}},
		{"ascending", []string{"a", "b", "c", "d", "e", "f", "g"}, []string{"0", "h", "cc"}},
		{"descending", []string{"g", "f", "e", "d", "c", "b", "a"}, []string{"0", "h", "dd"}},
		{"mixed", []string{"api.foo.bar", "api.foo.baz", "api.foe.fum", "abc.123.456", "api.foo", "api"}, []string{"api.", "b"}},
	}

	for _, d := range dataSet {
		tree := New[string, string]()
		for _, k := range d.keys {
			require.NoError(t, tree.Put(k, "data:"+k), d.name)
		}

		assert.Equal(t, len(d.keys), tree.Size(), d.name)
		assert.True(t, tree.RepOK(), d.name)
		for _, k := range d.keys {
			v, ok := tree.Get(k)
			assert.True(t, ok, "%s: %q", d.name, k)
			assert.Equal(t, "data:"+k, v, d.name)
			assert.True(t, tree.Contains(k), d.name)
		}
		for _, k := range d.missing {
			v, ok := tree.Get(k)
			assert.False(t, ok, "%s: %q", d.name, k)
			assert.Equal(t, "", v, d.name)
			assert.False(t, tree.Contains(k), d.name)
		}

		expected := append([]string{}, d.keys...)
		sort.Strings(expected)
		assert.Equal(t, expected, tree.Keys(), d.name)
	}
}

// duplicates must neither grow the tree nor change its shape
func TestTreeOverwrite(t *testing.T) {
	tree := New[int, string]()
	for i := 1; i <= 10; i++ {
		require.NoError(t, tree.Put(i, "first"))
	}
	var before strings.Builder
	tree.Print(&before, false)

	require.NoError(t, tree.Put(5, "second"))
	require.NoError(t, tree.Put(5, "third"))

	var after strings.Builder
	tree.Print(&after, false)

	assert.Equal(t, 10, tree.Size())
	assert.Equal(t, before.String(), after.String())
	v, ok := tree.Get(5)
	assert.True(t, ok)
	assert.Equal(t, "third", v)
	assert.True(t, tree.RepOK())
}

func TestTreeRemoveMissing(t *testing.T) {
	tree := New[int, int]()
	assert.False(t, tree.Remove(1))
	assert.True(t, tree.IsEmpty())

	for i := 0; i < 50; i += 2 {
		require.NoError(t, tree.Put(i, i*i))
	}
	var before strings.Builder
	tree.Print(&before, true)

	for i := -1; i < 51; i += 2 {
		assert.False(t, tree.Remove(i))
	}

	var after strings.Builder
	tree.Print(&after, true)
	assert.Equal(t, before.String(), after.String())
	assert.Equal(t, 25, tree.Size())
	assert.True(t, tree.RepOK())
}

func TestTreePutRemoveInverse(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{40, 20, 60, 10, 30, 50, 70} {
		require.NoError(t, tree.Put(k, "v"))
	}
	keys := tree.Keys()

	for _, k := range []int{5, 25, 45, 65, 75} {
		require.NoError(t, tree.Put(k, "tmp"))
		assert.True(t, tree.Remove(k))
		assert.True(t, tree.RepOK())
		assert.False(t, tree.Contains(k))
		assert.Equal(t, len(keys), tree.Size())
		assert.Equal(t, keys, tree.Keys())
	}
}

func TestTreeRemoveAll(t *testing.T) {
	tree := New[int, int]()
	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, tree.Put((i*37)%n, i))
	}
	require.Equal(t, n, tree.Size())

	for i := 0; i < n; i++ {
		k := (i * 53) % n
		require.True(t, tree.Remove(k), "remove %d", k)
		require.True(t, tree.RepOK(), "after remove %d", k)
		require.Equal(t, n-i-1, tree.Size())
	}
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Height())
	assert.Empty(t, tree.Keys())
}

func TestTreeRotations(t *testing.T) {
	dataSet := []struct {
		name string
		keys []int
	}{
		{"left-left", []int{3, 2, 1}},
		{"right-right", []int{1, 2, 3}},
		{"left-right", []int{3, 1, 2}},
		{"right-left", []int{1, 3, 2}},
	}

	for _, d := range dataSet {
		tree := New[int, struct{}]()
		for _, k := range d.keys {
			require.NoError(t, tree.Put(k, struct{}{}))
		}
		root := rootOf(tree)
		assert.Equal(t, 2, root.key, d.name)
		assert.Equal(t, 1, root.left.key, d.name)
		assert.Equal(t, 3, root.right.key, d.name)
		assert.Equal(t, 2, root.height, d.name)
		assert.Equal(t, 3, root.size, d.name)
		assert.True(t, tree.RepOK(), d.name)
	}
}

// a balanced child on the heavy side takes a single rotation
func TestTreeRemoveSingleRotationTie(t *testing.T) {
	tree := New[int, struct{}]()
	for _, k := range []int{2, 1, 4, 3, 5} {
		require.NoError(t, tree.Put(k, struct{}{}))
	}
	require.True(t, tree.Remove(1))

	root := rootOf(tree)
	assert.Equal(t, 4, root.key)
	assert.Equal(t, 2, root.left.key)
	assert.Equal(t, 3, root.left.right.key)
	assert.Equal(t, 5, root.right.key)
	assert.Equal(t, 3, root.height)
	assert.True(t, tree.RepOK())
}

// the deleted slot is refilled from the in-order successor
func TestTreeRemoveTwoChildren(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		require.NoError(t, tree.Put(k, "data"))
	}
	root := rootOf(tree)
	require.Equal(t, 50, root.key)

	require.NoError(t, tree.Put(60, "successor"))
	require.True(t, tree.Remove(50))

	assert.Same(t, root, rootOf(tree))
	assert.Equal(t, 60, root.key)
	assert.Equal(t, "successor", root.value)
	assert.Nil(t, root.right.left)
	assert.Equal(t, 6, tree.Size())
	assert.True(t, tree.RepOK())
}

func TestTreeRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	tree := New[int, int]()
	model := map[int]int{}

	for i := 0; i < 20000; i++ {
		k := rnd.IntN(500)
		if rnd.IntN(3) == 0 {
			_, present := model[k]
			assert.Equal(t, present, tree.Remove(k))
			delete(model, k)
		} else {
			require.NoError(t, tree.Put(k, i))
			model[k] = i
		}

		if !tree.RepOK() {
			var sb strings.Builder
			tree.Print(&sb, true)
			t.Fatalf("inconsistent tree after op %d on key %d\n%s", i, k, sb.String())
		}
		require.Equal(t, len(model), tree.Size())
		require.LessOrEqual(t, tree.Height(), heightBound(tree.Size()))
	}

	keys := tree.Keys()
	assert.Len(t, keys, len(model))
	assert.True(t, sort.IntsAreSorted(keys))
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
	for k, v := range model {
		got, ok := tree.Get(k)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestTreeHeightBound(t *testing.T) {
	tree := New[int, struct{}]()
	assert.Equal(t, 0, tree.Height())
	for n := 1; n <= 1<<14; n++ {
		require.NoError(t, tree.Put(n, struct{}{}))
		if n&(n-1) == 0 {
			assert.LessOrEqual(t, tree.Height(), heightBound(n), "n=%d", n)
		}
	}
	// sequential inserts into an AVL tree give a perfect tree
	assert.Equal(t, 15, tree.Height())
	assert.True(t, tree.RepOK())
}

func TestNewFuncNilComparator(t *testing.T) {
	tree, err := NewFunc[string, int](nil)
	assert.Nil(t, tree)
	assert.Equal(t, ErrNilComparator, err)
	assert.True(t, IsErrInvalid(err))
}

type version struct {
	major, minor int
}

func compareVersion(a, b *version) int {
	if a.major != b.major {
		return a.major - b.major
	}
	return a.minor - b.minor
}

func TestNewFuncPointerKeys(t *testing.T) {
	tree, err := NewFunc[*version, string](compareVersion)
	require.NoError(t, err)

	require.NoError(t, tree.Put(&version{1, 2}, "a"))
	require.NoError(t, tree.Put(&version{1, 0}, "b"))
	require.NoError(t, tree.Put(&version{0, 9}, "c"))

	// equal-comparing distinct pointers are one key
	require.NoError(t, tree.Put(&version{1, 0}, "d"))
	assert.Equal(t, 3, tree.Size())
	v, ok := tree.Get(&version{1, 0})
	assert.True(t, ok)
	assert.Equal(t, "d", v)

	before := tree.Keys()
	err = tree.Put(nil, "nil")
	assert.Equal(t, ErrNilKey, err)
	assert.True(t, IsErrInvalid(err))
	assert.Equal(t, before, tree.Keys())
	assert.True(t, tree.RepOK())
}

func TestNewFuncNilSliceKey(t *testing.T) {
	tree, err := NewFunc[[]byte, int](func(a, b []byte) int {
		return strings.Compare(string(a), string(b))
	})
	require.NoError(t, err)
	assert.NoError(t, tree.Put(nil, 1))
	v, ok := tree.Get([]byte{})
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestNilTree(t *testing.T) {
	var empty *tree[int, int]
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Size())
	assert.False(t, empty.Contains(1))
	assert.Empty(t, empty.Keys())
	assert.True(t, empty.RepOK())
	assert.Equal(t, -1, empty.Rank(1))
}

func TestBigKeySet(t *testing.T) {
	keys := getKeys("1mvl5_10")
	fmt.Printf("key len %d\n", len(keys))

	tree := New[string, int]()
	for i, k := range keys {
		require.NoError(t, tree.Put(k, i))
	}
	require.True(t, tree.RepOK())
	assert.LessOrEqual(t, tree.Height(), heightBound(tree.Size()))

	expected := uniqueSorted(keys)
	assert.Equal(t, len(expected), tree.Size())
	assert.Equal(t, expected, tree.Keys())

	for i, k := range expected {
		if i%2 == 0 {
			require.True(t, tree.Remove(k))
		}
	}
	require.True(t, tree.RepOK())
	assert.Equal(t, len(expected)/2, tree.Size())
	for i, k := range expected {
		assert.Equal(t, i%2 == 1, tree.Contains(k))
	}
}

func uniqueSorted(keys []string) []string {
	out := append([]string{}, keys...)
	sort.Strings(out)
	n := 0
	for i, k := range out {
		if i == 0 || k != out[n-1] {
			out[n] = k
			n++
		}
	}
	return out[:n]
}

var cache map[string][]string = map[string][]string{}

func getKeys(fn string) []string {
	ss, ok := cache[fn]
	if ok {
		return ss
	}
	ks := testkeys.Load(fn)
	cache[fn] = ks
	return ks
}

func benchBigKeySet(b *testing.B, f func(b *testing.B, typ string, key []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)

		n := len(keys)
		if n < 1000 {
			continue
		}

		b.Run(fn, func(b *testing.B) {
			f(b, fn, keys)
		})
	}
}

func BenchmarkWordsTreePut(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			tree := New[string, struct{}]()

			for _, k := range keys {
				_ = tree.Put(k, struct{}{})
			}
		}
	})
}

func BenchmarkWordsTreeGet(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		tree := New[string, struct{}]()
		for _, k := range keys {
			_ = tree.Put(k, struct{}{})
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.Get(keys[i%len(keys)])
		}
	})
}

func BenchmarkWordsTreeRemove(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			b.StopTimer()
			tree := New[string, struct{}]()
			for _, k := range keys {
				_ = tree.Put(k, struct{}{})
			}
			b.StartTimer()

			for _, k := range keys {
				tree.Remove(k)
			}
		}
	})
}
