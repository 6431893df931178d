package harness

import (
	"fmt"
	"math"
	"slices"

	"github.com/bitmark-inc/logger"

	"github.com/e11jah/avl"
)

// Report summarises a run.
type Report struct {
	Name      string
	Ops       int
	Puts      int
	Removes   int
	Lookups   int
	Size      int
	Height    int
	MaxHeight int
}

// Runner applies operations to a tree and to a map model in lockstep.
type Runner struct {
	name   string
	tree   avl.Tree[string, string]
	model  map[string]string
	log    *logger.L
	report Report
}

// NewRunner returns a runner over an empty tree.  log may be nil.
func NewRunner(name string, log *logger.L) *Runner {
	return &Runner{
		name:   name,
		tree:   avl.New[string, string](),
		model:  make(map[string]string),
		log:    log,
		report: Report{Name: name},
	}
}

func (r *Runner) Tree() avl.Tree[string, string] {
	return r.tree
}

func (r *Runner) Report() Report {
	r.report.Size = r.tree.Size()
	r.report.Height = r.tree.Height()
	return r.report
}

// MaxHeight is the AVL worst case height for n nodes.
func MaxHeight(n int) int {
	return int(1.44 * math.Log2(float64(n+2)))
}

// Apply performs one operation and verifies the tree afterwards.
func (r *Runner) Apply(op Op) error {
	mutated, err := r.apply(op)
	if err != nil || !mutated {
		return err
	}
	return r.check()
}

// internal: perform op against tree and model, reporting whether it was
// a mutation
func (r *Runner) apply(op Op) (bool, error) {
	r.report.Ops += 1
	if nil != r.log {
		r.log.Tracef("%s: %s", r.name, op)
	}

	switch op.Kind {
	case OpPut:
		r.report.Puts += 1
		if err := r.tree.Put(op.Key, op.Value); err != nil {
			return false, err
		}
		r.model[op.Key] = op.Value
		return true, nil

	case OpRemove:
		r.report.Removes += 1
		_, present := r.model[op.Key]
		removed := r.tree.Remove(op.Key)
		delete(r.model, op.Key)
		if removed != present {
			return true, fmt.Errorf("%w: remove reported %v for key present: %v", ErrMismatch, removed, present)
		}
		return true, nil

	case OpGet:
		r.report.Lookups += 1
		v, ok := r.tree.Get(op.Key)
		mv, mok := r.model[op.Key]
		if v != mv || ok != mok {
			return false, fmt.Errorf("%w: get: %q,%v  model: %q,%v", ErrMismatch, v, ok, mv, mok)
		}
		return false, expect(op, v, ok)

	case OpContains:
		r.report.Lookups += 1
		ok := r.tree.Contains(op.Key)
		if _, mok := r.model[op.Key]; ok != mok {
			return false, fmt.Errorf("%w: contains: %v  model: %v", ErrMismatch, ok, mok)
		}
		return false, expect(op, "", ok)
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownOp, op.Kind)
}

// script checks on get and contains
func expect(op Op, v string, ok bool) error {
	if op.Absent && ok {
		return fmt.Errorf("%w: key present", ErrExpectation)
	}
	if !op.Absent && nil != op.Expect && !ok {
		return fmt.Errorf("%w: key absent", ErrExpectation)
	}
	if op.Kind == OpGet && nil != op.Expect && *op.Expect != v {
		return fmt.Errorf("%w: value: %q  expected: %q", ErrExpectation, v, *op.Expect)
	}
	return nil
}

// structural checks after each mutation
func (r *Runner) check() error {
	if !r.tree.RepOK() {
		return fmt.Errorf("%w: representation check failed", ErrInvariant)
	}
	size := r.tree.Size()
	if size != len(r.model) {
		return fmt.Errorf("%w: size: %d  model: %d", ErrMismatch, size, len(r.model))
	}
	h := r.tree.Height()
	if h > MaxHeight(size) {
		return fmt.Errorf("%w: height: %d exceeds bound: %d for %d nodes", ErrInvariant, h, MaxHeight(size), size)
	}
	if h > r.report.MaxHeight {
		r.report.MaxHeight = h
	}
	return nil
}

// Run applies ops in order, stopping at the first failure.
func (r *Runner) Run(ops []Op) (Report, error) {
	for i, op := range ops {
		if err := r.Apply(op); err != nil {
			if nil != r.log {
				r.log.Errorf("%s: op[%d] %s: %s", r.name, i, op, err)
			}
			return r.Report(), fmt.Errorf("%s: op[%d] %s: %w", r.name, i, op, err)
		}
	}
	if err := r.verifyKeys(); err != nil {
		return r.Report(), fmt.Errorf("%s: %w", r.name, err)
	}
	report := r.Report()
	if nil != r.log {
		r.log.Infof("%s: ops: %d  size: %d  height: %d  max height: %d", r.name, report.Ops, report.Size, report.Height, report.MaxHeight)
	}
	return report, nil
}

// RunScript runs a script and then its final-state checks.
func (r *Runner) RunScript(script *Script) (Report, error) {
	report, err := r.Run(script.Ops)
	if err != nil {
		return report, err
	}
	if nil != script.ExpectSize && *script.ExpectSize != report.Size {
		return report, fmt.Errorf("%s: %w: size: %d  expected: %d", r.name, ErrExpectation, report.Size, *script.ExpectSize)
	}
	if nil != script.ExpectKeys && !slices.Equal(script.ExpectKeys, r.tree.Keys()) {
		return report, fmt.Errorf("%s: %w: keys: %q  expected: %q", r.name, ErrExpectation, r.tree.Keys(), script.ExpectKeys)
	}
	return report, nil
}

// the traversal must list exactly the model's keys in ascending order
func (r *Runner) verifyKeys() error {
	keys := r.tree.Keys()
	if len(keys) != len(r.model) {
		return fmt.Errorf("%w: keys: %d  model: %d", ErrMismatch, len(keys), len(r.model))
	}
	for i, k := range keys {
		if i > 0 && keys[i-1] >= k {
			return fmt.Errorf("%w: keys out of order at %d: %q >= %q", ErrInvariant, i, keys[i-1], k)
		}
		if _, ok := r.model[k]; !ok {
			return fmt.Errorf("%w: unexpected key: %q", ErrMismatch, k)
		}
	}
	return nil
}
