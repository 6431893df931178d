package harness

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/logger"
)

// Load inserts every key, then removes the given fraction of them spread
// evenly over the input.  The tree is verified once after each phase, so
// key sets of millions of entries stay practical.
func Load(name string, keys []string, removeFraction float64, log *logger.L) (Report, error) {
	if removeFraction < 0 || removeFraction > 1 {
		return Report{Name: name}, fmt.Errorf("%w: remove fraction: %v", ErrInvalidParameter, removeFraction)
	}

	r := NewRunner(name, log)
	for i, k := range keys {
		if _, err := r.apply(Op{Kind: OpPut, Key: k, Value: strconv.Itoa(i)}); err != nil {
			return r.Report(), fmt.Errorf("%s: put[%d] %q: %w", name, i, k, err)
		}
	}
	if err := r.check(); err != nil {
		return r.Report(), fmt.Errorf("%s: after insert: %w", name, err)
	}
	if nil != log {
		log.Infof("%s: inserted: %d  distinct: %d  height: %d", name, len(keys), r.tree.Size(), r.tree.Height())
	}

	toRemove := int(float64(len(keys)) * removeFraction)
	for i := 0; i < toRemove; i++ {
		// spread the removals across the input order
		k := keys[i*len(keys)/toRemove]
		if _, err := r.apply(Op{Kind: OpRemove, Key: k}); err != nil {
			return r.Report(), fmt.Errorf("%s: remove[%d] %q: %w", name, i, k, err)
		}
	}
	if err := r.check(); err != nil {
		return r.Report(), fmt.Errorf("%s: after remove: %w", name, err)
	}
	if err := r.verifyKeys(); err != nil {
		return r.Report(), fmt.Errorf("%s: %w", name, err)
	}

	report := r.Report()
	if nil != log {
		log.Infof("%s: removed: %d  size: %d  height: %d", name, report.Removes, report.Size, report.Height)
	}
	return report, nil
}
