package harness

import (
	"fmt"
	"math/rand/v2"
)

// lookups interleaved with mutations
const lookupRatio = 0.1

// Generate returns a reproducible random sequence of count operations over
// keySpace distinct keys.  removeRatio is the share of mutations that are
// removes.
func Generate(seed uint64, count int, keySpace int, removeRatio float64) ([]Op, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: operation count: %d", ErrInvalidParameter, count)
	}
	if keySpace <= 0 {
		return nil, fmt.Errorf("%w: key space: %d", ErrInvalidParameter, keySpace)
	}
	if removeRatio < 0 || removeRatio > 1 {
		return nil, fmt.Errorf("%w: remove ratio: %v", ErrInvalidParameter, removeRatio)
	}

	width := len(fmt.Sprint(keySpace - 1))
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	ops := make([]Op, count)
	for i := range ops {
		key := fmt.Sprintf("%0*d", width, rnd.IntN(keySpace))
		switch r := rnd.Float64(); {
		case r < lookupRatio:
			if rnd.IntN(2) == 0 {
				ops[i] = Op{Kind: OpGet, Key: key}
			} else {
				ops[i] = Op{Kind: OpContains, Key: key}
			}
		case r < lookupRatio+(1-lookupRatio)*removeRatio:
			ops[i] = Op{Kind: OpRemove, Key: key}
		default:
			ops[i] = Op{Kind: OpPut, Key: key, Value: fmt.Sprintf("data:%s:%d", key, i)}
		}
	}
	return ops, nil
}
