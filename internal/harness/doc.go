// Package harness drives an avl tree through sequences of operations and
// checks it against a plain map model after every mutation.
//
// Sequences come from YAML scripts, from a seeded random generator, or from
// large key sets.  A failure carries the index and operation at which the
// tree first disagreed with the model or broke one of its invariants.
//
// Note: a Runner owns its tree and is not safe for concurrent use.
package harness
