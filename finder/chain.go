package finder

import "context"

// Predicate decides whether an absolute path belongs in the result. It may
// fail, in which case the whole search fails and the error is propagated
// unchanged inside a *PredicateError. Predicates must be safe for concurrent
// use: the context-aware engine may evaluate entries from different roots on
// different goroutines.
type Predicate func(ctx context.Context, path string) (bool, error)

// outcome is the tagged result of evaluating a predicate chain against one
// path. Keeping it an explicit value (rather than overloading bool+error at
// every call site) makes the short-circuit rules independently testable.
type outcome int

const (
	// outcomePass means every predicate returned true.
	outcomePass outcome = iota
	// outcomeFail means some predicate returned false; later ones never ran.
	outcomeFail
	// outcomeErrored means some predicate failed; later ones never ran.
	outcomeErrored
)

// chain is an ordered sequence of predicates evaluated as a single AND.
type chain []Predicate

// evaluate runs the chain against path in order. It stops at the first
// predicate that returns false (outcomeFail) or fails (outcomeErrored, with
// the cause); only if all predicates return true is the result outcomePass.
// An empty chain trivially passes; callers that want "no predicates means
// nothing matches" must short-circuit before reaching the chain, which the
// traversal engine does.
func (c chain) evaluate(ctx context.Context, path string) (outcome, error) {
	for _, p := range c {
		ok, err := p(ctx, path)
		if err != nil {
			return outcomeErrored, err
		}
		if !ok {
			return outcomeFail, nil
		}
	}
	return outcomePass, nil
}
