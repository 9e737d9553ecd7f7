package pokemon

import (
	"context"
	"fmt"
)

// DefaultChainBound caps chain walks. Real chains have at most three stages;
// the bound only matters for malformed or cyclic input.
const DefaultChainBound = 50

// ChainSource fetches an evolution chain resource by its locator.
type ChainSource interface {
	EvolutionChain(ctx context.Context, ref string) (*EvolutionChain, error)
}

// WalkChain follows the first listed evolution from root until a leaf or
// until bound species have been collected. Alternate branches are counted in
// DiscardedBranches but not followed.
func WalkChain(root *EvolutionNode, bound int) (EvolutionChain, error) {
	if root == nil || root.Species == "" {
		return EvolutionChain{}, ErrMalformedChain
	}
	if bound < 1 {
		bound = DefaultChainBound
	}

	chain := EvolutionChain{Root: root}
	for current := root; current != nil; {
		if len(chain.Names) == bound {
			chain.Truncated = true
			break
		}
		if current.Species == "" {
			return EvolutionChain{}, fmt.Errorf("%w: unnamed stage after %v", ErrMalformedChain, chain.Names)
		}
		chain.Names = append(chain.Names, current.Species)

		if len(current.EvolvesTo) == 0 {
			break
		}
		chain.DiscardedBranches += len(current.EvolvesTo) - 1
		current = current.EvolvesTo[0]
	}
	return chain, nil
}

// Walk fetches the chain behind ref and walks it.
func Walk(ctx context.Context, src ChainSource, ref string, bound int) (EvolutionChain, error) {
	if ref == "" {
		return EvolutionChain{}, fmt.Errorf("%w: species has no chain reference", ErrMalformedChain)
	}
	fetched, err := src.EvolutionChain(ctx, ref)
	if err != nil {
		return EvolutionChain{}, fmt.Errorf("%w: %w", ErrMalformedChain, err)
	}
	walked, err := WalkChain(fetched.Root, bound)
	if err != nil {
		return EvolutionChain{}, err
	}
	walked.ID = fetched.ID
	return walked, nil
}

// Branches lists every root-to-leaf path, each capped at bound species.
// The explorer reports only the first; this exists so callers can show what
// the first-branch walk left out.
func Branches(root *EvolutionNode, bound int) [][]string {
	if root == nil || root.Species == "" {
		return nil
	}
	if bound < 1 {
		bound = DefaultChainBound
	}
	var out [][]string
	var visit func(n *EvolutionNode, path []string)
	visit = func(n *EvolutionNode, path []string) {
		path = append(path[:len(path):len(path)], n.Species)
		var next []*EvolutionNode
		for _, child := range n.EvolvesTo {
			if child != nil && child.Species != "" {
				next = append(next, child)
			}
		}
		if len(next) == 0 || len(path) == bound {
			out = append(out, path)
			return
		}
		for _, child := range next {
			visit(child, path)
		}
	}
	visit(root, nil)
	return out
}
