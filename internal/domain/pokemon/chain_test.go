package pokemon_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/okian/explorer/internal/domain/pokemon"
	. "github.com/smartystreets/goconvey/convey"
)

// linear builds a chain with one child per stage.
func linear(names ...string) *pokemon.EvolutionNode {
	var root, tail *pokemon.EvolutionNode
	for _, n := range names {
		node := &pokemon.EvolutionNode{Species: n}
		if root == nil {
			root = node
		} else {
			tail.EvolvesTo = []*pokemon.EvolutionNode{node}
		}
		tail = node
	}
	return root
}

type chainSource struct {
	chain *pokemon.EvolutionChain
	err   error
	refs  []string
}

func (s *chainSource) EvolutionChain(_ context.Context, ref string) (*pokemon.EvolutionChain, error) {
	s.refs = append(s.refs, ref)
	return s.chain, s.err
}

func TestWalkChain(t *testing.T) {
	Convey("Given a linear chain of three stages", t, func() {
		root := linear("pichu", "pikachu", "raichu")

		Convey("When walking it", func() {
			chain, err := pokemon.WalkChain(root, pokemon.DefaultChainBound)

			Convey("Then all names should come back in root-to-leaf order", func() {
				So(err, ShouldBeNil)
				So(chain.Names, ShouldResemble, []string{"pichu", "pikachu", "raichu"})
				So(chain.Truncated, ShouldBeFalse)
				So(chain.DiscardedBranches, ShouldEqual, 0)
				So(chain.Root, ShouldEqual, root)
			})
		})
	})

	Convey("Given linear chains of various lengths", t, func() {
		for _, n := range []int{1, 2, 5, 50} {
			names := make([]string, n)
			for i := range names {
				names[i] = fmt.Sprintf("stage-%d", i)
			}
			chain, err := pokemon.WalkChain(linear(names...), pokemon.DefaultChainBound)

			So(err, ShouldBeNil)
			So(chain.Names, ShouldResemble, names)
			So(chain.Truncated, ShouldBeFalse)
		}
	})

	Convey("Given a branching chain", t, func() {
		// eevee has many evolutions; only the first is followed.
		root := &pokemon.EvolutionNode{
			Species: "eevee",
			EvolvesTo: []*pokemon.EvolutionNode{
				{Species: "vaporeon"},
				{Species: "jolteon"},
				{Species: "flareon"},
			},
		}

		Convey("When walking it", func() {
			chain, err := pokemon.WalkChain(root, pokemon.DefaultChainBound)

			Convey("Then only the first branch should be returned", func() {
				So(err, ShouldBeNil)
				So(chain.Names, ShouldResemble, []string{"eevee", "vaporeon"})
				So(chain.DiscardedBranches, ShouldEqual, 2)
			})
		})

		Convey("When listing every branch", func() {
			branches := pokemon.Branches(root, pokemon.DefaultChainBound)

			Convey("Then each alternate path should appear", func() {
				So(branches, ShouldResemble, [][]string{
					{"eevee", "vaporeon"},
					{"eevee", "jolteon"},
					{"eevee", "flareon"},
				})
			})
		})
	})

	Convey("Given a branch deeper than the first-branch path", t, func() {
		root := &pokemon.EvolutionNode{
			Species: "wurmple",
			EvolvesTo: []*pokemon.EvolutionNode{
				linear("silcoon", "beautifly"),
				linear("cascoon", "dustox", "imaginary"),
			},
		}

		chain, err := pokemon.WalkChain(root, pokemon.DefaultChainBound)

		Convey("Then the length should be the depth of the first path", func() {
			So(err, ShouldBeNil)
			So(chain.Names, ShouldResemble, []string{"wurmple", "silcoon", "beautifly"})
			So(chain.DiscardedBranches, ShouldEqual, 1)
		})
	})

	Convey("Given a chain longer than the bound", t, func() {
		names := make([]string, 120)
		for i := range names {
			names[i] = fmt.Sprintf("stage-%d", i)
		}

		chain, err := pokemon.WalkChain(linear(names...), 50)

		Convey("Then the walk should stop at the bound and flag truncation", func() {
			So(err, ShouldBeNil)
			So(len(chain.Names), ShouldEqual, 50)
			So(chain.Names, ShouldResemble, names[:50])
			So(chain.Truncated, ShouldBeTrue)
		})
	})

	Convey("Given a cyclic chain", t, func() {
		a := &pokemon.EvolutionNode{Species: "a"}
		b := &pokemon.EvolutionNode{Species: "b", EvolvesTo: []*pokemon.EvolutionNode{a}}
		a.EvolvesTo = []*pokemon.EvolutionNode{b}

		chain, err := pokemon.WalkChain(a, 7)

		Convey("Then the walk should terminate at the bound", func() {
			So(err, ShouldBeNil)
			So(chain.Names, ShouldResemble, []string{"a", "b", "a", "b", "a", "b", "a"})
			So(chain.Truncated, ShouldBeTrue)
		})

		Convey("Then listing branches should also terminate", func() {
			So(pokemon.Branches(a, 4), ShouldResemble, [][]string{{"a", "b", "a", "b"}})
		})
	})

	Convey("Given malformed chains", t, func() {
		Convey("When the root is missing", func() {
			_, err := pokemon.WalkChain(nil, 10)
			So(errors.Is(err, pokemon.ErrMalformedChain), ShouldBeTrue)
		})

		Convey("When the root has no species name", func() {
			_, err := pokemon.WalkChain(&pokemon.EvolutionNode{}, 10)
			So(errors.Is(err, pokemon.ErrMalformedChain), ShouldBeTrue)
		})

		Convey("When a later stage has no species name", func() {
			root := &pokemon.EvolutionNode{Species: "a", EvolvesTo: []*pokemon.EvolutionNode{{}}}
			_, err := pokemon.WalkChain(root, 10)
			So(errors.Is(err, pokemon.ErrMalformedChain), ShouldBeTrue)
		})
	})
}

func TestWalk(t *testing.T) {
	Convey("Given a chain source", t, func() {
		ctx := context.Background()
		src := &chainSource{chain: &pokemon.EvolutionChain{ID: 10, Root: linear("pichu", "pikachu", "raichu")}}

		Convey("When walking a reference", func() {
			chain, err := pokemon.Walk(ctx, src, "https://pokeapi.co/api/v2/evolution-chain/10/", 50)

			Convey("Then the chain should be fetched once and walked", func() {
				So(err, ShouldBeNil)
				So(src.refs, ShouldHaveLength, 1)
				So(chain.ID, ShouldEqual, 10)
				So(chain.Names, ShouldResemble, []string{"pichu", "pikachu", "raichu"})
			})
		})

		Convey("When the reference is empty", func() {
			_, err := pokemon.Walk(ctx, src, "", 50)

			Convey("Then no request should be made", func() {
				So(errors.Is(err, pokemon.ErrMalformedChain), ShouldBeTrue)
				So(src.refs, ShouldBeEmpty)
			})
		})

		Convey("When the fetch fails", func() {
			src.err = pokemon.ErrNotFound
			_, err := pokemon.Walk(ctx, src, "https://pokeapi.co/api/v2/evolution-chain/10/", 50)

			Convey("Then a no-chain error should wrap the cause", func() {
				So(errors.Is(err, pokemon.ErrMalformedChain), ShouldBeTrue)
				So(errors.Is(err, pokemon.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}
