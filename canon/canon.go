package canon

import (
	"github.com/katalvlaran/graphcanon"
	"github.com/katalvlaran/graphcanon/graph"
	"github.com/katalvlaran/graphcanon/perm"
)

// Labeling is a canonical vertex order: Labeling[pos] is the original
// vertex index that the elected canonical leaf places at position pos.
type Labeling []graphcanon.VIdx

// Canonicalize runs the individualization-refinement search over g and
// returns its canonical labeling together with every automorphism
// generator discovered during the search. Graphs with zero vertices
// return ErrEmptyGraph. A precondition violation raised by a collaborator
// as a *graphcanon.ViolationError panic is recovered here and reported as
// a plain error instead; any other panic propagates unchanged.
func Canonicalize(g *graph.Graph) (lab Labeling, gens []perm.Permutation, err error) {
	if g.NumVertices() == 0 {
		return nil, nil, graphcanon.ErrEmptyGraph
	}

	defer func() {
		if r := recover(); r != nil {
			if ve, ok := r.(*graphcanon.ViolationError); ok {
				lab, gens, err = nil, nil, ve
				return
			}
			panic(r)
		}
	}()

	d := newDriver(g)
	d.search(d.root)
	lab, gens = d.canonLabeling(), d.chain.Generators()
	d.arena.Release()
	return lab, gens, nil
}
