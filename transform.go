package modmap

import "golang.org/x/sync/errgroup"

// modifyPair runs both chains over one pair. The first chain failure
// aborts; pairs are never half-modified from a caller's point of view
// because errors discard the whole bulk result.
func (t *Type[K, V]) modifyPair(p Pair[K, V]) (Pair[K, V], error) {
	k, err := t.keys.apply(p.Key)
	if err != nil {
		return p, err
	}
	v, err := t.values.apply(p.Value)
	if err != nil {
		return p, err
	}
	return Pair[K, V]{Key: k, Value: v}, nil
}

// transformPairs is the single bulk-transform entry point: it applies
// modifyPair to every pair using the configured [Strategy]. The worker
// pool for the parallel strategies lives and dies inside this call.
func (t *Type[K, V]) transformPairs(pairs []Pair[K, V]) ([]Pair[K, V], error) {
	switch t.strategy {
	case ParallelOrdered:
		return t.transformOrdered(pairs)
	case ParallelUnordered:
		return t.transformUnordered(pairs)
	}

	out := make([]Pair[K, V], len(pairs))
	for i, p := range pairs {
		mp, err := t.modifyPair(p)
		if err != nil {
			return nil, err
		}
		out[i] = mp
	}
	return out, nil
}

// transformOrdered pays a result-slot synchronization cost to keep the
// output in input order.
func (t *Type[K, V]) transformOrdered(pairs []Pair[K, V]) ([]Pair[K, V], error) {
	out := make([]Pair[K, V], len(pairs))
	g := new(errgroup.Group)
	g.SetLimit(t.poolSize())
	for i, p := range pairs {
		g.Go(func() error {
			mp, err := t.modifyPair(p)
			if err != nil {
				return err
			}
			out[i] = mp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// transformUnordered collects results as workers finish. Throughput
// over order: slow modifiers on one pair do not hold back the rest.
func (t *Type[K, V]) transformUnordered(pairs []Pair[K, V]) ([]Pair[K, V], error) {
	results := make(chan Pair[K, V], len(pairs))
	g := new(errgroup.Group)
	g.SetLimit(t.poolSize())
	for _, p := range pairs {
		g.Go(func() error {
			mp, err := t.modifyPair(p)
			if err != nil {
				return err
			}
			results <- mp
			return nil
		})
	}
	err := g.Wait()
	close(results)
	if err != nil {
		return nil, err
	}
	out := make([]Pair[K, V], 0, len(results))
	for p := range results {
		out = append(out, p)
	}
	return out, nil
}

// build assembles fully-modified pairs into a fresh backing map, in
// iteration order of the transform result (last write wins on key
// collisions). Nothing is merged into a live map until every pair has
// been modified and hash-checked, so a failed chain never leaves a
// half-updated map behind.
func (t *Type[K, V]) build(pairs []Pair[K, V]) (map[K]V, error) {
	out, err := t.transformPairs(pairs)
	if err != nil {
		return nil, err
	}
	data := make(map[K]V, len(out))
	for _, p := range out {
		if err := checkHashable(p.Key); err != nil {
			return nil, err
		}
		data[p.Key] = p.Value
	}
	return data, nil
}
