package either

// Sequence collects the Right values in input order. The first Left in
// input order is returned instead when there is one.
func Sequence[L, R any](eithers ...*Either[L, R]) *Either[L, []R] {
	values := make([]R, 0, len(eithers))
	for _, e := range eithers {
		if e.IsLeft() {
			return leftAs[[]R](e)
		}
		values = append(values, e.right)
	}
	return Right[L](values)
}

// Traverse maps f over every item, then sequences the results.
func Traverse[A, L, R any](f func(A) *Either[L, R]) func(items []A) *Either[L, []R] {
	return func(items []A) *Either[L, []R] {
		eithers := make([]*Either[L, R], len(items))
		for i, item := range items {
			eithers[i] = f(item)
		}
		return Sequence(eithers...)
	}
}

// Partition splits eithers into Left values and Right values, each in
// input order. Nothing contributes to neither.
func Partition[L, R any](eithers ...*Either[L, R]) (lefts []L, rights []R) {
	for _, e := range eithers {
		switch {
		case e.IsRight():
			rights = append(rights, e.right)
		case !e.IsNothing():
			lefts = append(lefts, e.left)
		}
	}
	return lefts, rights
}
