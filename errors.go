package lattice

// EmptyInputError is returned from [Root] and [SentenceRoot]
// if the supplied block sequence contains no blocks.
// An empty sequence has no defined root;
// padding never invents a tree where there was no data.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "cannot calculate the root of an empty block sequence"
}
