package x

// Validater is any struct that can be validated.
// Not the same interface as validator, which is
// an abci term for signing blocks.
type Validater interface {
	Validate() error
}
