package service

// CodeGenerator draws random invitation codes.
type CodeGenerator interface {
	// NumericCode returns a uniformly random string of length decimal digits.
	NumericCode(length int) (string, error)

	// HexCode returns the hex encoding of n random bytes.
	HexCode(n int) (string, error)
}
