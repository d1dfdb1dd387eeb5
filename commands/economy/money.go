package economy

import "errors"

var (
	// errNoAmount rejects zero and negative transfer amounts.
	errNoAmount = errors.New("nothing to transfer")
	// errInsufficient rejects transfers exceeding the source pool.
	errInsufficient = errors.New("insufficient funds")
)

// movePool validates a transfer of amount out of src into dst and applies it.
// The pools are only touched when the transfer is valid, so the sum across
// both is preserved either way.
func movePool(src, dst *int, amount int) error {
	if amount <= 0 {
		return errNoAmount
	}
	if amount > *src {
		return errInsufficient
	}
	*src -= amount
	*dst += amount
	return nil
}
