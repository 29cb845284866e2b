package ledger

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount covers every reason an amount string cannot be converted.
var ErrInvalidAmount = errors.New("invalid amount")

var maxUint64 = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// ToBaseUnits converts a human amount ("1.5") into asset base units for an
// asset with the given number of decimals.
func ToBaseUnits(amount string, decimals int32) (uint64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidAmount, amount, err)
	}
	if d.Sign() <= 0 {
		return 0, fmt.Errorf("%w %q: must be positive", ErrInvalidAmount, amount)
	}
	units := d.Shift(decimals)
	if !units.IsInteger() {
		return 0, fmt.Errorf("%w %q: more than %d decimal places", ErrInvalidAmount, amount, decimals)
	}
	if units.GreaterThan(maxUint64) {
		return 0, fmt.Errorf("%w %q: too large", ErrInvalidAmount, amount)
	}
	return units.BigInt().Uint64(), nil
}

// FormatBaseUnits renders base units with a fixed number of decimals.
func FormatBaseUnits(units uint64, decimals int32) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -decimals).StringFixed(decimals)
}
