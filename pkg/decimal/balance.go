package decimal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxScale caps both decimals and the magnitude of a value's exponent plus
// decimals. Token precisions in use are far below it.
const MaxScale = 1024

// Balance represents a token amount in display units with arbitrary precision
type Balance struct {
	decimal.Decimal
}

// GetBalanceWithDecimal converts a raw base-unit balance into its display form.
// Invalid input (non-positive decimals, empty or unparseable balance) yields "0".
func GetBalanceWithDecimal(balance string, decimals int) string {
	if decimals <= 0 || balance == "" {
		return "0"
	}
	b, err := FromBaseUnits(balance, decimals)
	if err != nil {
		return "0"
	}
	return b.String()
}

// NewBalanceFromString creates a Balance from a display-unit string such as "1.25"
func NewBalanceFromString(value string) (Balance, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Balance{}, fmt.Errorf("invalid balance %q: %w", value, err)
	}
	return Balance{d}, nil
}

// FromBaseUnits parses a raw base-unit amount and shifts it left by decimals places.
func FromBaseUnits(raw string, decimals int) (Balance, error) {
	if err := checkDecimals(decimals); err != nil {
		return Balance{}, err
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Balance{}, fmt.Errorf("invalid base-unit balance %q: %w", raw, err)
	}
	if err := checkScale(d, decimals); err != nil {
		return Balance{}, err
	}
	return Balance{d.Shift(-int32(decimals))}, nil
}

// ToBaseUnits renders the balance as an integer string of base units.
// It fails when the balance carries more fractional digits than decimals allows.
func (b Balance) ToBaseUnits(decimals int) (string, error) {
	if err := checkDecimals(decimals); err != nil {
		return "", err
	}
	if err := checkScale(b.Decimal, decimals); err != nil {
		return "", err
	}
	shifted := b.Decimal.Shift(int32(decimals))
	if !shifted.Equal(shifted.Truncate(0)) {
		return "", fmt.Errorf("balance %s has more than %d fractional digits", b.String(), decimals)
	}
	return shifted.Truncate(0).String(), nil
}

func checkDecimals(decimals int) error {
	if decimals < 0 {
		return fmt.Errorf("decimals must not be negative, got %d", decimals)
	}
	if decimals > MaxScale {
		return fmt.Errorf("decimals %d out of range (max %d)", decimals, MaxScale)
	}
	return nil
}

// checkScale rejects values whose |exponent| + decimals exceeds MaxScale.
func checkScale(d decimal.Decimal, decimals int) error {
	exp := int64(d.Exponent())
	if exp < 0 {
		exp = -exp
	}
	if exp+int64(decimals) > MaxScale {
		return fmt.Errorf("exponent %d with %d decimals out of range (max %d)", d.Exponent(), decimals, MaxScale)
	}
	return nil
}

// String returns the plain-notation value without trailing fractional zeros.
func (b Balance) String() string {
	return b.Decimal.String()
}

// StringFixed returns the value with exactly places fractional digits
func (b Balance) StringFixed(places int32) string {
	return b.Decimal.StringFixed(places)
}
