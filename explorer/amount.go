package explorer

import "math/big"

// MinorUnitsPerCoin is the number of satoshis in one bitcoin.
const MinorUnitsPerCoin = 100_000_000

var minorUnitsPerCoin = big.NewInt(MinorUnitsPerCoin)

// FormatAmount renders a minor-unit value in coins with exactly 8 fractional
// digits. The division is exact, so no rounding takes place.
func FormatAmount(minor *big.Int) string {
	if minor == nil {
		minor = new(big.Int)
	}
	return new(big.Rat).SetFrac(minor, minorUnitsPerCoin).FloatString(8)
}
