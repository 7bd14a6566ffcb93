package wallet

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/coinscribe/pkg/errors"
)

// Unit is the denomination amounts are displayed in.
type Unit int

const (
	UnitBitcoin Unit = iota
	UnitBit
	UnitSatoshi
)

// ParseUnit parses a --unit flag value.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "btc", "bitcoin", "":
		return UnitBitcoin, nil
	case "bit", "bits":
		return UnitBit, nil
	case "sat", "sats", "satoshi":
		return UnitSatoshi, nil
	default:
		return UnitBitcoin, errors.Newf(errors.ErrUnitInvalid,
			"unknown unit %q (expected btc, bit or satoshi)", s)
	}
}

// String returns the flag spelling of the unit.
func (u Unit) String() string {
	switch u {
	case UnitBit:
		return "bit"
	case UnitSatoshi:
		return "satoshi"
	default:
		return "btc"
	}
}

// Word returns the unit word shown next to amounts, which for the whole-coin
// unit depends on the chain.
func (u Unit) Word(n Network) string {
	switch u {
	case UnitBit:
		return "bits"
	case UnitSatoshi:
		return "satoshi"
	default:
		if n.Cash() {
			return "bitcoin-cash"
		}
		return "bitcoin"
	}
}

// FormatAmount renders a satoshi value in the unit: eight decimal places for
// whole coins, two for bits, grouped digits for satoshi.
func FormatAmount(u Unit, sats uint64) string {
	switch u {
	case UnitBit:
		return fixedPoint(sats, 2)
	case UnitSatoshi:
		return group(fmt.Sprintf("%d", sats))
	default:
		return fixedPoint(sats, 8)
	}
}

// FormatSigned renders a signed satoshi value, keeping the sign explicit so
// reports can pick the matching amount tag.
func FormatSigned(u Unit, sats int64) string {
	if sats < 0 {
		return "-" + FormatAmount(u, uint64(-sats))
	}
	return FormatAmount(u, uint64(sats))
}

// fixedPoint renders sats with the decimal point moved left by decimals
// digits, grouping the integer part.
func fixedPoint(sats uint64, decimals int) string {
	div := uint64(1)
	for i := 0; i < decimals; i++ {
		div *= 10
	}
	whole := sats / div
	frac := sats % div
	return fmt.Sprintf("%s.%0*d", group(fmt.Sprintf("%d", whole)), decimals, frac)
}

// group inserts thousands separators into a digit string.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
