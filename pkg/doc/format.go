package doc

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Tag identifies the semantic role of a text fragment. The tag alone decides
// presentation; the fragment's content is opaque and never re-parsed.
type Tag int

const (
	TagTitle Tag = iota
	TagStatic
	TagAccount
	TagPubKey
	TagFilePath
	TagKey
	TagDeriv
	TagMnemonic
	TagAddress
	TagInternalAddress
	TagTxHash
	TagPositiveAmount
	TagNegativeAmount
	TagFee
	TagBooleanTrue
	TagBooleanFalse
	TagCashUnit
	TagBitcoinUnit
	TagTestnetMarker
	TagError
)

// Tags lists every tag once, in declaration order. Used by the style catalog
// tests to verify totality.
var Tags = []Tag{
	TagTitle, TagStatic, TagAccount, TagPubKey, TagFilePath, TagKey,
	TagDeriv, TagMnemonic, TagAddress, TagInternalAddress, TagTxHash,
	TagPositiveAmount, TagNegativeAmount, TagFee, TagBooleanTrue,
	TagBooleanFalse, TagCashUnit, TagBitcoinUnit, TagTestnetMarker,
	TagError,
}

// String returns the tag name as used in theme files.
func (t Tag) String() string {
	switch t {
	case TagTitle:
		return "Title"
	case TagStatic:
		return "Static"
	case TagAccount:
		return "Account"
	case TagPubKey:
		return "PubKey"
	case TagFilePath:
		return "FilePath"
	case TagKey:
		return "Key"
	case TagDeriv:
		return "Deriv"
	case TagMnemonic:
		return "Mnemonic"
	case TagAddress:
		return "Address"
	case TagInternalAddress:
		return "InternalAddress"
	case TagTxHash:
		return "TxHash"
	case TagPositiveAmount:
		return "PositiveAmount"
	case TagNegativeAmount:
		return "NegativeAmount"
	case TagFee:
		return "Fee"
	case TagBooleanTrue:
		return "BooleanTrue"
	case TagBooleanFalse:
		return "BooleanFalse"
	case TagCashUnit:
		return "CashUnit"
	case TagBitcoinUnit:
		return "BitcoinUnit"
	case TagTestnetMarker:
		return "TestnetMarker"
	case TagError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Format pairs a semantic tag with the literal text to display.
type Format struct {
	Tag  Tag
	Text string
}

// Leaf constructors, one per tag.

func Title(s string) Doc           { return Text{Format{TagTitle, s}} }
func Static(s string) Doc          { return Text{Format{TagStatic, s}} }
func Account(s string) Doc         { return Text{Format{TagAccount, s}} }
func PubKey(s string) Doc          { return Text{Format{TagPubKey, s}} }
func FilePath(s string) Doc        { return Text{Format{TagFilePath, s}} }
func Key(s string) Doc             { return Text{Format{TagKey, s}} }
func Deriv(s string) Doc           { return Text{Format{TagDeriv, s}} }
func Mnemonic(s string) Doc        { return Text{Format{TagMnemonic, s}} }
func Address(s string) Doc         { return Text{Format{TagAddress, s}} }
func InternalAddress(s string) Doc { return Text{Format{TagInternalAddress, s}} }
func TxHash(s string) Doc          { return Text{Format{TagTxHash, s}} }
func PositiveAmount(s string) Doc  { return Text{Format{TagPositiveAmount, s}} }
func NegativeAmount(s string) Doc  { return Text{Format{TagNegativeAmount, s}} }
func Fee(s string) Doc             { return Text{Format{TagFee, s}} }
func CashUnit(s string) Doc        { return Text{Format{TagCashUnit, s}} }
func BitcoinUnit(s string) Doc     { return Text{Format{TagBitcoinUnit, s}} }
func TestnetMarker(s string) Doc   { return Text{Format{TagTestnetMarker, s}} }
func ErrorText(s string) Doc       { return Text{Format{TagError, s}} }

// Boolean renders a yes/no value with the matching boolean tag.
func Boolean(v bool) Doc {
	if v {
		return Text{Format{TagBooleanTrue, "Yes"}}
	}
	return Text{Format{TagBooleanFalse, "No"}}
}

// Pad right-pads s with spaces to width display cells. Strings already at or
// past the width come back unchanged; there is no truncation. Width is
// measured in terminal cells, so wide runes count as two.
func Pad(width int, s string) string {
	if fill := width - runewidth.StringWidth(s); fill > 0 {
		return s + strings.Repeat(" ", fill)
	}
	return s
}
