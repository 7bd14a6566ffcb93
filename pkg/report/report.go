// Package report builds the documents behind each coinscribe command. The
// builders are pure: wallet data in, document out. All styling decisions
// live in the semantic tags; all layout decisions live here.
package report

import (
	"fmt"

	"github.com/arthur-debert/coinscribe/pkg/doc"
	"github.com/arthur-debert/coinscribe/pkg/wallet"
)

const labelWidth = 13

// row lays out one "label: value" line with the label column padded so
// values align.
func row(label string, value doc.Doc) doc.Doc {
	return doc.Horizontal(doc.Key(doc.Pad(labelWidth, label+":")), value)
}

// section places a body under a title, indented two columns.
func section(title doc.Doc, body doc.Doc) doc.Doc {
	return doc.Cat(title, doc.Line(doc.Indent(2, body)))
}

// heading builds a report title, with the testnet marker appended on test
// chains.
func heading(text string, n wallet.Network) doc.Doc {
	title := doc.Title(text)
	if n.Testnet() {
		title = doc.Horizontal(title, doc.TestnetMarker("[testnet]"))
	}
	return title
}

// amount renders a satoshi value with its unit word, tagged by sign.
func amount(u wallet.Unit, n wallet.Network, sats int64) doc.Doc {
	text := wallet.FormatSigned(u, sats)
	var value doc.Doc
	if sats < 0 {
		value = doc.NegativeAmount(text)
	} else {
		value = doc.PositiveAmount(text)
	}
	return doc.Horizontal(value, unit(u, n))
}

func unit(u wallet.Unit, n wallet.Network) doc.Doc {
	if n.Cash() {
		return doc.CashUnit(u.Word(n))
	}
	return doc.BitcoinUnit(u.Word(n))
}

// Account builds the account summary report.
func Account(s *wallet.Snapshot) doc.Doc {
	a := s.Account
	var derivRow doc.Doc = doc.Empty{}
	if a.Derivation != "" {
		derivRow = row("derivation", doc.Deriv(a.Derivation))
	}
	return section(heading("Account", a.Network), doc.Vertical(
		row("name", doc.Account(a.Name)),
		row("network", doc.Static(string(a.Network))),
		derivRow,
		row("xpub", doc.PubKey(a.XPub)),
	))
}

// Balance builds the balance report. A snapshot without balance data yields
// an empty document.
func Balance(s *wallet.Snapshot, u wallet.Unit) doc.Doc {
	b := s.Balance
	if b == nil {
		return doc.Empty{}
	}
	n := s.Account.Network
	return section(heading("Balance", n), doc.Vertical(
		row("account", doc.Account(s.Account.Name)),
		row("confirmed", amount(u, n, int64(b.Confirmed))),
		row("unconfirmed", amount(u, n, int64(b.Unconfirmed))),
		row("coins", doc.Static(fmt.Sprintf("%d", b.Coins))),
	))
}

// Addresses builds the address listing. Internal (change) addresses are
// tagged differently so they read as muted.
func Addresses(s *wallet.Snapshot) doc.Doc {
	if len(s.Addresses) == 0 {
		return doc.Empty{}
	}

	width := 0
	for _, a := range s.Addresses {
		if len(a.Address) > width {
			width = len(a.Address)
		}
	}

	lines := make([]doc.Doc, 0, len(s.Addresses))
	for _, a := range s.Addresses {
		text := doc.Pad(width, a.Address)
		var addr doc.Doc
		if a.Internal {
			addr = doc.InternalAddress(text)
		} else {
			addr = doc.Address(text)
		}
		line := doc.Horizontal(addr, doc.Deriv(a.Derivation))
		if a.Label != "" {
			line = doc.Horizontal(line, doc.Static(a.Label))
		}
		lines = append(lines, line)
	}

	return section(heading("Addresses", s.Account.Network), doc.Vertical(lines...))
}

// Transactions builds the transaction history report.
func Transactions(s *wallet.Snapshot, u wallet.Unit) doc.Doc {
	if len(s.Transactions) == 0 {
		return doc.Empty{}
	}
	n := s.Account.Network

	width := 0
	for _, tx := range s.Transactions {
		if w := len(wallet.FormatSigned(u, tx.Amount)); w > width {
			width = w
		}
	}

	lines := make([]doc.Doc, 0, len(s.Transactions))
	for _, tx := range s.Transactions {
		lines = append(lines, doc.Cat(doc.TxHash(tx.TxID), doc.Line(doc.Indent(2, doc.Vertical(
			row("amount", amountCell(u, n, tx.Amount, width)),
			row("fee", doc.Fee(wallet.FormatAmount(wallet.UnitSatoshi, tx.Fee))),
			row("confirmed", doc.Boolean(tx.Confirmations > 0)),
			row("confirmations", doc.Static(fmt.Sprintf("%d", tx.Confirmations))),
		)))))
	}

	return section(heading("Transactions", n), doc.Vertical(lines...))
}

// amountCell is amount with the numeric part padded for column alignment.
func amountCell(u wallet.Unit, n wallet.Network, sats int64, width int) doc.Doc {
	text := doc.Pad(width, wallet.FormatSigned(u, sats))
	var value doc.Doc
	if sats < 0 {
		value = doc.NegativeAmount(text)
	} else {
		value = doc.PositiveAmount(text)
	}
	return doc.Horizontal(value, unit(u, n))
}

// wordsPerRow controls the mnemonic sheet layout.
const wordsPerRow = 4

// Backup builds the mnemonic backup sheet. The caller must check that the
// snapshot carries a mnemonic.
func Backup(s *wallet.Snapshot, words []string) doc.Doc {
	cellWidth := 0
	for _, w := range words {
		if len(w) > cellWidth {
			cellWidth = len(w)
		}
	}

	var lines []doc.Doc
	for start := 0; start < len(words); start += wordsPerRow {
		end := start + wordsPerRow
		if end > len(words) {
			end = len(words)
		}
		var line doc.Doc = doc.Empty{}
		for i := start; i < end; i++ {
			cell := doc.Cat(
				doc.Key(fmt.Sprintf("%2d. ", i+1)),
				doc.Mnemonic(doc.Pad(cellWidth+2, words[i])),
			)
			line = doc.Cat(line, cell)
		}
		lines = append(lines, line)
	}

	return section(heading("Mnemonic backup", s.Account.Network), doc.Vertical(
		doc.ErrorText("Write these words down and keep the sheet offline."),
		doc.Static(""),
		doc.Vertical(lines...),
	))
}

// LoadFailure builds the fatal report for an unreadable snapshot file.
func LoadFailure(path string, err error) doc.Doc {
	return doc.Cat(
		doc.Horizontal(doc.ErrorText("Could not load snapshot"), doc.FilePath(path)),
		doc.Line(doc.Indent(2, doc.Static(err.Error()))),
	)
}
