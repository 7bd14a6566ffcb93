// Package wallet defines the snapshot data model coinscribe reports on and
// the TOML loader for it. Snapshots are produced elsewhere, by whatever
// tool talks to the actual wallet; coinscribe only reads and formats them.
package wallet

import (
	"github.com/arthur-debert/coinscribe/pkg/errors"
)

// Network identifies the chain a snapshot belongs to. It decides the unit
// tag used in reports and whether the testnet marker is shown.
type Network string

const (
	NetworkBTC     Network = "btc"
	NetworkBTCTest Network = "btc-testnet"
	NetworkBCH     Network = "bch"
	NetworkBCHTest Network = "bch-testnet"
)

// ParseNetwork validates a network name from a snapshot file.
func ParseNetwork(s string) (Network, error) {
	switch Network(s) {
	case NetworkBTC, NetworkBTCTest, NetworkBCH, NetworkBCHTest:
		return Network(s), nil
	default:
		return "", errors.Newf(errors.ErrNetworkInvalid,
			"unknown network %q (expected btc, btc-testnet, bch or bch-testnet)", s)
	}
}

// Testnet reports whether the network is a test chain.
func (n Network) Testnet() bool {
	return n == NetworkBTCTest || n == NetworkBCHTest
}

// Cash reports whether the network is a Bitcoin Cash chain.
func (n Network) Cash() bool {
	return n == NetworkBCH || n == NetworkBCHTest
}

// Snapshot is one account's precomputed wallet state.
type Snapshot struct {
	Account      Account        `toml:"account"`
	Balance      *Balance       `toml:"balance,omitempty"`
	Addresses    []AddressEntry `toml:"addresses,omitempty"`
	Transactions []Tx           `toml:"transactions,omitempty"`
	Mnemonic     string         `toml:"mnemonic,omitempty"`
}

// Account describes the watched account itself.
type Account struct {
	Name       string  `toml:"name"`
	Derivation string  `toml:"derivation"`
	XPub       string  `toml:"xpub"`
	Network    Network `toml:"network"`
}

// Balance is the account's balance in satoshis.
type Balance struct {
	Confirmed   uint64 `toml:"confirmed"`
	Unconfirmed uint64 `toml:"unconfirmed"`
	Coins       int    `toml:"coins"`
}

// AddressEntry is one derived address, external or internal (change).
type AddressEntry struct {
	Address    string `toml:"address"`
	Derivation string `toml:"derivation"`
	Internal   bool   `toml:"internal"`
	Label      string `toml:"label,omitempty"`
}

// Tx is one transaction touching the account. Amount is the signed net
// effect on the account in satoshis.
type Tx struct {
	TxID          string `toml:"txid"`
	Amount        int64  `toml:"amount"`
	Fee           uint64 `toml:"fee"`
	Confirmations int    `toml:"confirmations"`
}

// Validate checks the structural invariants a loaded snapshot must satisfy.
func (s *Snapshot) Validate() error {
	if s.Account.Name == "" {
		return errors.New(errors.ErrSnapshotInvalid, "account name is required")
	}
	if s.Account.XPub == "" {
		return errors.New(errors.ErrSnapshotInvalid, "account xpub is required")
	}
	if _, err := ParseNetwork(string(s.Account.Network)); err != nil {
		return errors.Wrap(err, errors.ErrSnapshotInvalid, "account network")
	}
	for i, a := range s.Addresses {
		if a.Address == "" {
			return errors.Newf(errors.ErrSnapshotInvalid,
				"address entry %d has no address", i)
		}
	}
	for i, tx := range s.Transactions {
		if tx.TxID == "" {
			return errors.Newf(errors.ErrSnapshotInvalid,
				"transaction %d has no txid", i)
		}
		if tx.Confirmations < 0 {
			return errors.Newf(errors.ErrSnapshotInvalid,
				"transaction %s has negative confirmations", tx.TxID)
		}
	}
	return nil
}
