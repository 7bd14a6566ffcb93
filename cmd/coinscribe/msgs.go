package coinscribe

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "A styled console formatter for wallet snapshots"
	MsgAccountShort   = "Show the account summary"
	MsgBalanceShort   = "Show the account balance"
	MsgAddressesShort = "List derived addresses"
	MsgTxsShort       = "Show the transaction history"
	MsgBackupShort    = "Print the mnemonic backup sheet"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgNoBalance   = "Snapshot carries no balance data."
	MsgNoAddresses = "Snapshot carries no addresses."
	MsgNoTxs       = "Snapshot carries no transactions."
	MsgNoMnemonic  = "Snapshot carries no mnemonic; nothing to back up."

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput  = "Output format: auto, term or text"
	MsgFlagUnit    = "Display unit: btc, bit or satoshi"
	MsgFlagTheme   = "Path to a YAML theme file overriding the built-in styles"
)

// Long messages
const (
	MsgRootLong = `coinscribe renders wallet snapshot files as styled terminal reports.

Snapshots are TOML files produced by your wallet tooling; coinscribe never
touches keys or the network. It only formats what the snapshot says: account
details, balances, addresses, transactions and mnemonic backup sheets.`

	MsgBackupLong = `Print the snapshot's mnemonic as a numbered backup sheet.

The sheet is meant to be copied by hand. Do not store it on the machine the
wallet runs on.`

	MsgAccountExample = `  coinscribe account personal.toml
  coinscribe account --output text personal.toml`

	MsgBalanceExample = `  coinscribe balance personal.toml
  coinscribe balance --unit satoshi personal.toml`

	MsgTxsExample = `  coinscribe txs personal.toml
  coinscribe txs --unit bit personal.toml`
)
