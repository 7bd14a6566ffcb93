package wallet

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/coinscribe/pkg/errors"
	"github.com/arthur-debert/coinscribe/pkg/logging"
)

// Load reads and validates a snapshot file.
func Load(path string) (*Snapshot, error) {
	logger := logging.GetLogger("wallet")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSnapshotRead,
			"failed to read snapshot %s", path)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	// Typos in snapshot files should fail loudly, not silently drop data.
	dec.DisallowUnknownFields()

	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSnapshotParse,
			"failed to parse snapshot %s", path)
	}

	if err := snap.Validate(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSnapshotInvalid,
			"invalid snapshot %s", path)
	}

	logger.Debug().
		Str("path", path).
		Str("account", snap.Account.Name).
		Str("network", string(snap.Account.Network)).
		Int("addresses", len(snap.Addresses)).
		Int("transactions", len(snap.Transactions)).
		Msg("Snapshot loaded")

	return &snap, nil
}
