package repository

import "errors"

// ErrCorruptData is returned when a stored collection is present but cannot
// be parsed. Both the project and staff repositories surface it; the
// registries fall back to their seed sets instead, since their contract
// defines defaults for unreadable storage.
var ErrCorruptData = errors.New("stored data is corrupt")
