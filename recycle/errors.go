package recycle

import "errors"

var (
	// ErrInvalidGeometry is returned when the prototype or the container
	// measurements cannot produce a cell with a positive size.
	ErrInvalidGeometry = errors.New("recycle: invalid cell geometry")
	// ErrNegativeItemCount is returned when the data source reports fewer than
	// zero items.
	ErrNegativeItemCount = errors.New("recycle: negative item count")
	// ErrInvalidConfig is returned for configuration values that cannot be
	// clamped into a usable range.
	ErrInvalidConfig = errors.New("recycle: invalid configuration")
	// ErrNotBuilt is returned by operations that need a pool before Init ran.
	ErrNotBuilt = errors.New("recycle: pool not built")
)
