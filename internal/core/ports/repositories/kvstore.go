package repositories

import "context"

// Collection keys in the key-value store.
const (
	KeyInvoices     = "dataPenjualan"
	KeyJournal      = "dataJurnal"
	KeyReport       = "laporanKeuangan"
	KeyCustomers    = "dataPelanggan"
	KeyActivityLogs = "activityLogs"
	KeyCurrentUser  = "currentUser"
	KeyUsers        = "dataUsers"
)

// KeyValueStore is the persistent string-keyed store every collection lives in.
type KeyValueStore interface {
	// GetItem returns the raw value for key and whether it was present.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem overwrites the value for key.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// BatchStore is a KeyValueStore able to apply several writes atomically.
type BatchStore interface {
	KeyValueStore

	// SetItems writes every pair in one unit; either all land or none do.
	// A nil value removes the key.
	SetItems(ctx context.Context, items map[string]*string) error
}

// BatchRunner groups repository writes so they reach the store together.
type BatchRunner interface {
	// RunInBatch runs fn with a context whose repository writes are buffered
	// and flushed only when fn returns nil. Nested calls join the outer batch.
	// Outer batches on the same store are serialized.
	RunInBatch(ctx context.Context, fn func(ctx context.Context) error) error
}
