package storage

// Storage keys. Each key holds one JSON array.
const (
	KeyProjects   = "telecor_projects"
	KeyStaff      = "telecor_staff"
	KeyCountries  = "telecor_countries"
	KeyAfpOptions = "telecor_afp_options"
)

// AllKeys lists every key managed by the store, in backup order.
var AllKeys = []string{KeyProjects, KeyStaff, KeyCountries, KeyAfpOptions}

// Store is the key-value port the repositories are built on. Read returns
// (nil, nil) when the key is absent. Writes are last-write-wins; there is no
// cross-process transaction around a read-modify-write cycle.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
}
