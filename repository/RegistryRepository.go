package repository

import (
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gfabrizzio79/Telecor-App/storage"
)

// DefaultCountries seeds the country registry on first run or when the
// stored value is unreadable.
var DefaultCountries = []string{
	"El Salvador",
	"Bahamas",
	"Dominica",
	"St. Maarten",
	"Curacao",
	"Surinam",
	"Bonaire",
	"Barbados",
	"British Virgin Islands",
	"Islas Caimán",
	"México",
	"Nicaragua",
	"Belize",
	"República Dominicana",
}

// DefaultAfpOptions seeds the AFP plan registry.
var DefaultAfpOptions = []string{"Confia", "Crecer"}

// RegistryRepository manages the two append-only option lists. Unlike the
// entity repositories, an unreadable value degrades to the seed set instead
// of failing: the registries always have something to offer a form.
type RegistryRepository struct {
	store    storage.Store
	collator *collate.Collator
}

func NewRegistryRepository(store storage.Store) *RegistryRepository {
	return &RegistryRepository{
		store:    store,
		collator: collate.New(language.Spanish, collate.IgnoreCase),
	}
}

// Countries returns the country registry, seeding storage when it is empty
// or unreadable.
func (r *RegistryRepository) Countries() ([]string, error) {
	return r.options(storage.KeyCountries, DefaultCountries)
}

// AddCountry appends a country if it is not already present and re-sorts the
// registry. Returns the resulting list.
func (r *RegistryRepository) AddCountry(country string) ([]string, error) {
	countries, err := r.Countries()
	if err != nil {
		return nil, err
	}
	if country == "" || contains(countries, country) {
		return countries, nil
	}

	countries = append(countries, country)
	sort.SliceStable(countries, func(i, j int) bool {
		return r.collator.CompareString(countries[i], countries[j]) < 0
	})
	if err := r.write(storage.KeyCountries, countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// AfpOptions returns the AFP plan registry, seeding storage when it is empty
// or unreadable.
func (r *RegistryRepository) AfpOptions() ([]string, error) {
	return r.options(storage.KeyAfpOptions, DefaultAfpOptions)
}

// AddAfpOption appends an AFP plan name if it is not already present. The
// AFP registry keeps insertion order; only countries are sorted.
func (r *RegistryRepository) AddAfpOption(option string) ([]string, error) {
	options, err := r.AfpOptions()
	if err != nil {
		return nil, err
	}
	if option == "" || contains(options, option) {
		return options, nil
	}

	options = append(options, option)
	if err := r.write(storage.KeyAfpOptions, options); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *RegistryRepository) options(key string, seed []string) ([]string, error) {
	data, err := r.store.Read(key)
	if err == nil && data != nil {
		var options []string
		if json.Unmarshal(data, &options) == nil {
			return options, nil
		}
	}

	// First run or unreadable value: seed storage. A failed seed write is
	// not fatal, the caller still gets the defaults.
	seeded := make([]string, len(seed))
	copy(seeded, seed)
	_ = r.write(key, seeded)
	return seeded, nil
}

func (r *RegistryRepository) write(key string, options []string) error {
	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to serialize registry %s: %v", key, err)
	}
	if err := r.store.Write(key, data); err != nil {
		return fmt.Errorf("failed to save registry %s: %v", key, err)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
