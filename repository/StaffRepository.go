package repository

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/storage"
	"github.com/gfabrizzio79/Telecor-App/utils"
)

// StaffRepository persists the staff collection as one JSON array under a
// single storage key.
type StaffRepository struct {
	store    storage.Store
	collator *collate.Collator
}

func NewStaffRepository(store storage.Store) *StaffRepository {
	return &StaffRepository{
		store:    store,
		collator: collate.New(language.Spanish, collate.IgnoreCase),
	}
}

// List returns every staff member sorted by last name ascending. An absent
// key is an empty collection; an unparseable one surfaces ErrCorruptData.
func (r *StaffRepository) List() ([]models.Staff, error) {
	data, err := r.store.Read(storage.KeyStaff)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %v", err)
	}
	if data == nil {
		return []models.Staff{}, nil
	}

	var staff []models.Staff
	if err := json.Unmarshal(data, &staff); err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", ErrCorruptData)
	}

	sort.SliceStable(staff, func(i, j int) bool {
		return r.collator.CompareString(staff[i].LastNames, staff[j].LastNames) < 0
	})
	return staff, nil
}

// Get returns the staff member with the given id, or nil when it does not exist.
func (r *StaffRepository) Get(staffID string) (*models.Staff, error) {
	staff, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range staff {
		if staff[i].ID == staffID {
			return &staff[i], nil
		}
	}
	return nil, nil
}

// Save recomputes the derived full name, then replaces the stored record
// whose identity matches or appends with a fresh identity.
func (r *StaffRepository) Save(member models.Staff) (models.Staff, error) {
	staff, err := r.List()
	if err != nil {
		return models.Staff{}, err
	}

	member.FullName = strings.TrimSpace(member.FirstNames + " " + member.LastNames)
	if member.Trainings == nil {
		member.Trainings = []models.Training{}
	}
	if member.Specialties == nil {
		member.Specialties = []string{}
	}

	replaced := false
	if member.ID != "" {
		for i := range staff {
			if staff[i].ID == member.ID {
				staff[i] = member
				replaced = true
				break
			}
		}
	}
	if !replaced {
		if member.ID == "" {
			member.ID = utils.GenerateStaffID()
		}
		staff = append(staff, member)
	}

	if err := r.write(staff); err != nil {
		return models.Staff{}, err
	}
	return member, nil
}

// Delete removes the staff member with the given id. Resources already
// assigned from this member keep their snapshots; there is no cascade.
func (r *StaffRepository) Delete(staffID string) error {
	staff, err := r.List()
	if err != nil {
		return err
	}

	kept := make([]models.Staff, 0, len(staff))
	for _, s := range staff {
		if s.ID != staffID {
			kept = append(kept, s)
		}
	}
	return r.write(kept)
}

func (r *StaffRepository) write(staff []models.Staff) error {
	data, err := json.Marshal(staff)
	if err != nil {
		return fmt.Errorf("failed to serialize staff: %v", err)
	}
	if err := r.store.Write(storage.KeyStaff, data); err != nil {
		return fmt.Errorf("failed to save staff: %v", err)
	}
	return nil
}
