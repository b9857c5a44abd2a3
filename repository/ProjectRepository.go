package repository

import (
	"encoding/json"
	"fmt"

	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/storage"
	"github.com/gfabrizzio79/Telecor-App/utils"
)

// ProjectRepository persists the project collection as one JSON array under
// a single storage key. Saves are whole-record replacements.
type ProjectRepository struct {
	store storage.Store
}

func NewProjectRepository(store storage.Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// List returns every stored project. An absent key is an empty collection;
// a present but unparseable value surfaces ErrCorruptData.
func (r *ProjectRepository) List() ([]models.Project, error) {
	data, err := r.store.Read(storage.KeyProjects)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %v", err)
	}
	if data == nil {
		return []models.Project{}, nil
	}

	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", ErrCorruptData)
	}
	return projects, nil
}

// Get returns the project with the given id, or nil when it does not exist.
func (r *ProjectRepository) Get(projectID string) (*models.Project, error) {
	projects, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ProjectID == projectID {
			return &projects[i], nil
		}
	}
	return nil, nil
}

// Save replaces the stored record whose identity matches, or appends the
// project with freshly assigned identities when it carries none. The client
// id is generated once at creation and never changes afterwards.
func (r *ProjectRepository) Save(project models.Project) (models.Project, error) {
	projects, err := r.List()
	if err != nil {
		return models.Project{}, err
	}

	if project.Resources == nil {
		project.Resources = []models.Resource{}
	}

	replaced := false
	if project.ProjectID != "" {
		for i := range projects {
			if projects[i].ProjectID == project.ProjectID {
				projects[i] = project
				replaced = true
				break
			}
		}
	}
	if !replaced {
		if project.ProjectID == "" {
			project.ProjectID = utils.GenerateProjectID()
		}
		if project.ClientID == "" {
			project.ClientID = utils.GenerateClientID()
		}
		projects = append(projects, project)
	}

	if err := r.write(projects); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Delete removes the project with the given id and rewrites the collection.
// Deleting an unknown id is a no-op.
func (r *ProjectRepository) Delete(projectID string) error {
	projects, err := r.List()
	if err != nil {
		return err
	}

	kept := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.ProjectID != projectID {
			kept = append(kept, p)
		}
	}
	return r.write(kept)
}

func (r *ProjectRepository) write(projects []models.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to serialize projects: %v", err)
	}
	if err := r.store.Write(storage.KeyProjects, data); err != nil {
		return fmt.Errorf("failed to save projects: %v", err)
	}
	return nil
}
