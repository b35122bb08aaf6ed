package model

import (
	"time"

	"github.com/google/uuid"
)

// JobTemplate represents a reusable job configuration that captures reels
// and cuts but not allocation results.
type JobTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Reels       []Reel       `json:"reels"`
	Cuts        []CutRequest `json:"cuts"`
}

// NewJobTemplate creates a new template from the given job data.
// It copies reels and cuts but intentionally excludes results.
func NewJobTemplate(name, description string, reels []Reel, cuts []CutRequest) JobTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return JobTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Reels:       copyReels(reels),
		Cuts:        copyCuts(cuts),
	}
}

// ToJob creates a new Job from this template. Cuts get fresh IDs so the
// instantiated job is independent of the template.
func (t JobTemplate) ToJob(jobName string) Job {
	cuts := make([]CutRequest, len(t.Cuts))
	for i, c := range t.Cuts {
		cuts[i] = NewCutRequest(c.Category, c.Length)
	}
	return Job{
		Name:  jobName,
		Reels: copyReels(t.Reels),
		Cuts:  cuts,
	}
}

// TemplateStore holds a collection of job templates.
type TemplateStore struct {
	Templates []JobTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []JobTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t JobTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyReels(reels []Reel) []Reel {
	out := make([]Reel, len(reels))
	copy(out, reels)
	return out
}

func copyCuts(cuts []CutRequest) []CutRequest {
	out := make([]CutRequest, len(cuts))
	copy(out, cuts)
	return out
}
