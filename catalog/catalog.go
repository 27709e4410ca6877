// File: webnest/catalog/catalog.go
package catalog

import (
	"fmt"

	"webnest/models"
)

// Repository exposes read access to the site's static catalogs. The
// catalog is literal data validated once at startup; there is no
// persisted state behind it.
type Repository interface {
	ListServices() []models.Service
	GetService(id string) (*models.Service, error)
	ListProjects() []models.Project
	ListCourses() []models.Course
	ListTestimonials() []models.Testimonial
}

// StaticRepo is the in-memory implementation backed by the literal
// catalogs in data.go.
type StaticRepo struct {
	services     []models.Service
	projects     []models.Project
	courses      []models.Course
	testimonials []models.Testimonial
	byID         map[string]*models.Service
}

// NewStaticRepo builds the repository from the literal catalog and
// validates its invariants. It returns an error rather than panicking
// so main can fail fast with a logged reason.
func NewStaticRepo() (*StaticRepo, error) {
	r := &StaticRepo{
		services:     services,
		projects:     projects,
		courses:      courses,
		testimonials: testimonials,
		byID:         make(map[string]*models.Service, len(services)),
	}
	for i := range r.services {
		svc := &r.services[i]
		if svc.ID == "" {
			return nil, fmt.Errorf("catalog: service at index %d has empty id", i)
		}
		if _, dup := r.byID[svc.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate service id %q", svc.ID)
		}
		if svc.BasePrice <= 0 {
			return nil, fmt.Errorf("catalog: service %q has non-positive base price", svc.ID)
		}
		seen := make(map[string]bool, len(svc.Features))
		for _, f := range svc.Features {
			if f.ID == "" || seen[f.ID] {
				return nil, fmt.Errorf("catalog: service %q has empty or duplicate feature id %q", svc.ID, f.ID)
			}
			seen[f.ID] = true
			switch f.Category {
			case models.FeatureCore:
				if f.Price != 0 {
					return nil, fmt.Errorf("catalog: core feature %q of service %q has non-zero price", f.ID, svc.ID)
				}
			case models.FeatureAddon:
				if f.Price < 0 {
					return nil, fmt.Errorf("catalog: addon feature %q of service %q has negative price", f.ID, svc.ID)
				}
			default:
				return nil, fmt.Errorf("catalog: feature %q of service %q has unknown category %q", f.ID, svc.ID, f.Category)
			}
		}
		r.byID[svc.ID] = svc
	}
	return r, nil
}

func (r *StaticRepo) ListServices() []models.Service {
	return r.services
}

// GetService returns the service with the given slug.
func (r *StaticRepo) GetService(id string) (*models.Service, error) {
	svc, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("catalog: service %q not found", id)
	}
	return svc, nil
}

func (r *StaticRepo) ListProjects() []models.Project {
	return r.projects
}

func (r *StaticRepo) ListCourses() []models.Course {
	return r.courses
}

func (r *StaticRepo) ListTestimonials() []models.Testimonial {
	return r.testimonials
}
