package catalog

import (
	"testing"

	"webnest/models"
)

func TestStaticRepoValidates(t *testing.T) {
	repo, err := NewStaticRepo()
	if err != nil {
		t.Fatalf("NewStaticRepo() failed: %v", err)
	}
	if len(repo.ListServices()) == 0 {
		t.Fatal("catalog has no services")
	}
}

func TestCatalogInvariants(t *testing.T) {
	repo, err := NewStaticRepo()
	if err != nil {
		t.Fatalf("NewStaticRepo() failed: %v", err)
	}
	for _, svc := range repo.ListServices() {
		if svc.BasePrice <= 0 {
			t.Errorf("service %q has non-positive base price", svc.ID)
		}
		for _, f := range svc.Features {
			if f.Category == models.FeatureCore && f.Price != 0 {
				t.Errorf("core feature %q of %q has non-zero price", f.ID, svc.ID)
			}
			if f.Category == models.FeatureAddon && f.Price < 0 {
				t.Errorf("addon feature %q of %q has negative price", f.ID, svc.ID)
			}
		}
	}
}

func TestGetService(t *testing.T) {
	repo, err := NewStaticRepo()
	if err != nil {
		t.Fatalf("NewStaticRepo() failed: %v", err)
	}

	svc, err := repo.GetService("ecommerce-store")
	if err != nil {
		t.Fatalf("GetService() failed: %v", err)
	}
	if svc.Title != "E-commerce Store" {
		t.Errorf("unexpected title %q", svc.Title)
	}
	if svc.FindFeature("shipping") == nil {
		t.Error("expected shipping feature")
	}
	if svc.FindFeature("jetpack") != nil {
		t.Error("unexpected feature")
	}

	if _, err := repo.GetService("nope"); err == nil {
		t.Error("expected error for unknown service")
	}
}

func TestContentCatalogs(t *testing.T) {
	repo, err := NewStaticRepo()
	if err != nil {
		t.Fatalf("NewStaticRepo() failed: %v", err)
	}
	if len(repo.ListProjects()) == 0 {
		t.Error("no projects")
	}
	if len(repo.ListCourses()) == 0 {
		t.Error("no courses")
	}
	if len(repo.ListTestimonials()) == 0 {
		t.Error("no testimonials")
	}
}
