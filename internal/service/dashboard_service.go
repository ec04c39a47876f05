package service

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/repository"
)

const dashboardCacheKey = "dashboard_stats"

// DashboardStats aggregates counters for the admin overview.
type DashboardStats struct {
	ContactsByStatus     map[domain.ContactStatus]int64     `json:"contacts_by_status"`
	ApplicationsByStatus map[domain.ApplicationStatus]int64 `json:"applications_by_status"`
	PortfolioCount       int64                              `json:"portfolio_count"`
	JobCount             int64                              `json:"job_count"`
	TeamCount            int64                              `json:"team_count"`
	TestimonialCount     int64                              `json:"testimonial_count"`
	ClientCount          int64                              `json:"client_count"`
	RecentContacts       []domain.Contact                   `json:"recent_contacts"`
	RecentApplications   []domain.Application               `json:"recent_applications"`
}

// DashboardDependencies bundles repositories for the dashboard service.
type DashboardDependencies struct {
	ContactRepo     repository.ContactRepository
	ApplicationRepo repository.ApplicationRepository
	PortfolioRepo   repository.PortfolioRepository
	JobRepo         repository.JobRepository
	TeamRepo        repository.TeamRepository
	TestimonialRepo repository.TestimonialRepository
	ClientRepo      repository.ClientRepository
}

// DashboardService assembles aggregate stats, cached briefly since the
// queries fan out across every collection.
type DashboardService struct {
	deps  DashboardDependencies
	cache *gocache.Cache
}

// NewDashboardService constructs the service with a 30s stats cache.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	return &DashboardService{
		deps:  deps,
		cache: gocache.New(30*time.Second, time.Minute),
	}
}

// Stats returns the aggregate view, serving from cache when fresh.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if cached, ok := s.cache.Get(dashboardCacheKey); ok {
		if stats, ok := cached.(*DashboardStats); ok {
			return stats, nil
		}
	}

	contactsByStatus, err := s.deps.ContactRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	applicationsByStatus, err := s.deps.ApplicationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	portfolioCount, err := s.deps.PortfolioRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	jobCount, err := s.deps.JobRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	teamCount, err := s.deps.TeamRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	testimonialCount, err := s.deps.TestimonialRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	clientCount, err := s.deps.ClientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	recentContacts, err := s.deps.ContactRepo.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}
	recentApplications, err := s.deps.ApplicationRepo.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		ContactsByStatus:     contactsByStatus,
		ApplicationsByStatus: applicationsByStatus,
		PortfolioCount:       portfolioCount,
		JobCount:             jobCount,
		TeamCount:            teamCount,
		TestimonialCount:     testimonialCount,
		ClientCount:          clientCount,
		RecentContacts:       recentContacts,
		RecentApplications:   recentApplications,
	}
	s.cache.Set(dashboardCacheKey, stats, gocache.DefaultExpiration)
	return stats, nil
}
