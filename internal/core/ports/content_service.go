package ports

import (
	"context"

	"github.com/thejurists/site-api/internal/core/domain"
)

// CreateTrendingTopicInput carries the admin-supplied fields of a new topic.
type CreateTrendingTopicInput struct {
	Title           string
	Keywords        []string
	PopularityScore uint64
	PracticeArea    domain.PracticeArea
	TrendRelevance  domain.TrendRelevance
}

// ContentService serves the public marketing content and its admin-gated
// mutations.
type ContentService interface {
	GetAllBlogArticles(ctx context.Context) ([]domain.BlogArticle, error)
	// GetBlogArticleByID returns nil, nil when the article does not exist.
	GetBlogArticleByID(ctx context.Context, id uint64) (*domain.BlogArticle, error)
	GetBlogArticlesByCategory(ctx context.Context, category domain.PracticeArea) ([]domain.BlogArticle, error)
	AddOrUpdateBlogArticle(ctx context.Context, caller domain.CallerIdentity, article domain.BlogArticle) (uint64, error)

	GetAllServices(ctx context.Context) ([]domain.ServiceDetails, error)
	GetServicesByJurisdiction(ctx context.Context, j domain.Jurisdiction) ([]domain.ServiceDetails, error)
	GetServicesByPracticeArea(ctx context.Context, p domain.PracticeArea) ([]domain.ServiceDetails, error)

	CreateTrendingTopic(ctx context.Context, caller domain.CallerIdentity, input CreateTrendingTopicInput) (uint64, error)
	MarkTrendingTopicAsPosted(ctx context.Context, caller domain.CallerIdentity, id uint64) error
	ListTrendingTopics(ctx context.Context, filter TrendingTopicFilter) ([]domain.TrendingTopic, error)

	AddLegalListing(ctx context.Context, caller domain.CallerIdentity, listing domain.LegalListing) (uint64, error)
	GetLegalDirectory(ctx context.Context, filter LegalListingFilter) ([]domain.LegalListing, error)

	GetSitemapEntries(ctx context.Context) ([]domain.SitemapEntry, error)
}
