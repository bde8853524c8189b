package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

// ContentRepositories groups the record stores behind the public site content.
type ContentRepositories struct {
	Blog     ports.BlogRepository
	Services ports.ServiceRepository
	Topics   ports.TrendingTopicRepository
	Listings ports.LegalListingRepository
}

// ContentService serves blog articles, service listings, trending topics and
// the legal directory. Reads are public; writes require content:write.
type ContentService struct {
	repos   ContentRepositories
	gate    ports.Gate
	siteURL string
	now     func() time.Time
	log     zerolog.Logger
}

func NewContentService(repos ContentRepositories, gate ports.Gate, siteURL string, log zerolog.Logger) *ContentService {
	return &ContentService{
		repos:   repos,
		gate:    gate,
		siteURL: strings.TrimRight(siteURL, "/"),
		now:     func() time.Time { return time.Now().UTC() },
		log:     log,
	}
}

// --- Blog ---

func (s *ContentService) GetAllBlogArticles(ctx context.Context) ([]domain.BlogArticle, error) {
	return s.repos.Blog.List(ctx, "")
}

// GetBlogArticleByID returns nil, nil for unknown ids.
func (s *ContentService) GetBlogArticleByID(ctx context.Context, id uint64) (*domain.BlogArticle, error) {
	a, err := s.repos.Blog.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blog article %d: %w", id, err)
	}
	return a, nil
}

func (s *ContentService) GetBlogArticlesByCategory(ctx context.Context, category domain.PracticeArea) ([]domain.BlogArticle, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("list blog articles: %w: unknown category %q", domain.ErrInvalidInput, category)
	}
	return s.repos.Blog.List(ctx, category)
}

// AddOrUpdateBlogArticle replaces the article with the same id or inserts it.
// A zero id inserts the article under the next free id.
func (s *ContentService) AddOrUpdateBlogArticle(ctx context.Context, caller domain.CallerIdentity, a domain.BlogArticle) (uint64, error) {
	if err := s.gate.Authorize(ctx, caller, domain.ActionWriteContent); err != nil {
		return 0, err
	}
	if a.ID > math.MaxInt64 {
		return 0, fmt.Errorf("upsert blog article: %w: id %d out of range", domain.ErrInvalidInput, a.ID)
	}
	if strings.TrimSpace(a.Title) == "" {
		return 0, fmt.Errorf("upsert blog article: %w: title is required", domain.ErrInvalidInput)
	}
	if !a.Category.Valid() {
		return 0, fmt.Errorf("upsert blog article: %w: unknown category %q", domain.ErrInvalidInput, a.Category)
	}
	if a.PublishedDate.IsZero() {
		a.PublishedDate = s.now()
	}

	created, err := s.repos.Blog.Upsert(ctx, &a)
	if err != nil {
		return 0, fmt.Errorf("upsert blog article: %w", err)
	}

	s.log.Info().Uint64("id", a.ID).Bool("created", created).Str("caller", caller.String()).Msg("blog article saved")
	return a.ID, nil
}

// --- Services ---

func (s *ContentService) GetAllServices(ctx context.Context) ([]domain.ServiceDetails, error) {
	return s.repos.Services.List(ctx, ports.ServiceFilter{})
}

func (s *ContentService) GetServicesByJurisdiction(ctx context.Context, j domain.Jurisdiction) ([]domain.ServiceDetails, error) {
	if !j.Valid() {
		return nil, fmt.Errorf("list services: %w: unknown jurisdiction %q", domain.ErrInvalidInput, j)
	}
	return s.repos.Services.List(ctx, ports.ServiceFilter{Jurisdiction: j})
}

func (s *ContentService) GetServicesByPracticeArea(ctx context.Context, p domain.PracticeArea) ([]domain.ServiceDetails, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("list services: %w: unknown practice area %q", domain.ErrInvalidInput, p)
	}
	return s.repos.Services.List(ctx, ports.ServiceFilter{PracticeArea: p})
}

// --- Trending topics ---

func (s *ContentService) CreateTrendingTopic(ctx context.Context, caller domain.CallerIdentity, in ports.CreateTrendingTopicInput) (uint64, error) {
	if err := s.gate.Authorize(ctx, caller, domain.ActionWriteContent); err != nil {
		return 0, err
	}
	switch {
	case strings.TrimSpace(in.Title) == "":
		return 0, fmt.Errorf("create trending topic: %w: title is required", domain.ErrInvalidInput)
	case !in.PracticeArea.Valid():
		return 0, fmt.Errorf("create trending topic: %w: unknown practice area %q", domain.ErrInvalidInput, in.PracticeArea)
	case !in.TrendRelevance.Valid():
		return 0, fmt.Errorf("create trending topic: %w: unknown trend relevance %q", domain.ErrInvalidInput, in.TrendRelevance)
	}

	topic := &domain.TrendingTopic{
		Title:           strings.TrimSpace(in.Title),
		Keywords:        append([]string(nil), in.Keywords...),
		PopularityScore: in.PopularityScore,
		PracticeArea:    in.PracticeArea,
		TrendRelevance:  in.TrendRelevance,
		IsPosted:        false,
		Timestamp:       s.now(),
	}
	id, err := s.repos.Topics.Create(ctx, topic)
	if err != nil {
		return 0, fmt.Errorf("create trending topic: %w", err)
	}

	s.log.Info().Uint64("id", id).Str("caller", caller.String()).Msg("trending topic created")
	return id, nil
}

// MarkTrendingTopicAsPosted is idempotent for topics that are already posted.
func (s *ContentService) MarkTrendingTopicAsPosted(ctx context.Context, caller domain.CallerIdentity, id uint64) error {
	if err := s.gate.Authorize(ctx, caller, domain.ActionWriteContent); err != nil {
		return err
	}
	if err := s.repos.Topics.MarkPosted(ctx, id); err != nil {
		return fmt.Errorf("mark trending topic %d posted: %w", id, err)
	}
	return nil
}

// ListTrendingTopics serves getAll, by practice area, by relevance, posted and
// unposted through one filter.
func (s *ContentService) ListTrendingTopics(ctx context.Context, f ports.TrendingTopicFilter) ([]domain.TrendingTopic, error) {
	if f.PracticeArea != "" && !f.PracticeArea.Valid() {
		return nil, fmt.Errorf("list trending topics: %w: unknown practice area %q", domain.ErrInvalidInput, f.PracticeArea)
	}
	if f.TrendRelevance != "" && !f.TrendRelevance.Valid() {
		return nil, fmt.Errorf("list trending topics: %w: unknown trend relevance %q", domain.ErrInvalidInput, f.TrendRelevance)
	}
	return s.repos.Topics.List(ctx, f)
}

// --- Legal directory ---

func (s *ContentService) AddLegalListing(ctx context.Context, caller domain.CallerIdentity, l domain.LegalListing) (uint64, error) {
	if err := s.gate.Authorize(ctx, caller, domain.ActionWriteContent); err != nil {
		return 0, err
	}
	switch {
	case strings.TrimSpace(l.Name) == "":
		return 0, fmt.Errorf("add legal listing: %w: name is required", domain.ErrInvalidInput)
	case !l.Jurisdiction.Valid():
		return 0, fmt.Errorf("add legal listing: %w: unknown jurisdiction %q", domain.ErrInvalidInput, l.Jurisdiction)
	case !l.Specialization.Valid():
		return 0, fmt.Errorf("add legal listing: %w: unknown specialization %q", domain.ErrInvalidInput, l.Specialization)
	}

	l.ID = 0
	id, err := s.repos.Listings.Create(ctx, &l)
	if err != nil {
		return 0, fmt.Errorf("add legal listing: %w", err)
	}

	s.log.Info().Uint64("id", id).Str("caller", caller.String()).Msg("legal listing added")
	return id, nil
}

// GetLegalDirectory serves the by-jurisdiction, by-practice-area and combined
// directory lookups.
func (s *ContentService) GetLegalDirectory(ctx context.Context, f ports.LegalListingFilter) ([]domain.LegalListing, error) {
	if f.Jurisdiction != "" && !f.Jurisdiction.Valid() {
		return nil, fmt.Errorf("list legal directory: %w: unknown jurisdiction %q", domain.ErrInvalidInput, f.Jurisdiction)
	}
	if f.Specialization != "" && !f.Specialization.Valid() {
		return nil, fmt.Errorf("list legal directory: %w: unknown practice area %q", domain.ErrInvalidInput, f.Specialization)
	}
	return s.repos.Listings.List(ctx, f)
}
