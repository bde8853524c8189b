package mongo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

// --- Contact submissions ---

type ContactSubmissionRepository struct {
	col *mongo.Collection
	seq sequences
}

func NewContactSubmissionRepository(db *mongo.Database) *ContactSubmissionRepository {
	return &ContactSubmissionRepository{col: db.Collection(collectionSubmissions), seq: newSequences(db)}
}

func (r *ContactSubmissionRepository) Create(ctx context.Context, s *domain.ContactFormSubmission) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.insertWithID(ctx, r.col, collectionSubmissions, func(id uint64) any {
		row := *s
		row.ID = id
		return row
	})
	if err != nil {
		return 0, err
	}
	s.ID = id
	return id, nil
}

func (r *ContactSubmissionRepository) List(ctx context.Context, f ports.ContactSubmissionFilter) ([]domain.ContactFormSubmission, error) {
	out, err := findAll[domain.ContactFormSubmission](ctx, r.col, submissionFilter(f))
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	return out, nil
}

func (r *ContactSubmissionRepository) UpdateStatus(ctx context.Context, id uint64, status domain.SubmissionStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update contact submission: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Blog ---

type BlogRepository struct {
	col *mongo.Collection
	seq sequences
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection(collectionBlog), seq: newSequences(db)}
}

func (r *BlogRepository) Upsert(ctx context.Context, a *domain.BlogArticle) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if a.ID == 0 {
		id, err := r.seq.insertWithID(ctx, r.col, collectionBlog, func(id uint64) any {
			row := *a
			row.ID = id
			return row
		})
		if err != nil {
			return false, err
		}
		a.ID = id
		return true, nil
	}

	if a.ID > math.MaxInt64 {
		return false, fmt.Errorf("replace blog article: %w: id %d out of range", domain.ErrInvalidInput, a.ID)
	}
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a, options.Replace().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("replace blog article: %w", err)
	}
	if err := r.seq.atLeast(ctx, collectionBlog, a.ID); err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id uint64) (*domain.BlogArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.BlogArticle
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find blog article: %w", err)
	}
	return &a, nil
}

func (r *BlogRepository) List(ctx context.Context, category domain.PracticeArea) ([]domain.BlogArticle, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	out, err := findAll[domain.BlogArticle](ctx, r.col, filter)
	if err != nil {
		return nil, fmt.Errorf("list blog articles: %w", err)
	}
	return out, nil
}

// --- Services ---

type ServiceRepository struct {
	col *mongo.Collection
	seq sequences
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{col: db.Collection(collectionServices), seq: newSequences(db)}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.ServiceDetails) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.insertWithID(ctx, r.col, collectionServices, func(id uint64) any {
		row := *s
		row.ID = id
		return row
	})
	if err != nil {
		return 0, err
	}
	s.ID = id
	return id, nil
}

func (r *ServiceRepository) List(ctx context.Context, f ports.ServiceFilter) ([]domain.ServiceDetails, error) {
	out, err := findAll[domain.ServiceDetails](ctx, r.col, serviceFilter(f))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out, nil
}

// --- Trending topics ---

type TrendingTopicRepository struct {
	col *mongo.Collection
	seq sequences
}

func NewTrendingTopicRepository(db *mongo.Database) *TrendingTopicRepository {
	return &TrendingTopicRepository{col: db.Collection(collectionTopics), seq: newSequences(db)}
}

func (r *TrendingTopicRepository) Create(ctx context.Context, t *domain.TrendingTopic) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.insertWithID(ctx, r.col, collectionTopics, func(id uint64) any {
		row := *t
		row.ID = id
		return row
	})
	if err != nil {
		return 0, err
	}
	t.ID = id
	return id, nil
}

func (r *TrendingTopicRepository) MarkPosted(ctx context.Context, id uint64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_posted": true}})
	if err != nil {
		return fmt.Errorf("mark trending topic posted: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TrendingTopicRepository) List(ctx context.Context, f ports.TrendingTopicFilter) ([]domain.TrendingTopic, error) {
	out, err := findAll[domain.TrendingTopic](ctx, r.col, topicFilter(f))
	if err != nil {
		return nil, fmt.Errorf("list trending topics: %w", err)
	}
	return out, nil
}

// --- Legal directory ---

type LegalListingRepository struct {
	col *mongo.Collection
	seq sequences
}

func NewLegalListingRepository(db *mongo.Database) *LegalListingRepository {
	return &LegalListingRepository{col: db.Collection(collectionListings), seq: newSequences(db)}
}

func (r *LegalListingRepository) Create(ctx context.Context, l *domain.LegalListing) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.insertWithID(ctx, r.col, collectionListings, func(id uint64) any {
		row := *l
		row.ID = id
		return row
	})
	if err != nil {
		return 0, err
	}
	l.ID = id
	return id, nil
}

func (r *LegalListingRepository) List(ctx context.Context, f ports.LegalListingFilter) ([]domain.LegalListing, error) {
	out, err := findAll[domain.LegalListing](ctx, r.col, listingFilter(f))
	if err != nil {
		return nil, fmt.Errorf("list legal listings: %w", err)
	}
	return out, nil
}

// --- Filters ---

func submissionFilter(f ports.ContactSubmissionFilter) bson.M {
	filter := bson.M{}
	if f.Jurisdiction != "" {
		filter["jurisdiction"] = f.Jurisdiction
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func serviceFilter(f ports.ServiceFilter) bson.M {
	filter := bson.M{}
	if f.Jurisdiction != "" {
		filter["jurisdiction"] = f.Jurisdiction
	}
	if f.PracticeArea != "" {
		filter["practice_area"] = f.PracticeArea
	}
	return filter
}

func topicFilter(f ports.TrendingTopicFilter) bson.M {
	filter := bson.M{}
	if f.PracticeArea != "" {
		filter["practice_area"] = f.PracticeArea
	}
	if f.TrendRelevance != "" {
		filter["trend_relevance"] = f.TrendRelevance
	}
	if f.Posted != nil {
		filter["is_posted"] = *f.Posted
	}
	return filter
}

func listingFilter(f ports.LegalListingFilter) bson.M {
	filter := bson.M{}
	if f.Jurisdiction != "" {
		filter["jurisdiction"] = f.Jurisdiction
	}
	if f.Specialization != "" {
		filter["specialization"] = f.Specialization
	}
	return filter
}
