package mongo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/core/ports"
)

func TestFilters(t *testing.T) {
	posted := false

	assert.Equal(t, bson.M{}, submissionFilter(ports.ContactSubmissionFilter{}))
	assert.Equal(t,
		bson.M{"jurisdiction": domain.JurisdictionHyderabad, "status": domain.SubmissionNew},
		submissionFilter(ports.ContactSubmissionFilter{Jurisdiction: domain.JurisdictionHyderabad, Status: domain.SubmissionNew}),
	)
	assert.Equal(t,
		bson.M{"practice_area": domain.PracticeTaxLaw},
		serviceFilter(ports.ServiceFilter{PracticeArea: domain.PracticeTaxLaw}),
	)
	assert.Equal(t,
		bson.M{"is_posted": false, "trend_relevance": domain.TrendLocal},
		topicFilter(ports.TrendingTopicFilter{Posted: &posted, TrendRelevance: domain.TrendLocal}),
	)
	assert.Equal(t,
		bson.M{"specialization": domain.PracticeIPLaw},
		listingFilter(ports.LegalListingFilter{Specialization: domain.PracticeIPLaw}),
	)
}

func TestBlogRepository_UpsertRejectsIDBeyondInt64(t *testing.T) {
	r := &BlogRepository{}
	created, err := r.Upsert(context.Background(), &domain.BlogArticle{ID: math.MaxUint64, Title: "t"})
	assert.False(t, created)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// The remaining tests run against a live server when JURISTS_TEST_MONGO_URI is set.
func testDB(t *testing.T) context.Context {
	t.Helper()
	uri := os.Getenv("JURISTS_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("JURISTS_TEST_MONGO_URI not set")
	}
	return context.Background()
}

func TestAccessControlRepository_InitializeOnce(t *testing.T) {
	ctx := testDB(t)

	client, db, err := Connect(ctx, Config{
		URI:      os.Getenv("JURISTS_TEST_MONGO_URI"),
		Database: fmt.Sprintf("jurists_test_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	repo := NewAccessControlRepository(db)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id domain.CallerIdentity) {
			defer wg.Done()
			err := repo.Initialize(ctx, id)
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
				return
			}
			if !errors.Is(err, domain.ErrAlreadyInitialized) {
				t.Errorf("unexpected error: %v", err)
			}
		}(domain.CallerIdentity(fmt.Sprintf("caller-%d", i)))
	}
	wg.Wait()
	assert.Equal(t, 1, wins)

	_, ok, err := repo.Admin(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBlogRepository_Sequence(t *testing.T) {
	ctx := testDB(t)

	client, db, err := Connect(ctx, Config{
		URI:      os.Getenv("JURISTS_TEST_MONGO_URI"),
		Database: fmt.Sprintf("jurists_test_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	require.NoError(t, EnsureIndexes(ctx, db))

	repo := NewBlogRepository(db)

	created, err := repo.Upsert(ctx, &domain.BlogArticle{ID: 5, Title: "Five", Category: domain.PracticeTaxLaw})
	require.NoError(t, err)
	assert.True(t, created)

	next := &domain.BlogArticle{Title: "Auto", Category: domain.PracticeTaxLaw}
	created, err = repo.Upsert(ctx, next)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint64(6), next.ID)

	created, err = repo.Upsert(ctx, &domain.BlogArticle{ID: 5, Title: "Five again", Category: domain.PracticeTaxLaw})
	require.NoError(t, err)
	assert.False(t, created)

	all, err := repo.List(ctx, domain.PracticeTaxLaw)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Five again", all[0].Title)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
