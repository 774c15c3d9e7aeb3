package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketcrown/backend-go/internal/models"
	"marketcrown/backend-go/internal/storage"
)

func newsFixture() *Store {
	s := New()
	s.AddNews(
		models.MarketNews{Region: "India", Date: "2025-01-22", Title: "Indian Markets End Flat"},
		models.MarketNews{Region: "India", Date: "2025-12-24", Title: "Sensex Celebrates Record Closes"},
		models.MarketNews{Region: "USA", Date: "2025-01-22", Title: "US Market Rally Led by Tech"},
	)
	return s
}

func TestListNews_RegionAndDateExactMatch(t *testing.T) {
	s := newsFixture()
	got, err := s.ListNews(context.Background(), storage.NewsFilter{Region: "India", Date: "2025-01-22"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Indian Markets End Flat", got[0].Title)

	got, err = s.ListNews(context.Background(), storage.NewsFilter{Region: "India"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.ListNews(context.Background(), storage.NewsFilter{Date: "2025-01-22"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.ListNews(context.Background(), storage.NewsFilter{Region: "india", Date: "2025-1-22"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSeed_OnceAndFilterable(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Seed(ctx, "2026-10-19"))
	require.NoError(t, s.Seed(ctx, "2026-10-20"))

	news, err := s.ListNews(ctx, storage.NewsFilter{})
	require.NoError(t, err)
	assert.Len(t, news, 5)
	for _, n := range news {
		assert.Equal(t, "2026-10-19", n.Date)
		assert.NotEmpty(t, n.ID)
	}

	all, err := s.ListIndices(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 6)
	usa, err := s.ListIndices(ctx, "USA")
	require.NoError(t, err)
	assert.Len(t, usa, 3)
	cryptoIdx, err := s.ListIndices(ctx, "Crypto")
	require.NoError(t, err)
	assert.Empty(t, cryptoIdx)

	coins, err := s.ListCrypto(ctx)
	require.NoError(t, err)
	assert.Len(t, coins, 3)
}

func TestGetBlog(t *testing.T) {
	s := New()
	s.AddBlogs(models.Blog{Country: "Japan", Date: "2025-01-22", Title: "Nikkei Slips"})

	b, err := s.GetBlog(context.Background(), "Japan", "2025-01-22")
	require.NoError(t, err)
	assert.Equal(t, "Nikkei Slips", b.Title)

	_, err = s.GetBlog(context.Background(), "Japan", "2025-01-23")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
