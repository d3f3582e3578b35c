package infra_local_popular

import (
	"context"
	"testing"
	"time"

	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type LocalPopularUnitSuite struct {
	suite.Suite
}

func (suite *LocalPopularUnitSuite) TestRoundTrip(t provider.T) {
	t.Parallel()
	c := New(time.Minute)
	ctx := context.Background()
	films := []model.Film{{ID: 2, Rate: 2}, {ID: 1, Rate: 1}}

	_, ok, err := c.Get(ctx, 10)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, c.Set(ctx, 10, films))
	films[0].ID = 99

	got, ok, err := c.Get(ctx, 10)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []model.Film{{ID: 2, Rate: 2}, {ID: 1, Rate: 1}}, got)
}

func (suite *LocalPopularUnitSuite) TestInvalidate(t provider.T) {
	t.Parallel()
	c := New(0)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, 1, []model.Film{{ID: 1}}))
	assert.NoError(t, c.Set(ctx, 10, []model.Film{{ID: 1}}))
	assert.NoError(t, c.Invalidate(ctx))

	for _, count := range []int{1, 10} {
		_, ok, err := c.Get(ctx, count)
		assert.NoError(t, err)
		assert.False(t, ok)
	}
}

func (suite *LocalPopularUnitSuite) TestExpiry(t provider.T) {
	t.Parallel()
	c := New(20 * time.Millisecond)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, 10, []model.Film{{ID: 1}}))
	time.Sleep(40 * time.Millisecond)

	_, ok, err := c.Get(ctx, 10)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalPopularUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(LocalPopularUnitSuite))
}
