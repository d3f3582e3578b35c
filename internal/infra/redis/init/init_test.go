package infra_redis_init

import (
	"testing"

	"github.com/ZeNuW/filmorate/internal/config"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type RedisInitUnitSuite struct {
	suite.Suite
}

func (suite *RedisInitUnitSuite) TestOptions(t provider.T) {
	opts := Options(config.RedisCache{Host: "redis", Port: "6380", Password: "secret", DB: 2})

	assert.Equal(t, "redis:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func (suite *RedisInitUnitSuite) TestKey(t provider.T) {
	assert.Equal(t, "filmorate:ids:films", Key(config.RedisCache{KeyPrefix: "filmorate"}, "ids:films"))
	assert.Equal(t, "popular", Key(config.RedisCache{}, "popular"))
}

func TestRedisInitUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(RedisInitUnitSuite))
}
