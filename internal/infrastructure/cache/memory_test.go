package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"profit/internal/infrastructure/cache"
)

func TestMemory(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	c := cache.NewMemory(50 * time.Millisecond)

	_, found, err := c.Get(ctx, "percentage:string")
	rq.NoError(err)
	rq.False(found)

	rq.NoError(c.Save(ctx, "percentage:string", "20"))

	val, found, err := c.Get(ctx, "percentage:string")
	rq.NoError(err)
	rq.True(found)
	rq.Equal("20", val)

	time.Sleep(100 * time.Millisecond)

	_, found, err = c.Get(ctx, "percentage:string")
	rq.NoError(err)
	rq.False(found)
}

func TestMemoryNoExpiration(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	c := cache.NewMemory(0)

	rq.NoError(c.Save(ctx, "k", "v"))

	val, found, err := c.Get(ctx, "k")
	rq.NoError(err)
	rq.True(found)
	rq.Equal("v", val)
}
