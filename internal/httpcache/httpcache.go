// Package httpcache is a fiber middleware that caches successful GET
// responses in a size-bounded LRU with a per-entry TTL.
package httpcache

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"quiz-analytics-service/internal/observability"
)

const HeaderCache = "X-Cache"

type entry struct {
	contentType string
	body        []byte
}

type Cache struct {
	lru     *expirable.LRU[string, entry]
	metrics *observability.Metrics
}

// New returns nil when size is not positive; a nil Cache's Handler passes
// every request through.
func New(size int, ttl time.Duration, metrics *observability.Metrics) *Cache {
	if size <= 0 {
		return nil
	}
	return &Cache{
		lru:     expirable.NewLRU[string, entry](size, nil, ttl),
		metrics: metrics,
	}
}

func (c *Cache) Handler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if c == nil || ctx.Method() != fiber.MethodGet {
			return ctx.Next()
		}

		key := ctx.OriginalURL()

		if e, ok := c.lru.Get(key); ok {
			c.metrics.ObserveCache(true)
			ctx.Set(HeaderCache, "HIT")
			ctx.Set(fiber.HeaderContentType, e.contentType)
			return ctx.Status(http.StatusOK).Send(e.body)
		}

		c.metrics.ObserveCache(false)

		if err := ctx.Next(); err != nil {
			return err
		}

		ctx.Set(HeaderCache, "MISS")

		if ctx.Response().StatusCode() != http.StatusOK {
			return nil
		}

		// fasthttp reuses the response buffer after the request completes.
		body := append([]byte(nil), ctx.Response().Body()...)
		c.lru.Add(key, entry{
			contentType: string(ctx.Response().Header.ContentType()),
			body:        body,
		})

		return nil
	}
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// Purge drops every cached response.
func (c *Cache) Purge() {
	if c != nil {
		c.lru.Purge()
	}
}
