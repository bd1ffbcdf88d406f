package v3

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Quota advertised when the fixture does not enforce a limit.
const defaultQuota = 5000

type rateBody struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

type rateLimitResources struct {
	Core rateBody `json:"core"`
}

type rateLimitBody struct {
	Resources rateLimitResources `json:"resources"`
	Rate      rateBody           `json:"rate"`
}

// overQuota counts the request against the fixture's rate limit and
// stamps the X-Ratelimit headers the client inspects. The request that
// exhausts the quota still succeeds, the one after it is refused.
func (h *Handler) overQuota(c echo.Context) bool {
	rate, over := h.consume()

	hdr := c.Response().Header()
	hdr.Set("X-Ratelimit-Limit", strconv.Itoa(rate.Limit))
	hdr.Set("X-Ratelimit-Remaining", strconv.Itoa(rate.Remaining))
	hdr.Set("X-Ratelimit-Reset", strconv.FormatInt(rate.Reset, 10))

	return over
}

func (h *Handler) consume() (rateBody, bool) {
	reset := time.Now().Add(time.Hour).Unix()

	limit := h.fixture.RateLimit
	if limit <= 0 {
		return rateBody{Limit: defaultQuota, Remaining: defaultQuota - 1, Reset: reset}, false
	}

	used := h.served.Add(1)
	remaining := limit - int(used)
	over := remaining < 0
	if over {
		remaining = 0
	}

	return rateBody{Limit: limit, Remaining: remaining, Reset: reset}, over
}

// RateLimit answers GET /rate_limit. Like the real endpoint it reports
// the current quota without consuming any of it.
func (h *Handler) RateLimit(c echo.Context) error {
	rate := h.snapshot()

	return c.JSON(http.StatusOK, rateLimitBody{
		Resources: rateLimitResources{Core: rate},
		Rate:      rate,
	})
}

func (h *Handler) snapshot() rateBody {
	reset := time.Now().Add(time.Hour).Unix()

	limit := h.fixture.RateLimit
	if limit <= 0 {
		return rateBody{Limit: defaultQuota, Remaining: defaultQuota - 1, Reset: reset}
	}

	remaining := limit - int(h.served.Load())
	if remaining < 0 {
		remaining = 0
	}

	return rateBody{Limit: limit, Remaining: remaining, Reset: reset}
}
