package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// RateLimiter ограничивает частоту запросов отдельно для каждого ключа (IP или пользователя).
type RateLimiter struct {
	rps     rate.Limit
	burst   int
	byUser  bool
	onError ErrorWriter

	mu        sync.Mutex
	limiters  map[string]*visitor
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создаёт лимитер. key — "ip" или "user"; для "user" без
// аутентификации используется IP.
func NewRateLimiter(rps float64, burst int, key string, onError ErrorWriter) *RateLimiter {
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		byUser:   key == "user",
		onError:  onError,
		limiters: make(map[string]*visitor),
		ttl:      10 * time.Minute,
		now:      time.Now,
	}
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.get(l.key(r)).Allow() {
			err := serr.TooManyRequests(serr.MsgTooManyRequest, nil)
			if l.onError != nil {
				l.onError(w, r, err)
				return
			}
			http.Error(w, serr.MsgTooManyRequest, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) key(r *http.Request) string {
	if l.byUser {
		if id, ok := UserIDFromContext(r.Context()); ok {
			return "user:" + id
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// get возвращает лимитер ключа. Раз в ttl/2 заодно выбрасывает давно не приходившие ключи.
func (l *RateLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.ttl/2 {
		l.sweep(now)
	}

	v, ok := l.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep вызывается под l.mu.
func (l *RateLimiter) sweep(now time.Time) {
	for k, v := range l.limiters {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.limiters, k)
		}
	}
	l.lastSweep = now
}
