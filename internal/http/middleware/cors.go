package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CORSOptions configures CORS. Empty Methods, Headers and MaxAge take the
// read-only API defaults.
type CORSOptions struct {
	// Origins is the allowlist. "*" echoes back any Origin.
	Origins []string
	Methods []string
	Headers []string
	MaxAge  time.Duration
}

var (
	defaultCORSMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	defaultCORSHeaders = []string{"Accept", "Content-Type", "X-Request-ID"}
)

const defaultCORSMaxAge = 10 * time.Minute

type corsPolicy struct {
	allowAny bool
	origins  map[string]struct{}
	methods  string
	headers  string
	maxAge   string
}

func newCORSPolicy(opts CORSOptions) corsPolicy {
	p := corsPolicy{origins: map[string]struct{}{}}
	for _, origin := range opts.Origins {
		origin = strings.TrimSpace(origin)
		switch origin {
		case "":
		case "*":
			p.allowAny = true
		default:
			p.origins[origin] = struct{}{}
		}
	}

	methods := opts.Methods
	if len(methods) == 0 {
		methods = defaultCORSMethods
	}
	headers := opts.Headers
	if len(headers) == 0 {
		headers = defaultCORSHeaders
	}
	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = defaultCORSMaxAge
	}
	p.methods = strings.Join(methods, ", ")
	p.headers = strings.Join(headers, ", ")
	p.maxAge = strconv.Itoa(int(maxAge / time.Second))
	return p
}

func (p corsPolicy) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if p.allowAny {
		return true
	}
	_, ok := p.origins[origin]
	return ok
}

// CORS answers cross-origin requests from allowlisted origins and
// short-circuits their preflights with 204.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	policy := newCORSPolicy(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			w.Header().Add("Vary", "Origin")
			if !policy.allows(origin) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Headers", policy.headers)
			w.Header().Set("Access-Control-Allow-Methods", policy.methods)
			w.Header().Set("Access-Control-Max-Age", policy.maxAge)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
