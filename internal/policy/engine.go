package policy

import (
	"fmt"
	"path"
	"strings"
)

// DefaultRules is the route table served by the API.
func DefaultRules() []Rule {
	return []Rule{
		{Method: "*", Pattern: "/auth/**", Requirement: Public},
		{Method: "POST", Pattern: "/users", Requirement: Public},
		{Method: "GET", Pattern: "/products", Requirement: Public},
		{Method: "GET", Pattern: "/healthz", Requirement: Public},
		{Method: "GET", Pattern: "/readyz", Requirement: Public},
	}
}

// AccessPolicy evaluates requests against an ordered rule table.
// It is immutable after construction and safe for concurrent use.
type AccessPolicy struct {
	rules []Rule
}

// NewAccessPolicy validates and copies rules
func NewAccessPolicy(rules []Rule) (*AccessPolicy, error) {
	copied := make([]Rule, len(rules))
	for i, r := range rules {
		if r.Requirement != Public && r.Requirement != Authenticated {
			return nil, fmt.Errorf("rule %d: unknown requirement %q", i, r.Requirement)
		}
		if !strings.HasPrefix(r.Pattern, "/") {
			return nil, fmt.Errorf("rule %d: pattern %q must start with /", i, r.Pattern)
		}
		if _, err := path.Match(r.Pattern, "/"); err != nil {
			return nil, fmt.Errorf("rule %d: bad pattern %q: %w", i, r.Pattern, err)
		}
		r.Method = strings.ToUpper(r.Method)
		copied[i] = r
	}
	return &AccessPolicy{rules: copied}, nil
}

// NewDefaultAccessPolicy returns the policy built from DefaultRules
func NewDefaultAccessPolicy() *AccessPolicy {
	p, err := NewAccessPolicy(DefaultRules())
	if err != nil {
		panic(err)
	}
	return p
}

// Rules returns a copy of the rule table
func (p *AccessPolicy) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// Evaluate returns the decision for method and path. First match wins,
// unmatched requests require authentication.
func (p *AccessPolicy) Evaluate(method, requestPath string) Decision {
	method = strings.ToUpper(method)
	requestPath = normalize(requestPath)

	for i := range p.rules {
		r := &p.rules[i]
		if !methodMatches(r.Method, method) {
			continue
		}
		if patternMatches(r.Pattern, requestPath) {
			return Decision{Requirement: r.Requirement, Rule: r}
		}
	}
	return Decision{Requirement: Authenticated}
}

// IsPublic is shorthand for Evaluate(...).Requirement == Public
func (p *AccessPolicy) IsPublic(method, requestPath string) bool {
	return !p.Evaluate(method, requestPath).RequiresAuthentication()
}

func methodMatches(ruleMethod, method string) bool {
	return ruleMethod == "" || ruleMethod == "*" || ruleMethod == method
}

func patternMatches(pattern, requestPath string) bool {
	pattern = normalize(pattern)

	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		if prefix == "" {
			return true
		}
		return requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/")
	}

	if pattern == requestPath {
		return true
	}
	matched, err := path.Match(pattern, requestPath)
	return err == nil && matched
}

// normalize cleans the path and drops a trailing slash
func normalize(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
