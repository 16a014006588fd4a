package policy

// Requirement is the access level a route demands.
type Requirement string

const (
	// Public routes are reachable without credentials.
	Public Requirement = "public"
	// Authenticated routes require an identity in the request context.
	Authenticated Requirement = "authenticated"
)

// Rule maps a method and path pattern to a Requirement.
// An empty Method (or "*") matches any method.
type Rule struct {
	Method      string
	Pattern     string
	Requirement Requirement
}

// Decision is the outcome of evaluating a request against the policy.
type Decision struct {
	Requirement Requirement
	// Rule is the rule that matched, nil when the default applied.
	Rule *Rule
}

// RequiresAuthentication reports whether the caller must be authenticated.
func (d Decision) RequiresAuthentication() bool {
	return d.Requirement != Public
}
