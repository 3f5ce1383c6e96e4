package op

// Principal is the end-user identity attached to a logout request.
// It is either anonymous or authenticated with a name; the zero
// value is anonymous.
type Principal struct {
	name          string
	authenticated bool
}

// AnonymousPrincipal is the principal of an unauthenticated caller.
func AnonymousPrincipal() Principal {
	return Principal{}
}

// AuthenticatedPrincipal is the principal of a caller with an
// established authentication, identified by name.
func AuthenticatedPrincipal(name string) Principal {
	return Principal{name: name, authenticated: true}
}

// Name returns the principal's name, the empty string for an
// anonymous principal.
func (p Principal) Name() string {
	return p.name
}

func (p Principal) IsAuthenticated() bool {
	return p.authenticated
}
