package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// Resolver is the subset of *net.Resolver the domain check needs.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// EmailDomain reports whether the domain of email has an MX record or, failing
// that, resolves to an address.
func EmailDomain(ctx context.Context, r Resolver, email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	if addrs, err := r.LookupHost(ctx, domain); err == nil && len(addrs) > 0 {
		return true
	}
	return false
}

func IsEmailDomainValid(ctx context.Context, email string) bool {
	return EmailDomain(ctx, net.DefaultResolver, email)
}
