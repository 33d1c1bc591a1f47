package locator

import (
	"fmt"
	"net"
	"strings"
)

// DNSResolver defines the interface for DNS lookups.
// This allows tests to mock DNS resolution.
type DNSResolver interface {
	// LookupTXT looks up TXT records for the given name.
	LookupTXT(name string) ([]string, error)
}

// defaultDNSResolver wraps the standard net package DNS functions.
type defaultDNSResolver struct{}

func (d *defaultDNSResolver) LookupTXT(name string) ([]string, error) {
	return net.LookupTXT(name)
}

// DefaultDNSResolver is the production DNS resolver using the net package.
var DefaultDNSResolver DNSResolver = &defaultDNSResolver{}

// dnslinkPrefix is the TXT record value prefix per the DNSLink convention.
const dnslinkPrefix = "dnslink=/ipfs/"

// ResolveDNSLink resolves _dnslink.{domain} to the CID a market domain
// publishes for its catalog payload.
func ResolveDNSLink(domain string) (string, error) {
	return ResolveDNSLinkWithResolver(domain, DefaultDNSResolver)
}

// ResolveDNSLinkWithResolver resolves the dnslink CID using the provided DNS
// resolver. It looks up _dnslink.{domain} TXT records and extracts the CID
// from records of the form "dnslink=/ipfs/<cid>".
func ResolveDNSLinkWithResolver(domain string, resolver DNSResolver) (string, error) {
	if domain == "" {
		return "", fmt.Errorf("%w: empty domain", ErrDNSLookupFailed)
	}
	if resolver == nil {
		return "", ErrNilParam
	}

	name := "_dnslink." + domain
	txts, err := resolver.LookupTXT(name)
	if err != nil {
		return "", fmt.Errorf("%w: TXT lookup for %s: %w", ErrDNSLookupFailed, name, err)
	}

	// Find the first TXT record with the dnslink prefix.
	var cid string
	for _, txt := range txts {
		txt = strings.TrimSpace(txt)
		if strings.HasPrefix(txt, dnslinkPrefix) {
			cid = strings.TrimSpace(strings.TrimPrefix(txt, dnslinkPrefix))
			break
		}
	}

	if cid == "" {
		return "", fmt.Errorf("%w: %s", ErrNoDNSLink, name)
	}

	if err := ValidateCID(cid); err != nil {
		return "", err
	}

	return cid, nil
}
