package generator

import (
	"net/url"
	"strings"

	"digital.vasic.alchemy/internal/check"
)

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// URLs produces absolute URLs with the given scheme, such as "http"
// or "ftp", a random host and a random path.
func URLs(protocol string) Generator[*url.URL] {
	protocol = strings.TrimSuffix(protocol, "://")
	check.That(protocol != "", "protocol is empty")
	_, err := url.Parse(protocol + "://example.com")
	check.That(err == nil, "invalid protocol %q: %v", protocol, err)

	hosts := fromAlphabet(lowercase, 8)
	domains := FromList("com", "net", "org", "io", "dev")
	paths := AlphanumericStrings(12)

	return func() *url.URL {
		return &url.URL{
			Scheme: protocol,
			Host:   hosts() + "." + domains(),
			Path:   "/" + paths(),
		}
	}
}

// HTTPURLs produces http URLs.
func HTTPURLs() Generator[*url.URL] {
	return URLs("http")
}
