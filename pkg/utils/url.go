package utils

import "net/url"

// ToAbsoluteURL converts a relative URL to an absolute URL given a base URL.
// Listing items that point back into the source site carry relative hrefs in
// the raw markup.
func ToAbsoluteURL(base *url.URL, relative string) (string, error) {
	relURL, err := url.Parse(relative)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(relURL).String(), nil
}
