package template

import (
	"fmt"
	"strings"
)

// FileNames returns the output file name for each of n documents. A single
// document keeps the base name unchanged; multiple documents get a 1-based
// sequence number, zero-padded to at least two digits (wider when n needs
// it), inserted before the extension. The numbering is contiguous with no
// gaps, so "template.yaml" with n=3 yields template01.yaml through
// template03.yaml.
func FileNames(base string, n int) []string {
	if n <= 1 {
		return []string{base}
	}

	prefix := base
	suffix := ""
	if i := strings.LastIndex(base, "."); i >= 0 {
		prefix, suffix = base[:i], base[i:]
	}

	width := len(fmt.Sprintf("%d", n))
	if width < 2 {
		width = 2
	}

	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%0*d%s", prefix, width, i+1, suffix)
	}
	return names
}
