package queue

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/oshokin/zspotify-grabber/internal/utils"
)

// Reference identifies a catalog entity by kind and identifier.
type Reference struct {
	// Kind is the item kind.
	Kind Kind
	// ID is the catalog identifier.
	ID string
}

// String returns the kind:id form of the reference.
func (r Reference) String() string {
	return r.Kind.String() + ":" + r.ID
}

// referenceListExtension marks an argument as a file with one reference per line.
const referenceListExtension = ".txt"

// referencePatterns match the accepted reference forms:
// web links, spotify: URIs and bare kind:id pairs.
//
//nolint:gochecknoglobals,lll // Immutable, pre-compiled regex patterns used as constants.
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://open\.spotify\.com/(?:intl-[a-z]{2}(?:-[A-Za-z]{2})?/)?(?<Kind>track|album|artist|playlist)/(?<ID>[0-9A-Za-z]+)/?(?:\?.*)?$`),
	regexp.MustCompile(`^spotify:(?<Kind>track|album|artist|playlist):(?<ID>[0-9A-Za-z]+)$`),
	regexp.MustCompile(`^(?<Kind>track|album|artist|playlist):(?<ID>[0-9A-Za-z]+)$`),
}

// ParseReference parses a single web link, spotify: URI or kind:id pair.
func ParseReference(value string) (Reference, error) {
	value = strings.TrimSpace(value)

	for _, pattern := range referencePatterns {
		id := utils.ExtractNamedGroup(pattern, "ID", value)
		if id == "" {
			continue
		}

		kind, err := ParseKind(utils.ExtractNamedGroup(pattern, "Kind", value))
		if err != nil {
			return Reference{}, fmt.Errorf("%w: '%s': %w", ErrInvalidReference, value, err)
		}

		return Reference{Kind: kind, ID: id}, nil
	}

	return Reference{}, fmt.Errorf("%w: '%s'", ErrInvalidReference, value)
}

// ParseReferences parses every value in order and drops repeated references.
// A value ending in .txt is read as a file with one reference per line.
// Invalid values are skipped and reported together in the returned error.
func ParseReferences(values []string) ([]Reference, error) {
	var (
		result = make([]Reference, 0, len(values))
		seen   = make(map[Reference]struct{}, len(values))
		errs   []error
	)

	for _, value := range values {
		lines := []string{value}

		if strings.HasSuffix(value, referenceListExtension) {
			fileLines, err := utils.ReadUniqueLinesFromFile(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("failed to read references from '%s': %w", value, err))

				continue
			}

			lines = fileLines
		}

		for _, line := range lines {
			ref, err := ParseReference(line)
			if err != nil {
				errs = append(errs, err)

				continue
			}

			if _, ok := seen[ref]; ok {
				continue
			}

			seen[ref] = struct{}{}

			result = append(result, ref)
		}
	}

	return result, errors.Join(errs...)
}
