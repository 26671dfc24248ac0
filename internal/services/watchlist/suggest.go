package watchlist

import (
	"errors"
	"strings"

	"github.com/agnivade/levenshtein"

	"watchlist/internal/domain"
)

// suggest fills in the closest existing list name on a ListNotFoundError.
func (s *Service) suggest(err error) error {
	var nf *domain.ListNotFoundError
	if !errors.As(err, &nf) || nf.Suggestion != "" {
		return err
	}
	nf.Suggestion = closest(nf.Name, s.reg.Names())
	return nf
}

// closest returns the candidate nearest to name by case-insensitive edit
// distance, or "" when none is within max(2, len(name)/3). Candidates are
// expected in sorted order; ties keep the first.
func closest(name string, candidates []string) string {
	limit := len([]rune(name)) / 3
	if limit < 2 {
		limit = 2
	}
	target := strings.ToLower(name)
	best, bestDist := "", limit+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(target, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
