package search

import (
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// LimiteMaximo caps how many documents a single search may return.
const LimiteMaximo = 100

// ParseSort turns a "campo,-otroCampo" directive into an ordered sort
// document. A leading "-" means descending; input order is preserved, so
// the first field is the primary key. Syntax is validated upstream.
func ParseSort(sortBy string) bson.D {
	if sortBy == "" {
		return nil
	}
	var orden bson.D
	for _, campo := range strings.Split(sortBy, ",") {
		campo = strings.TrimSpace(campo)
		if campo == "" {
			continue
		}
		direccion := 1
		if strings.HasPrefix(campo, "-") {
			direccion = -1
			campo = campo[1:]
		}
		orden = append(orden, bson.E{Key: campo, Value: direccion})
	}
	return orden
}

// ParseLimit parses the limit parameter, clamping it to [1, LimiteMaximo].
// Zero means the caller imposed no limit.
func ParseLimit(limit string) int64 {
	if limit == "" {
		return 0
	}
	n, err := strconv.ParseInt(limit, 10, 64)
	if err != nil || n < 1 {
		return 0
	}
	if n > LimiteMaximo {
		return LimiteMaximo
	}
	return n
}

// OrdenarPorRelevancia re-sorts already-fetched results by descending
// text-index score. Applied in memory after the store returns, only when a
// free-text search was active.
func OrdenarPorRelevancia[T any](items []T, score func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return score(items[i]) > score(items[j])
	})
}
