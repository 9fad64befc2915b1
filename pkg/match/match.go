// Package match scores customer names against stored receipts using
// token-sort ratio, so word order and extra whitespace don't break matches
// ("Doe, John" still matches "John Doe").
package match

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"relay/pkg/domain"
)

// Best returns the index and score (0-100) of the receipt whose customer
// name best matches name. Index is -1 when receipts is empty or name is
// blank. Earlier receipts win score ties.
func Best(name string, receipts []domain.Receipt) (int, int) {
	if name == "" || len(receipts) == 0 {
		return -1, 0
	}

	bestIdx, bestScore := -1, 0
	for i := range receipts {
		score := fuzzy.TokenSortRatio(name, receipts[i].CustomerName)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	return bestIdx, bestScore
}
