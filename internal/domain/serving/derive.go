package serving

import (
	"fmt"
	"strings"
)

const (
	justMeCount = 1
	coupleCount = 2
)

// DeriveFamilyCount fills in the household size implied by the serving name
// when the caller did not provide one. Matching is case-insensitive and the
// first matching keyword wins: "just", then "couple", then "family".
func DeriveFamilyCount(servingName string, familyCount *int) (*int, error) {
	if familyCount != nil {
		if *familyCount <= 0 {
			return nil, ErrInvalidFamilyCount
		}
		count := *familyCount
		return &count, nil
	}

	name := strings.ToLower(servingName)
	switch {
	case strings.Contains(name, "just"):
		count := justMeCount
		return &count, nil
	case strings.Contains(name, "couple"):
		count := coupleCount
		return &count, nil
	case strings.Contains(name, "family"):
		return nil, ErrFamilyCountRequired
	default:
		return nil, nil
	}
}

// DisplayName rewrites family servings to "Family of N" when N is known.
func DisplayName(servingName string, familyCount *int) string {
	if familyCount != nil && *familyCount > 0 && strings.Contains(strings.ToLower(servingName), "family") {
		return fmt.Sprintf("Family of %d", *familyCount)
	}
	return servingName
}
