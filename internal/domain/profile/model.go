package profile

import "diet-profile-go/internal/domain/catalog"

// Profile is the combined onboarding view of a user.
type Profile struct {
	UserID              int64
	DietaryRestrictions []catalog.Item
	Allergies           []catalog.Item
	LabResultFilename   *string
}
