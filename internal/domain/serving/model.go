package serving

type UserServing struct {
	UserID      int64 `gorm:"primaryKey"`
	ServingID   int64 `gorm:"not null"`
	FamilyCount *int
}

func (UserServing) TableName() string {
	return "user_servings"
}

// Selection is a user's serving preference joined with its catalog entry.
type Selection struct {
	ID          int64
	Name        string
	LogoPath    *string
	FamilyCount *int
}
