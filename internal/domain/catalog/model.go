package catalog

// Kind names one of the read-only reference catalogs.
type Kind string

const (
	KindDietary  Kind = "dietary_restrictions"
	KindAllergy  Kind = "allergies"
	KindServings Kind = "servings"
)

func (k Kind) Valid() bool {
	switch k {
	case KindDietary, KindAllergy, KindServings:
		return true
	default:
		return false
	}
}

// Table is the catalog table backing the kind.
func (k Kind) Table() string {
	return string(k)
}

// Item is a catalog row. LogoPath is the stored relative asset path, not a URL.
type Item struct {
	ID       int64   `gorm:"column:id;primaryKey"`
	Name     string  `gorm:"column:name"`
	LogoPath *string `gorm:"column:logo_path"`
}
