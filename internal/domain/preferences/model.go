package preferences

import "diet-profile-go/internal/domain/catalog"

// Set describes one many-to-many preference: the catalog it draws from and the
// association table holding (user_id, <ItemColumn>) pairs.
type Set struct {
	Kind             catalog.Kind
	AssociationTable string
	ItemColumn       string
}

var (
	Dietary = Set{
		Kind:             catalog.KindDietary,
		AssociationTable: "user_dietary_restrictions",
		ItemColumn:       "dietary_id",
	}
	Allergy = Set{
		Kind:             catalog.KindAllergy,
		AssociationTable: "user_allergies",
		ItemColumn:       "allergy_id",
	}
)

func (s Set) CatalogTable() string {
	return s.Kind.Table()
}
