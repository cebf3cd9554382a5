package inmemory

import (
	"sync"
	"time"

	catalogdomain "diet-profile-go/internal/domain/catalog"
	labresultdomain "diet-profile-go/internal/domain/labresult"
	servingdomain "diet-profile-go/internal/domain/serving"
	userdomain "diet-profile-go/internal/domain/user"
)

// Store keeps every table in process memory. Transactions hold the store
// lock for their whole duration and restore a snapshot when fn fails.
type Store struct {
	mu   sync.Mutex
	data storeData
	now  func() time.Time
}

type association struct {
	userID int64
	itemID int64
}

type storeData struct {
	users        map[int64]userdomain.User
	nextUserID   int64
	catalogs     map[catalogdomain.Kind][]catalogdomain.Item
	associations map[string]map[association]struct{}
	servings     map[int64]servingdomain.UserServing
	labResults   []labresultdomain.LabResult
	nextLabID    int64
}

func NewStore() *Store {
	return &Store{
		data: storeData{
			users:        make(map[int64]userdomain.User),
			nextUserID:   1,
			catalogs:     make(map[catalogdomain.Kind][]catalogdomain.Item),
			associations: make(map[string]map[association]struct{}),
			servings:     make(map[int64]servingdomain.UserServing),
			nextLabID:    1,
		},
		now: time.Now,
	}
}

// NewSeededStore returns a store holding the same catalog rows as the seed migration.
func NewSeededStore() *Store {
	s := NewStore()
	s.SeedCatalog(catalogdomain.KindDietary, "Vegetarian", "Vegan", "Pescatarian", "Keto", "Halal", "Kosher")
	s.SeedCatalog(catalogdomain.KindAllergy, "Peanuts", "Tree Nuts", "Dairy", "Eggs", "Gluten", "Shellfish", "Soy")
	s.SeedCatalog(catalogdomain.KindServings, "Just Me", "Couple", "Family")
	return s
}

// SeedCatalog appends named items with sequential ids and a logo derived from the name.
func (s *Store) SeedCatalog(kind catalogdomain.Kind, names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.data.catalogs[kind]
	for _, name := range names {
		logo := logoFileName(name)
		items = append(items, catalogdomain.Item{
			ID:       int64(len(items) + 1),
			Name:     name,
			LogoPath: &logo,
		})
	}
	s.data.catalogs[kind] = items
}

func logoFileName(name string) string {
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r >= 'A' && r <= 'Z':
			runes[i] = r + ('a' - 'A')
		case r == ' ':
			runes[i] = '_'
		}
	}
	return string(runes) + ".png"
}

// transaction runs fn with the lock held, rolling back on error.
func (s *Store) transaction(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// locked runs fn under the store lock unless the caller already holds it.
func (s *Store) locked(inTx bool, fn func()) {
	if inTx {
		fn()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (d storeData) clone() storeData {
	cloned := storeData{
		users:        make(map[int64]userdomain.User, len(d.users)),
		nextUserID:   d.nextUserID,
		catalogs:     d.catalogs,
		associations: make(map[string]map[association]struct{}, len(d.associations)),
		servings:     make(map[int64]servingdomain.UserServing, len(d.servings)),
		labResults:   append([]labresultdomain.LabResult(nil), d.labResults...),
		nextLabID:    d.nextLabID,
	}
	for id, user := range d.users {
		cloned.users[id] = user
	}
	for table, rows := range d.associations {
		copied := make(map[association]struct{}, len(rows))
		for key := range rows {
			copied[key] = struct{}{}
		}
		cloned.associations[table] = copied
	}
	for id, selection := range d.servings {
		cloned.servings[id] = selection
	}
	return cloned
}
