package preferences

import (
	"context"
	"strings"
	"testing"

	domain "diet-profile-go/internal/domain/preferences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements without a server; the DSN is parsed, never dialed.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	var statements []string
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:capture", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	}))
	return db, &statements
}

func TestDeleteAllScopesToUser(t *testing.T) {
	db, statements := dryRunDB(t)
	repo := NewPostgres(db)

	require.NoError(t, repo.DeleteAll(context.Background(), domain.Dietary, 7))

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.True(t, strings.HasPrefix(sql, `DELETE FROM "user_dietary_restrictions" WHERE`), sql)
	assert.Contains(t, sql, `"user_id" = $1`)
}

func TestDeleteScopesToUserAndItem(t *testing.T) {
	db, statements := dryRunDB(t)
	repo := NewPostgres(db)

	_, err := repo.Delete(context.Background(), domain.Allergy, 7, 3)
	require.NoError(t, err)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.True(t, strings.HasPrefix(sql, `DELETE FROM "user_allergies" WHERE`), sql)
	assert.Contains(t, sql, `"user_id" = `)
	assert.Contains(t, sql, `"allergy_id" = `)
	assert.Contains(t, sql, " AND ")
}
