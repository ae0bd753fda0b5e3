package repository

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ids are opaque keys; a case-folding collation would let "work" match "Work".
func TestMySQLMigration_IdentifierColumnsUseBinaryCollation(t *testing.T) {
	raw, err := migrationFiles.ReadFile("migrations/mysql/00001_init.sql")
	require.NoError(t, err)

	column := regexp.MustCompile(`^\s+(id|user_id|entry_id|activity_id|token_hash)\s+(VAR)?CHAR\(`)

	var checked int
	for _, line := range strings.Split(string(raw), "\n") {
		if !column.MatchString(line) {
			continue
		}
		checked++
		assert.Contains(t, line, "COLLATE utf8mb4_bin", strings.TrimSpace(line))
	}
	assert.Equal(t, 11, checked)
}

func TestAttachActivity_IsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "u1", "a@x.com")
	seedActivity(t, s, "u1", "Work")
	require.NoError(t, s.Entries().Insert(ctx, entryFixture("u1", "e1")))

	ok, err := s.Entries().AttachActivity(ctx, "u1", "e1", "work")
	require.NoError(t, err)
	assert.False(t, ok)
}
