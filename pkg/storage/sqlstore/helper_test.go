package sqlstore_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	root "passgen"
	"passgen/pkg/storage/sqlite"
	"passgen/pkg/storage/sqlstore"
)

// setupTestStore opens a migrated in-memory SQLite store named after the test
// so parallel tests never share data.
func setupTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.New(ctx, sqlite.Options{Path: url.PathEscape(t.Name()), InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Migrate(ctx, root.Migrations))

	return st
}
