package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlacademy-labs/sqlacademy/internal/testutil"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s := New(testutil.NewTestLogger(t))
	ctx := context.Background()
	require.NoError(t, s.Open(ctx))
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Initialize(ctx))
	return s
}

func TestInitializeSeedsAllTables(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for _, table := range TableNames {
		var count int
		err := s.DB().QueryRowContext(ctx, "SELECT count(*) FROM "+table).Scan(&count)
		require.NoError(t, err, "counting %s", table)
		assert.Greater(t, count, 0, "table %s should be seeded", table)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	var before int
	require.NoError(t, s.DB().QueryRowContext(ctx, "SELECT count(*) FROM clientes").Scan(&before))

	// A second Initialize must not duplicate the seed data.
	require.NoError(t, s.Initialize(ctx))

	var after int
	require.NoError(t, s.DB().QueryRowContext(ctx, "SELECT count(*) FROM clientes").Scan(&after))
	assert.Equal(t, before, after)
}

func TestSeedEdgeCases(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	// Some clients never ordered, so LEFT JOIN lessons have NULLs to show.
	var without int
	err := s.DB().QueryRowContext(ctx, `
		SELECT count(*) FROM clientes c
		LEFT JOIN pedidos p ON p.cliente_id = c.id
		WHERE p.id IS NULL
	`).Scan(&without)
	require.NoError(t, err)
	assert.Greater(t, without, 0, "fixture should have clients without orders")

	// At least one salary value is shared, so RANK and DENSE_RANK produce
	// different sequences over funcionarios.
	var tied int
	err = s.DB().QueryRowContext(ctx, `
		SELECT count(*) FROM (
			SELECT salario FROM funcionarios
			GROUP BY salario HAVING count(*) >= 2
		)
	`).Scan(&tied)
	require.NoError(t, err)
	assert.Greater(t, tied, 0, "fixture should have a salary tie")
}

func TestDescribeSchema(t *testing.T) {
	s := setupStore(t)

	tables, err := s.DescribeSchema(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, len(TableNames))

	byName := make(map[string][]string)
	for _, tbl := range tables {
		byName[tbl.Name] = tbl.Columns
	}
	assert.Equal(t, []string{"id", "nome", "email", "cidade", "data_cadastro"}, byName["clientes"])
	assert.Contains(t, byName["pedidos"], "cliente_id")
	assert.Contains(t, byName["itens_pedido"], "produto_id")
}
