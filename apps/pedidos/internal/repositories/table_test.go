package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"pedidos.sainthonore.com/apps/pedidos/internal/repositories"
)

func TestTableSource(t *testing.T) {
	rows, err := repositories.NewTableSource().Rows()

	assert.Nil(t, err)
	assert.NotEmpty(t, rows)

	blank := 0
	for i, row := range rows {
		assert.Equal(t, i+1, row.Row)
		assert.NotEmpty(t, row.Provider)
		assert.NotEmpty(t, row.Brand)
		assert.NotEmpty(t, row.Country)
		assert.Equal(t, repositories.DefaultTenant, row.Tenant)
		if row.Date == "" {
			blank++
		}
	}
	assert.Greater(t, blank, 0)
}

func TestTableSourceLoadsCleanly(t *testing.T) {
	source := repositories.NewTableSource()
	rows, err := source.Rows()
	assert.Nil(t, err)

	events, err := repositories.New(source).Catalog.Load(context.Background())
	assert.Nil(t, err)

	blank := 0
	for _, row := range rows {
		if row.Date == "" {
			blank++
		}
	}

	// Every non-blank row parses; blank rows are dropped.
	assert.Len(t, events, len(rows)-blank)
}
