package store

import (
	"testing"

	"github.com/pankajredekar/pos/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIDEmpty(t *testing.T) {
	tbl := newTellerTable(t)

	id, err := tbl.NextID(tellerID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), id)
}

func TestNextIDUnsorted(t *testing.T) {
	tbl := newTellerTable(t)
	require.NoError(t, tbl.ReplaceAll([]model.Teller{{ID: 3}, {ID: 7}, {ID: 2}}))

	id, err := tbl.NextID(tellerID)
	require.NoError(t, err)
	assert.Equal(t, int32(8), id)
}

func TestNextIDNotReusedAfterDelete(t *testing.T) {
	tbl := newTellerTable(t)
	require.NoError(t, tbl.ReplaceAll([]model.Teller{{ID: 1}, {ID: 2}, {ID: 3}}))
	require.NoError(t, tbl.ReplaceAll([]model.Teller{{ID: 1}, {ID: 3}}))

	id, err := tbl.NextID(tellerID)
	require.NoError(t, err)
	assert.Equal(t, int32(4), id)
}

func TestMaxID(t *testing.T) {
	assert.Equal(t, int32(0), MaxID(nil, tellerID))
	assert.Equal(t, int32(9), MaxID([]model.Teller{{ID: 9}, {ID: 4}}, tellerID))
}
