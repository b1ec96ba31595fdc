package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAuditTrailQuery_DefaultLimit(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetAuditTrailQuery(&id, 0)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, queries.DefaultAuditTrailLimit, query.Limit())
	require.NotNil(t, query.OrderID())
	assert.Equal(t, id, *query.OrderID())
}

func TestNewGetAuditTrailQuery_WholeFleet(t *testing.T) {
	query, err := queries.NewGetAuditTrailQuery(nil, 10)
	require.NoError(t, err)
	assert.Nil(t, query.OrderID())
	assert.Equal(t, 10, query.Limit())
}

func TestNewGetAuditTrailQuery_InvalidInput(t *testing.T) {
	_, err := queries.NewGetAuditTrailQuery(nil, queries.MaxAuditTrailLimit+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetAuditTrailQuery(nil, -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetAuditTrailQuery(&kernel.UUID{}, 10)
	require.Error(t, err)
}

func TestGetAuditTrailQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetAuditTrailQuery{}.Validate()
	assert.ErrorIs(t, err, queries.ErrGetAuditTrailQueryIsNotConstructed)
}

func TestGetFleetQuery_NotConstructedViaConstructor(t *testing.T) {
	require.NoError(t, queries.NewGetFleetQuery().Validate())
	assert.ErrorIs(t, queries.GetFleetQuery{}.Validate(), queries.ErrGetFleetQueryIsNotConstructed)
}

func TestGetFleetQueryResponse_Utilization(t *testing.T) {
	assert.InDelta(t, 0.75, queries.GetFleetQueryResponse{Capacity: 1000, MaxDateLoad: 750}.Utilization(), 1e-9)
	assert.Zero(t, queries.GetFleetQueryResponse{}.Utilization())
}
