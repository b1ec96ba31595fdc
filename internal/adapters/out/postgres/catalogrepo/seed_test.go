package catalogrepo_test

import (
	"strings"
	"testing"

	"dispatch/internal/adapters/out/postgres/catalogrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeed(t *testing.T) {
	seed := `[
		{
			"id": "CRATE",
			"name": "Crate of bottles",
			"pieceVolume": 2000,
			"pieceBox": {"length": 20, "width": 10, "height": 10},
			"piecePrice": "1.25",
			"packages": [
				{"quantity": 6, "volume": 13000, "box": {"length": 40, "width": 30, "height": 12}, "price": "7.00"}
			]
		},
		{
			"id": "BOX",
			"name": "Box",
			"pieceVolume": 500,
			"pieceBox": {"length": 10, "width": 10, "height": 5},
			"piecePrice": "3.5"
		}
	]`

	products, err := catalogrepo.ReadSeed(strings.NewReader(seed))

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "CRATE", products[0].ID())
	require.Len(t, products[0].Packages(), 1)
	assert.Equal(t, 6, products[0].Packages()[0].Quantity())
	assert.Equal(t, "7", products[0].Packages()[0].Price().String())
	assert.Empty(t, products[1].Packages())
}

func TestReadSeed_ReportsEveryInvalidProduct(t *testing.T) {
	seed := `[
		{"id": "", "name": "No id", "pieceVolume": 1, "pieceBox": {"length": 1, "width": 1, "height": 1}, "piecePrice": "1"},
		{"id": "NEG", "name": "Negative", "pieceVolume": -5, "pieceBox": {"length": 1, "width": 1, "height": 1}, "piecePrice": "1"}
	]`

	_, err := catalogrepo.ReadSeed(strings.NewReader(seed))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 0")
	assert.Contains(t, err.Error(), "product 1 (NEG)")
}

func TestReadSeed_MalformedJSON(t *testing.T) {
	_, err := catalogrepo.ReadSeed(strings.NewReader(`{"id": "BOX"}`))

	require.ErrorContains(t, err, "failed to decode catalog seed")
}
