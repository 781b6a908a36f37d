package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCardsEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	recorder := doRequest(t, r, http.MethodGet, "/cards", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var cards []CardResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &cards))
	require.Len(t, cards, 12)

	// Pokedex order, not insertion order.
	for i := 1; i < len(cards); i++ {
		assert.Less(t, cards[i-1].PokedexNumber, cards[i].PokedexNumber)
	}
}

func TestListCardsEndpoint_NoAuthRequired(t *testing.T) {
	r, _ := newTestServer(t)

	recorder := doRequest(t, r, http.MethodGet, "/cards", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
