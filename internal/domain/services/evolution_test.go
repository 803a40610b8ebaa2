package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

func TestFlattenChain_Linear(t *testing.T) {
	nodes, err := FlattenChain(linearChain())
	require.NoError(t, err)

	want := []entities.EvolutionNode{
		{ID: 1, Name: "bulbasaur", Trigger: "level-up"},
		{ID: 2, Name: "ivysaur", Trigger: "level-up"},
		{ID: 3, Name: "venusaur", Trigger: "level-up"},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("FlattenChain() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenChain_BranchingTakesFirstPath(t *testing.T) {
	nodes, err := FlattenChain(branchingChain())
	require.NoError(t, err)

	want := []entities.EvolutionNode{
		{ID: 133, Name: "eevee", Trigger: "level-up"},
		{ID: 134, Name: "vaporeon", Trigger: "use-item"},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("FlattenChain() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenChain_SingleStage(t *testing.T) {
	nodes, err := FlattenChain(&entities.ChainLink{Species: speciesRef(128, "tauros")})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, 128, nodes[0].ID)
}

func TestFlattenChain_Nil(t *testing.T) {
	nodes, err := FlattenChain(nil)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestFlattenChain_MalformedURL(t *testing.T) {
	root := &entities.ChainLink{
		Species: entities.Resource{Name: "missingno", URL: "https://example.test/pokemon-species/abc/"},
	}

	_, err := FlattenChain(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedChain)
	assert.Contains(t, err.Error(), "missingno")
}

func TestDroppedBranches(t *testing.T) {
	assert.Equal(t, 0, DroppedBranches(linearChain()))
	assert.Equal(t, 2, DroppedBranches(branchingChain()))
	assert.Equal(t, 0, DroppedBranches(nil))

	// A skipped branch with its own successor counts both links.
	root := &entities.ChainLink{
		Species: speciesRef(43, "oddish"),
		EvolvesTo: []entities.ChainLink{{
			Species: speciesRef(44, "gloom"),
			EvolvesTo: []entities.ChainLink{
				{Species: speciesRef(45, "vileplume")},
				{Species: speciesRef(182, "bellossom"), EvolvesTo: []entities.ChainLink{{Species: speciesRef(999, "fake")}}},
			},
		}},
	}
	assert.Equal(t, 2, DroppedBranches(root))
}

func TestParseResourceID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    int
		wantErr bool
	}{
		{name: "trailing slash", url: "https://pokeapi.co/api/v2/pokemon-species/25/", want: 25},
		{name: "no trailing slash", url: "https://pokeapi.co/api/v2/pokemon-species/151", want: 151},
		{name: "bare number", url: "7", want: 7},
		{name: "name segment", url: "https://pokeapi.co/api/v2/type/fire/", wantErr: true},
		{name: "zero", url: "https://pokeapi.co/api/v2/pokemon-species/0/", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResourceID(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
