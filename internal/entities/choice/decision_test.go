package choice_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities/choice"
)

func TestDecision_SetSelected(t *testing.T) {
	d := &choice.Decision{Quantity: 2}

	d.SetSelected(nil)
	assert.Equal(t, []string{}, d.Selected)
	assert.Equal(t, 2, d.Remaining)
	assert.True(t, d.Pending())

	d.SetSelected([]string{"STR"})
	assert.Equal(t, 1, d.Remaining)

	d.SetSelected([]string{"STR", "DEX", "CON"})
	assert.Equal(t, 0, d.Remaining)
	assert.False(t, d.Pending())
}

func TestDecision_OptionsSerializeAsNullWhenExternal(t *testing.T) {
	d := &choice.Decision{
		ID:              "feat|race|phb:variant-human|1|bonus_feat",
		Type:            choice.TypeFeat,
		Quantity:        1,
		OptionsEndpoint: "/api/v1/feats",
	}
	d.SetSelected(nil)

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "options")
	assert.Nil(t, decoded["options"])
	assert.Equal(t, []any{}, decoded["selected"])
	assert.Equal(t, "/api/v1/feats", decoded["options_endpoint"])
}

func TestDecision_Option(t *testing.T) {
	d := &choice.Decision{Options: []choice.Option{{Key: "S", Name: "Small"}, {Key: "M", Name: "Medium"}}}

	assert.True(t, d.HasOption("M"))
	assert.False(t, d.HasOption("L"))
	require.NotNil(t, d.Option("S"))
	assert.Equal(t, "Small", d.Option("S").Name)
	assert.Nil(t, d.Option("L"))
}

func TestSummarize(t *testing.T) {
	decisions := []*choice.Decision{
		{Type: choice.TypeSpell, Source: choice.SourceClass, Required: true, Quantity: 3, Remaining: 3},
		{Type: choice.TypeSpell, Source: choice.SourceClass, Required: true, Quantity: 2, Remaining: 1},
		{Type: choice.TypeLanguage, Source: choice.SourceRace, Required: false, Quantity: 1, Remaining: 1},
		{Type: choice.TypeSize, Source: choice.SourceRace, Required: true, Quantity: 1, Remaining: 0},
	}

	summary := choice.Summarize(decisions)
	assert.Equal(t, 3, summary.TotalPending)
	assert.Equal(t, 2, summary.RequiredPending)
	assert.Equal(t, 1, summary.OptionalPending)
	assert.Equal(t, 2, summary.ByType[choice.TypeSpell])
	assert.Equal(t, 1, summary.ByType[choice.TypeLanguage])
	assert.Zero(t, summary.ByType[choice.TypeSize])
	assert.Equal(t, 2, summary.BySource[choice.SourceClass])
	assert.Equal(t, 1, summary.BySource[choice.SourceRace])
}

func TestTypes_Complete(t *testing.T) {
	types := choice.Types()
	assert.Len(t, types, 15)

	seen := make(map[choice.Type]bool)
	for _, typ := range types {
		assert.False(t, seen[typ], "duplicate type %s", typ)
		seen[typ] = true
		assert.True(t, typ.Valid())
	}
	assert.False(t, choice.Type("mystery").Valid())
}
