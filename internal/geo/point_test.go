package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_JSON(t *testing.T) {
	p := NewPoint(-0.187, 5.6037)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[-0.187,5.6037]}`, string(data))

	var back Point
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Valid())
	assert.InDelta(t, -0.187, back.Lng(), 1e-12)
	assert.InDelta(t, 5.6037, back.Lat(), 1e-12)
}

func TestPoint_JSONNull(t *testing.T) {
	var holder struct {
		Coordinates Point `json:"coordinates"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"coordinates":null}`), &holder))
	assert.False(t, holder.Coordinates.Valid())

	data, err := json.Marshal(holder)
	require.NoError(t, err)
	assert.JSONEq(t, `{"coordinates":null}`, string(data))
}

func TestPoint_RejectsOtherGeometries(t *testing.T) {
	var p Point
	err := json.Unmarshal([]byte(`{"type":"LineString","coordinates":[[0,0],[1,1]]}`), &p)
	assert.ErrorIs(t, err, ErrNotAPoint)

	err = json.Unmarshal([]byte(`{"type":"Nope"}`), &p)
	assert.Error(t, err)
}

func TestPoint_ValueScan(t *testing.T) {
	p := NewPoint(36.8219, -1.2921)

	v, err := p.Value()
	require.NoError(t, err)
	raw, ok := v.([]byte)
	require.True(t, ok)

	var back Point
	require.NoError(t, back.Scan(raw))
	assert.InDelta(t, 36.8219, back.Lng(), 1e-12)
	assert.InDelta(t, -1.2921, back.Lat(), 1e-12)
}

func TestPoint_Empty(t *testing.T) {
	var p Point
	v, err := p.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Zero(t, p.Lng())
	assert.Zero(t, p.Lat())

	require.NoError(t, p.Scan(nil))
	assert.False(t, p.Valid())

	assert.Error(t, p.Scan(42))
	assert.Error(t, p.Scan([]byte{0x01, 0x02}))
}

func TestPoint_OmitZero(t *testing.T) {
	type located struct {
		Coordinates Point `json:"coordinates,omitzero"`
	}

	raw, err := json.Marshal(located{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))

	raw, err = json.Marshal(located{Coordinates: NewPoint(36.8219, -1.2921)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"coordinates":{"type":"Point","coordinates":[36.8219,-1.2921]}}`, string(raw))
}
