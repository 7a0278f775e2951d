package model

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_JSONRoundTrip(t *testing.T) {
	values := map[string]Value{
		"number": NumberVal(2.5),
		"string": StringVal("clip one"),
		"bool":   BoolVal(true),
		"color":  ColorVal(MustColor("#00d4ff")),
		"point":  PointVal(120, -45.5),
		"choice": ChoiceVal("screen"),
	}
	for name, want := range values {
		t.Run(name, func(t *testing.T) {
			data, err := sonic.Marshal(want)
			require.NoError(t, err)

			var got Value
			require.NoError(t, sonic.Unmarshal(data, &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestValue_JSONKeepsVariantTag(t *testing.T) {
	data, err := sonic.Marshal(ChoiceVal("overlay"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"choice","value":"overlay"}`, string(data))

	data, err = sonic.Marshal(PointVal(10, 20))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"point","value":{"x":10,"y":20}}`, string(data))
}

func TestValue_UnmarshalRejectsUnknownTag(t *testing.T) {
	var v Value
	err := sonic.Unmarshal([]byte(`{"type":"matrix","value":1}`), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matrix")
}

func TestValue_UnmarshalRejectsMismatchedPayload(t *testing.T) {
	var v Value
	err := sonic.Unmarshal([]byte(`{"type":"number","value":"fast"}`), &v)
	require.Error(t, err)
}

func TestValue_ZeroValueIsInvalid(t *testing.T) {
	var v Value
	assert.False(t, v.Valid())
	assert.Equal(t, "invalid", v.Type().String())

	_, err := sonic.Marshal(v)
	assert.Error(t, err)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "1920", NumberVal(1920).String())
	assert.Equal(t, "0.5", NumberVal(0.5).String())
	assert.Equal(t, "true", BoolVal(true).String())
	assert.Equal(t, "#ff0000", ColorVal(MustColor("f00")).String())
	assert.Equal(t, "(3, 4)", PointVal(3, 4).String())
}
