package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := Map{
		"atk":     Number(1000),
		"type":    String("physical"),
		"crit":    Bool(false),
		"empty":   Null(),
		"enemy":   MapValue(Map{"def": Number(300), "mdef": Number(30)}),
		"samples": List(Number(1), Number(2.5), String("x")),
	}

	text, err := EncodeMap(m)
	require.NoError(t, err)

	decoded, err := DecodeMap(text)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
}

func TestDecodeMapEmptyText(t *testing.T) {
	m, err := DecodeMap("")
	require.NoError(t, err)
	assert.Empty(t, m)
	assert.NotNil(t, m)
}

func TestDecodeMapLenientCorruptedText(t *testing.T) {
	m := DecodeMapLenient("{not json at all")
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestValueKindsAndAccessors(t *testing.T) {
	assert.Equal(t, KindNumber, Number(250.5).Kind())
	assert.Equal(t, 250.5, Number(250.5).AsNumber())
	assert.Equal(t, "dps", String("dps").AsString())
	assert.True(t, Bool(true).AsBool())
	assert.Equal(t, KindNull, Null().Kind())

	// 访问器对类型不匹配的值退化为零值
	assert.Zero(t, String("x").AsNumber())
	assert.Empty(t, Number(1).AsString())
	assert.Nil(t, Number(1).AsMap())
	assert.Nil(t, String("x").AsList())
}

func TestEncodeNilMap(t *testing.T) {
	text, err := EncodeMap(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", text)
}
