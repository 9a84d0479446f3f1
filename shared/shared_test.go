package shared_test

import (
	"testing"

	"charter/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToFloat(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToFloat(""), "absent is not zero")
	assert.Nil(t, shared.ConvertStringToFloat("forty"))

	v := shared.ConvertStringToFloat(" 40.5 ")
	require.NotNil(t, v)
	assert.Equal(t, 40.5, *v)

	zero := shared.ConvertStringToFloat("0")
	require.NotNil(t, zero)
	assert.Zero(t, *zero, "an explicit zero survives the conversion")
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "yacht:search:abc", shared.BuildCacheKey("yacht:search", "abc"))
}
