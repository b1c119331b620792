package visual

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromImageRejectsNil(t *testing.T) {
	v, err := FromImage(nil)
	require.Nil(t, v)
	require.Error(t, err)
}

func TestFromImageRejectsEmpty(t *testing.T) {
	v, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	require.Nil(t, v)
	require.Error(t, err)
}

func TestDestroyedVisualRefusesUse(t *testing.T) {
	var v *Visual
	v.Destroy()

	_, err := v.Ptr()
	require.ErrorIs(t, err, errDestroyed)
	require.ErrorIs(t, v.Resize(10, 10), errDestroyed)
	require.ErrorIs(t, v.Rotate(1.5), errDestroyed)

	zero := &Visual{}
	zero.Destroy()
	_, err = zero.Ptr()
	require.ErrorIs(t, err, errDestroyed)
}
