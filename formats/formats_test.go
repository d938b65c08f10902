// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/oggexport/audio"
	"github.com/ik5/oggexport/formats/flac"
	"github.com/ik5/oggexport/formats/wav"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := Registry()
	assert.Equal(t, []string{"aif", "aiff", "flac", "mp3", "oga", "ogg", "wav", "wave"}, r.Formats())

	d, err := r.Lookup("mix/final.WAV")
	require.NoError(t, err)
	assert.Equal(t, wav.Decoder{}, d)

	d, err = r.Lookup("album.flac")
	require.NoError(t, err)
	assert.Equal(t, flac.Decoder{}, d)

	_, err = r.Lookup("session.mmpz")
	assert.ErrorIs(t, err, audio.ErrUnknownFormat)
}
