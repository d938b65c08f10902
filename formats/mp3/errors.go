// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3 indicates input go-mp3 could not parse.
var ErrNotMP3 = errors.New("not an MP3 stream")
