// SPDX-License-Identifier: EPL-2.0

package audio

// MonoMixer averages all channels of src into one.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error    { return m.src.Close() }

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	m.tmp = grow(m.tmp, len(dst)*channels)
	n, err := m.src.ReadSamples(m.tmp)
	frames := n / channels

	scale := 1 / float32(channels)
	for f := range frames {
		var sum float32
		for _, v := range m.tmp[f*channels : (f+1)*channels] {
			sum += v
		}
		dst[f] = sum * scale
	}

	return frames, err
}

// Upmixer spreads src over more channels: output channel c carries source
// channel c modulo the source channel count. A mono source becomes
// identical left and right.
type Upmixer struct {
	src      Source
	channels int
	tmp      []float32
}

func NewUpmixer(src Source, channels int) *Upmixer {
	return &Upmixer{src: src, channels: channels}
}

func (u *Upmixer) SampleRate() int { return u.src.SampleRate() }
func (u *Upmixer) Channels() int   { return u.channels }
func (u *Upmixer) BufSize() int    { return u.src.BufSize() * u.channels / u.src.Channels() }
func (u *Upmixer) Close() error    { return u.src.Close() }

func (u *Upmixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%u.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	in := u.src.Channels()
	if in == u.channels {
		return u.src.ReadSamples(dst)
	}

	frames := len(dst) / u.channels
	u.tmp = grow(u.tmp, frames*in)
	n, err := u.src.ReadSamples(u.tmp)
	got := n / in

	for f := range got {
		for c := range u.channels {
			dst[f*u.channels+c] = u.tmp[f*in+c%in]
		}
	}

	return got * u.channels, err
}

// Adapt returns src remixed to channels. Sources already at that count are
// returned unchanged; other layouts are folded to mono first.
func Adapt(src Source, channels int) Source {
	switch in := src.Channels(); {
	case in == channels:
		return src
	case channels == 1:
		return NewMonoMixer(src)
	case in == 1:
		return NewUpmixer(src, channels)
	default:
		return NewUpmixer(NewMonoMixer(src), channels)
	}
}

func grow(buf []float32, n int) []float32 {
	if cap(buf) < n {
		return make([]float32, n)
	}
	return buf[:n]
}
