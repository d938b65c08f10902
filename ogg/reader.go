// SPDX-License-Identifier: EPL-2.0

package ogg

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	gogg "github.com/thesyncim/gopus/container/ogg"
)

// Page is a parsed Ogg page.
type Page = gogg.Page

// Reader reads pages from an Ogg bitstream, verifying each page's CRC.
type Reader struct {
	r   *bufio.Reader
	buf []byte
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:   bufio.NewReader(r),
		buf: make([]byte, 0, headerSize+maxSegments+maxSegments*255),
	}
}

// Next returns the next page. It returns io.EOF at a clean page boundary and
// io.ErrUnexpectedEOF when the input stops inside a page.
func (r *Reader) Next() (*Page, error) {
	buf := r.buf[:headerSize]
	if _, err := io.ReadFull(r.r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading page header: %w", err)
	}

	if string(buf[:4]) != "OggS" {
		return nil, gogg.ErrInvalidPage
	}

	nseg := int(buf[26])
	buf = buf[:headerSize+nseg]
	if _, err := io.ReadFull(r.r, buf[headerSize:]); err != nil {
		return nil, fmt.Errorf("reading segment table: %w", unexpected(err))
	}

	bodyLen := 0
	for _, v := range buf[headerSize:] {
		bodyLen += int(v)
	}

	start := len(buf)
	buf = buf[:start+bodyLen]
	if _, err := io.ReadFull(r.r, buf[start:]); err != nil {
		return nil, fmt.Errorf("reading page body: %w", unexpected(err))
	}
	r.buf = buf[:0]

	page, _, err := gogg.ParsePage(buf)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	return page, nil
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
