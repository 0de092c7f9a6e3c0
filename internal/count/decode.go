package count

import (
	"errors"
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// DecodePolicy selects how bytes that are not valid UTF-8 are handled
// while reading.
type DecodePolicy int

const (
	// DecodeIgnore silently drops invalid bytes. This is the policy used
	// when scanning real trees: a count is always produced.
	DecodeIgnore DecodePolicy = iota
	// DecodeReplace substitutes U+FFFD for each invalid byte.
	DecodeReplace
	// DecodeStrict fails the read on the first invalid byte.
	DecodeStrict
)

// ErrInvalidUTF8 is returned by reads under DecodeStrict when the input
// contains a byte sequence that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 byte sequence")

// Reader wraps r so that every byte read from the result has already been
// filtered according to the policy.
func (p DecodePolicy) Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, invalidByteFilter{policy: p})
}

// invalidByteFilter is a transform.Transformer that copies well-formed
// UTF-8 through unchanged and applies a DecodePolicy to everything else.
type invalidByteFilter struct {
	policy DecodePolicy
}

func (invalidByteFilter) Reset() {}

func (f invalidByteFilter) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				// Might be a rune split across reads; ask for more input.
				return nDst, nSrc, transform.ErrShortSrc
			}
			switch f.policy {
			case DecodeStrict:
				return nDst, nSrc, ErrInvalidUTF8
			case DecodeReplace:
				if nDst+utf8.UTFMax > len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nDst += utf8.EncodeRune(dst[nDst:], utf8.RuneError)
				nSrc++
			default:
				nSrc++
			}
			continue
		}

		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}
