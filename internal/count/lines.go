package count

import (
	"bytes"
	"io"
)

// readBufferSize is the chunk size used while counting. Large enough that
// typical source files are consumed in a handful of reads.
const readBufferSize = 32 * 1024

// Lines reads r to EOF and returns the number of lines in the decoded
// stream. A line is a newline-terminated record; a non-empty stream whose
// last line has no trailing newline still counts that final line. Empty
// input, or input the policy decodes to nothing, counts zero.
func Lines(r io.Reader, policy DecodePolicy) (int, error) {
	decoded := policy.Reader(r)
	buf := make([]byte, readBufferSize)

	lines := 0
	lastByte := byte('\n')
	for {
		n, err := decoded.Read(buf)
		if n > 0 {
			lines += bytes.Count(buf[:n], []byte{'\n'})
			lastByte = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if lastByte != '\n' {
		lines++
	}
	return lines, nil
}
