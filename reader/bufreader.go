package reader

import (
	"bufio"
	"io"
)

// lineReader yields one logical line at a time with the trailing line
// terminator stripped. The returned slice borrows a single growable buffer
// that is reused across lines; it is only valid until the next call.
type lineReader struct {
	reader *bufio.Reader
	buf    []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		reader: bufio.NewReader(r),
		buf:    make([]byte, 0, 1024),
	}
}

// next returns the next line, or io.EOF once the input is exhausted. EOF
// is a distinct outcome, not a read failure.
func (l *lineReader) next() ([]byte, error) {
	l.buf = l.buf[:0]

	for {
		fragment, err := l.reader.ReadSlice('\n')
		l.buf = append(l.buf, fragment...)

		switch err {
		case nil:
			return trimLineEnding(l.buf), nil
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if len(l.buf) == 0 {
				return nil, io.EOF
			}
			// Final line without a terminator.
			return trimLineEnding(l.buf), nil
		default:
			return nil, err
		}
	}
}

func trimLineEnding(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
