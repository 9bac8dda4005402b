package reader

import (
	"io"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLineReader(t *testing.T) {
	r := newLineReader(strings.NewReader("one\ntwo\n\nfour"))

	line, err := r.next()
	assert.NoError(t, err)
	assert.Equal(t, "one", string(line))

	line, err = r.next()
	assert.NoError(t, err)
	assert.Equal(t, "two", string(line))

	line, err = r.next()
	assert.NoError(t, err)
	assert.Equal(t, "", string(line))

	// The final line has no terminator.
	line, err = r.next()
	assert.NoError(t, err)
	assert.Equal(t, "four", string(line))

	_, err = r.next()
	assert.IsError(t, err, io.EOF)
}

func TestLineReaderStripsCarriageReturns(t *testing.T) {
	r := newLineReader(strings.NewReader("one\r\ntwo\r\n"))

	line, err := r.next()
	assert.NoError(t, err)
	assert.Equal(t, "one", string(line))

	line, err = r.next()
	assert.NoError(t, err)
	assert.Equal(t, "two", string(line))
}

func TestLineReaderHandlesLongLines(t *testing.T) {
	long := strings.Repeat("x", 20000)
	r := newLineReader(strings.NewReader(long + "\nshort\n"))

	line, err := r.next()
	assert.NoError(t, err)
	assert.Equal(t, long, string(line))

	line, err = r.next()
	assert.NoError(t, err)
	assert.Equal(t, "short", string(line))
}

func TestLineReaderReusesItsBuffer(t *testing.T) {
	r := newLineReader(strings.NewReader("first\nsecond\n"))

	first, err := r.next()
	assert.NoError(t, err)
	assert.Equal(t, "first", string(first))

	// The borrow is only valid until the next call.
	second, err := r.next()
	assert.NoError(t, err)
	assert.Equal(t, "second", string(second))
	assert.NotEqual(t, "first", string(first))
}
