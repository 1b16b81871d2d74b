package iointernal_test

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/dghost/internal/iointernal"
)

type onlyReader struct{ io.Reader }

func TestRuneReader(t *testing.T) {
	s := []rune(`7ä⌘🤘🌵q` + "\x03\x1b")
	rdr := iointernal.NewRuneReader(iotest.OneByteReader(strings.NewReader(string(s))))
	var repl []rune
	for {
		r, _, err := rdr.ReadRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		repl = append(repl, r)
	}
	assert.Equal(t, s, repl)
}

func TestRuneReaderInvalid(t *testing.T) {
	rdr := iointernal.NewRuneReader(onlyReader{strings.NewReader("\xffab")})
	r, size, err := rdr.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, utf8.RuneError, r)
	assert.Equal(t, 1, size)
	r, _, err = rdr.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
	r, _, err = rdr.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'b', r)
	_, _, err = rdr.ReadRune()
	assert.ErrorIs(t, err, io.EOF)
}
