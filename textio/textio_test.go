package textio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/textio"
)

func TestReadAllUTF8Passthrough(t *testing.T) {
	got, err := textio.ReadAll(strings.NewReader("héllo\nwörld\n"), "")
	require.NoError(t, err)
	require.Equal(t, "héllo\nwörld\n", got)

	got, err = textio.ReadAll(strings.NewReader("same"), "UTF-8")
	require.NoError(t, err)
	require.Equal(t, "same\n", got)
}

func TestReadAllAppendsFinalNewline(t *testing.T) {
	got, err := textio.ReadAll(strings.NewReader("no newline"), "")
	require.NoError(t, err)
	require.Equal(t, "no newline\n", got)

	got, err = textio.ReadAll(strings.NewReader(""), "")
	require.NoError(t, err)
	require.Equal(t, "\n", got)
}

func TestReadAllConvertsLatin1(t *testing.T) {
	// 0xE9 is é in ISO-8859-1.
	got, err := textio.ReadAll(strings.NewReader("caf\xe9"), "ISO-8859-1")
	require.NoError(t, err)
	require.Equal(t, "café\n", got)
}

func TestReadAllUnknownCharset(t *testing.T) {
	_, err := textio.ReadAll(strings.NewReader("x"), "no-such-charset")
	require.Error(t, err)
	var eerr *layout.EncodingError
	require.ErrorAs(t, err, &eerr)
}
