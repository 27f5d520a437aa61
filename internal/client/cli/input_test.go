package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, terminal bool, pw []byte, err error) {
	t.Helper()
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })
	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return pw, err }
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("s3cret"), nil)
	var out bytes.Buffer

	pw, err := GetPassword(rdr("ignored\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))
	var out bytes.Buffer

	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_Piped(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))
	var out bytes.Buffer

	pw, err := GetPassword(rdr("from-pipe\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "from-pipe", pw)
}

func TestConfirm(t *testing.T) {
	cases := map[string]bool{
		"y\n":     true,
		"YES\n":   true,
		"n\n":     false,
		"\n":      false,
		"maybe\n": false,
	}
	for in, want := range cases {
		var out bytes.Buffer
		got, err := Confirm(rdr(in), "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", in)
		assert.Equal(t, "Sure? [y/N] ", out.String())
	}

	_, err := Confirm(rdr(""), "Sure?", &bytes.Buffer{})
	require.Error(t, err)
}

func TestGetCountry(t *testing.T) {
	var out bytes.Buffer

	got, err := GetCountry(rdr("7\n"), "", &out)
	require.NoError(t, err)
	assert.Equal(t, "Japan", got)
	assert.Contains(t, out.String(), " 1. United States")

	got, err = GetCountry(rdr("france\n"), "", &out)
	require.NoError(t, err)
	assert.Equal(t, "France", got)

	got, err = GetCountry(rdr("\n"), "Canada", &out)
	require.NoError(t, err)
	assert.Equal(t, "Canada", got)

	got, err = GetCountry(rdr("Atlantis\n"), "", &out)
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", got)

	got, err = GetCountry(rdr("42\n"), "", &out)
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}
