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
	assert.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password")
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(&out, "Password")
	assert.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"unix newlines, stop on empty line", "A\nB\n\nC\n", []string{"A", "B"}},
		{"windows CRLF", "A\r\nB\r\n\r\n", []string{"A", "B"}},
		{"immediate blank line", "\n", []string{}},
		{"EOF without trailing blank line", "A\nB", []string{"A", "B"}},
		{"spaces are preserved", " B \n\n", []string{" B "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetMultiline(rdr(tc.input), "Serials", &out)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, confirm(rdr("y\n"), "Delete?", &out))
	assert.True(t, confirm(rdr("YES\n"), "Delete?", &out))
	assert.False(t, confirm(rdr("\n"), "Delete?", &out))
	assert.False(t, confirm(rdr("nope\n"), "Delete?", &out))
}

func TestOptionalBool(t *testing.T) {
	var out bytes.Buffer

	v, err := optionalBool(rdr("\n"), "Sold?", &out)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = optionalBool(rdr("y\n"), "Sold?", &out)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, *v)

	v, err = optionalBool(rdr("n\n"), "Sold?", &out)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.False(t, *v)

	_, err = optionalBool(rdr("maybe\n"), "Sold?", &out)
	assert.Error(t, err)
}
