package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0644))

	text, err := ReadInput(path, strings.NewReader("ignored"))
	require.NoError(t, err)
	require.Equal(t, "hello\nworld\n", text)
}

func TestReadInput_Stdin(t *testing.T) {
	for _, path := range []string{"", StdinPath} {
		t.Run("path "+path, func(t *testing.T) {
			text, err := ReadInput(path, strings.NewReader("from stdin"))
			require.NoError(t, err)
			require.Equal(t, "from stdin", text)
		})
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := ReadInput(path, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.Contains(t, err.Error(), path)
}

func TestReadInput_StdinError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ReadInput("", iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "stdin")
}

func TestReadInput_Empty(t *testing.T) {
	_, err := ReadInput("", strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyInput)

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	_, err = ReadInput(path, nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name        string
		content     []byte
		expected    string
		expectedErr error
	}{
		{
			name:     "plain utf-8",
			content:  []byte("héllo 世界\n"),
			expected: "héllo 世界\n",
		},
		{
			name:     "utf-8 bom stripped",
			content:  []byte("\xEF\xBB\xBFhi\n"),
			expected: "hi\n",
		},
		{
			name:     "utf-16 le",
			content:  []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00, '\n', 0x00},
			expected: "hi\n",
		},
		{
			name:     "utf-16 be",
			content:  []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i', 0x4E, 0x16},
			expected: "hi世",
		},
		{
			name:        "empty",
			content:     nil,
			expectedErr: ErrEmptyInput,
		},
		{
			name:        "only a bom",
			content:     []byte("\xEF\xBB\xBF"),
			expectedErr: ErrEmptyInput,
		},
		{
			name:        "invalid utf-8",
			content:     []byte("ok \xC3\x28 not ok"),
			expectedErr: ErrInvalidUTF8,
		},
		{
			name:        "invalid utf-8 after bom",
			content:     []byte("\xEF\xBB\xBF\xFF"),
			expectedErr: ErrInvalidUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := NormalizeText(tt.content)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, text)
		})
	}
}
