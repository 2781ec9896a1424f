package moderation

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/errors"
)

func TestModerator_Censor(t *testing.T) {
	dictionary := []string{"badger", "snake", "mushroom"}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean line passes untouched",
			input:    "hello everyone, ready for class?",
			expected: "hello everyone, ready for class?",
		},
		{
			name:     "plain match is masked",
			input:    "look, a badger",
			expected: "look, a ******",
		},
		{
			name:     "case variants are caught",
			input:    "BADGER badger BaDgEr",
			expected: "****** ****** ******",
		},
		{
			name:     "leet-speak substitutions are caught",
			input:    "b4dger and 5n@ke",
			expected: "****** and *****",
		},
		{
			name:     "spacing the word out does not help",
			input:    "m u s h r o o m",
			expected: "***************",
		},
		{
			name:     "punctuation noise inside the word does not help",
			input:    "bad.ger",
			expected: "*******",
		},
		{
			name:     "surrounding text is preserved",
			input:    "the snake ate the mushroom",
			expected: "the ***** ate the ********",
		},
		{
			name:     "empty line",
			input:    "",
			expected: "",
		},
	}

	req := require.New(t)
	moderator, err := NewModerator(dictionary, '*', logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, moderator.Censor(tt.input))
		})
	}
}

func TestNewModerator_EmptyDictionary(t *testing.T) {
	req := require.New(t)

	_, err := NewModerator(nil, '*', logs.GetLoggerFromLevel(slog.LevelDebug))

	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestFromFile(t *testing.T) {
	req := require.New(t)

	// Given a dictionary file with comments and blank lines
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# banned words\nbadger\n\n  snake  \n"
	req.NoError(os.WriteFile(path, []byte(content), 0o644))

	// When the moderator is loaded from it
	moderator, err := FromFile(path, '*', logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	// Then only the real entries censor
	req.Equal("a ****** and a *****", moderator.Censor("a badger and a snake"))
	req.Equal("# banned words", moderator.Censor("# banned words"))
}

func TestFromFile_MissingFile(t *testing.T) {
	req := require.New(t)

	_, err := FromFile(filepath.Join(t.TempDir(), "absent.txt"), '*', logs.GetLoggerFromLevel(slog.LevelDebug))

	req.Error(err)
}

func TestFromFile_OnlyComments(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "words.txt")
	req.NoError(os.WriteFile(path, []byte("# nothing here\n\n"), 0o644))

	_, err := FromFile(path, '*', logs.GetLoggerFromLevel(slog.LevelDebug))

	req.ErrorIs(err, errors.ErrEmptyWords)
}
