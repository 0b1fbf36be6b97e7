package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd.PersistentFlags())
	resetFlags(solveCmd.Flags())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	words := writeFile(t, t.TempDir(), "words", "crane\nslate\nreact\n")

	out, err := execute(t, "solve", "CRANE", "--words", words, "--first")
	require.NoError(t, err)
	assert.Contains(t, out, "🟩🟩🟩🟩🟩 crane 3")

	out, err = execute(t, "solve", "zzzzz", "--words", words, "--first")
	assert.Error(t, err)
	assert.Contains(t, out, "not in")
}

func TestDailyCommand(t *testing.T) {
	dir := t.TempDir()

	manifest := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 1, "solution": "react", "days_since_launch": 1580}`)
	}))
	defer manifest.Close()

	var posted []string
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p struct {
			Content string `json:"content"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		posted = append(posted, p.Content)
	}))
	defer hook.Close()

	cfgPath := writeFile(t, dir, "bot.yaml", fmt.Sprintf(`
words_file: %s
robot_file: %s
webhook_file: %s
manifest_url: %s
seed: 7
`,
		writeFile(t, dir, "words", "crane\nslate\nreact\ntrace\n"),
		writeFile(t, dir, "robot", "beep boop\n"),
		writeFile(t, dir, "webhook", hook.URL+"\n"),
		manifest.URL,
	))

	out, err := execute(t, "daily", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "attempt sent to 1 webhook URLs")
	require.Len(t, posted, 1)
	assert.Contains(t, posted[0], "beep boop\n\n**Wordle 1580**\n")
	assert.Contains(t, posted[0], "||`react` (1 in ")
}
