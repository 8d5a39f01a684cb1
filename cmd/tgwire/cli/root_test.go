package cli

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgwire/internal/testutil"
	"github.com/prilive-com/tgwire/tg"
)

func TestDecodeCommand(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		out, err := execute(t, "", "decode", "-t", "update", "--encode=false", "testdata/fixtures/private_text.json")
		require.NoError(t, err)
		assert.Contains(t, out, "✓ update")
		assert.Contains(t, out, "variants:   tg.MessageUpdate")
		assert.Contains(t, out, "shapes:     UserTextMessage")
		assert.Contains(t, out, "round trip: exact")
		assert.NotContains(t, out, "encoded:")
	})

	t.Run("stdin with encode", func(t *testing.T) {
		out, err := execute(t, `{"id":-4001,"type":"group","title":"friends"}`, "decode", "-t", "chat", "--encode")
		require.NoError(t, err)
		assert.Contains(t, out, "variants:   tg.GroupChat")
		assert.Contains(t, out, `encoded:    {"type":"group","id":-4001,"title":"friends"}`)
	})

	t.Run("decode failure", func(t *testing.T) {
		out, err := execute(t, `{"update_id":1,"story":{}}`, "decode", "-t", "update", "--encode=false", "-")
		require.ErrorIs(t, err, tg.ErrUnresolvableVariant)
		assert.Contains(t, out, "✗ ")
		assert.Contains(t, out, "kind: unresolvable_variant")
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := execute(t, "{}", "decode", "-t", "sticker")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown target")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "", "decode", "-t", "update", "testdata/none.json")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestTargetsCommand(t *testing.T) {
	out, err := execute(t, "", "targets")
	require.NoError(t, err)
	for _, name := range targetNames() {
		assert.Contains(t, out, name)
	}
}

func TestCheckCommand(t *testing.T) {
	t.Run("passing suite with report", func(t *testing.T) {
		dir := t.TempDir()
		out, err := execute(t, "", "check", "--report-dir", dir, "testdata/suite.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "Status: PASSED")
		assert.Contains(t, out, "Cases: 7/7 passed")

		files, err := filepath.Glob(filepath.Join(dir, "report-core-*.json"))
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("failing suite", func(t *testing.T) {
		out, err := execute(t, "", "check", "--report-dir", "", "testdata/suite.yaml", "testdata/failing.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 case(s) failed")
		assert.Contains(t, out, "Status: PASSED")
		assert.Contains(t, out, "Status: FAILED")
	})

	t.Run("invalid suite", func(t *testing.T) {
		_, err := execute(t, "", "check", "--report-dir", "", "testdata/fixtures/private_text.json")
		require.Error(t, err)
	})
}

func TestPingCommand(t *testing.T) {
	noEnvFile := filepath.Join(t.TempDir(), ".env")

	t.Run("success", func(t *testing.T) {
		server := testutil.NewMockServer(t)
		server.OnAPI("getMe", func(w http.ResponseWriter, r *http.Request) {
			testutil.ReplyBotSelf(w)
		})
		t.Setenv("TELEGRAM_BOT_TOKEN", testutil.TestToken)
		t.Setenv("TELEGRAM_API_BASE_URL", server.BaseURL())
		t.Setenv("MAX_RETRIES", "0")

		out, err := execute(t, "", "ping", "--env-file", noEnvFile)
		require.NoError(t, err)
		assert.Contains(t, out, "✓ @testbot")
		assert.Contains(t, out, "can join groups:     true")

		cap := server.LastCapture()
		require.NotNil(t, cap)
		cap.AssertPath(t, testutil.APIPath("getMe"))
	})

	t.Run("token from env file", func(t *testing.T) {
		server := testutil.NewMockServer(t)
		server.OnAPI("getMe", func(w http.ResponseWriter, r *http.Request) {
			testutil.ReplyError(w, 401, "Unauthorized", 0)
		})
		// t.Setenv restores the variable afterwards; unsetting it lets the file provide it.
		t.Setenv("TELEGRAM_BOT_TOKEN", "")
		require.NoError(t, os.Unsetenv("TELEGRAM_BOT_TOKEN"))
		t.Setenv("TELEGRAM_API_BASE_URL", server.BaseURL())
		t.Setenv("MAX_RETRIES", "0")

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("TELEGRAM_BOT_TOKEN=\""+testutil.TestToken+"\"\n"), 0o600))

		out, err := execute(t, "", "ping", "--env-file", envFile)
		require.ErrorIs(t, err, tg.ErrUnauthorized)
		assert.Contains(t, out, "✗ ")
		assert.Equal(t, 1, server.CaptureCount())
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "")
		require.NoError(t, os.Unsetenv("TELEGRAM_BOT_TOKEN"))

		_, err := execute(t, "", "ping", "--env-file", noEnvFile)
		require.Error(t, err)
	})
}
