package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	require.NoError(t, InitLogger("debug", "", ""))
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	require.Error(t, InitLogger("loud", "", ""))

	dir := t.TempDir()
	require.NoError(t, InitLogger("warn", dir, "keytool.log"))
	logrus.Warn("rotated")

	_, err := os.Lstat(filepath.Join(dir, "keytool.log"))
	require.NoError(t, err)
}
