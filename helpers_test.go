package canaries

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// writePair drops a message and its signature into dir.
func writePair(t *testing.T, dir, name, message, signature string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(message), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+SignatureSuffix), []byte(signature), 0o644))
}

// creationGap separates files so their creation times differ on any
// filesystem we are likely to run on.
func creationGap() {
	time.Sleep(20 * time.Millisecond)
}

func nullLogger() (logrus.FieldLogger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return logger, hook
}

func names(msgs []SignedMessage) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Name
	}
	return out
}
