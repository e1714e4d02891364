package app

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App with debug logging that reads input and
// writes results to in-memory buffers. Logs are printed on cleanup when
// DAYSBETWEEN_TEST_LOGS=true.
func SetupAppTest(t *testing.T, appConfig *AppConfig, input string) (*App, *SafeBuffer, *SafeBuffer, error) {
	t.Helper()

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp, err := NewApp(bytes.NewBufferString(input), out, logs, appConfig)

	t.Cleanup(func() {
		if os.Getenv("DAYSBETWEEN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs, err
}
