//go:build !windows

package stderr

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_ForwardsLines(t *testing.T) {
	var (
		mu    sync.Mutex
		lines []string
	)
	c, err := Start(func(line string) {
		mu.Lock()
		lines = append(lines, line)
		mu.Unlock()
	})
	require.NoError(t, err)

	fmt.Fprintln(os.Stderr, "first warning")
	fmt.Fprintln(os.Stderr, "   ")
	fmt.Fprintln(os.Stderr, "  second warning  ")
	c.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first warning", "second warning"}, lines)
}
