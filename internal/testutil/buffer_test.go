package testutil

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncBuffer(t *testing.T) {
	var buf SyncBuffer
	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = fmt.Fprintf(&buf, "line-%d\n", i)
		}()
	}
	wg.Wait()

	for i := range 10 {
		assert.True(t, buf.Contains(fmt.Sprintf("line-%d\n", i)))
	}
	assert.False(t, buf.Contains("line-10"))
}
