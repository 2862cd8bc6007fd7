package sidebar

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipbar/internal/model"
)

func TestWatch_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sidebar.txt")
	require.NoError(t, os.WriteFile(path, []byte("type=book\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan []model.Link, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func(links []model.Link) {
			select {
			case updates <- links:
			default:
			}
		})
	}()

	// Keep rewriting until the watcher has started and reports the change.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	var got []model.Link
wait:
	for {
		select {
		case got = <-updates:
			if len(got) == 2 {
				break wait
			}
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte("type=book\ntype=film\n"), 0o644))
		case <-deadline:
			t.Fatal("sidebar was not reloaded")
		}
	}
	assert.Equal(t, "film", got[1].Value)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
