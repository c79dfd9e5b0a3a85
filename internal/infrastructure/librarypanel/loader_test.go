package librarypanel_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	repomocks "github.com/grafana/grafana-sub060/internal/domain/repository/mocks"
	"github.com/grafana/grafana-sub060/internal/infrastructure/cache"
	"github.com/grafana/grafana-sub060/internal/infrastructure/librarypanel"
	"github.com/grafana/grafana-sub060/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func storedPanel() *entity.LibraryPanel {
	return &entity.LibraryPanel{
		UID:     "lib-1",
		Name:    "Shared CPU",
		Version: 4,
		Model:   &entity.Panel{Type: "timeseries", Title: "CPU"},
	}
}

func TestLoader_SharesConcurrentFetches(t *testing.T) {
	ctx := testContext()

	started := make(chan struct{})
	release := make(chan struct{})
	repo := repomocks.NewMockLibraryPanelRepository(t)
	repo.EXPECT().GetLibraryPanel(mock.Anything, "lib-1").
		RunAndReturn(func(context.Context, string) (*entity.LibraryPanel, error) {
			close(started)
			<-release
			return storedPanel(), nil
		}).Once()

	loader := librarypanel.NewLoader(repo, cache.NewLRU[string, *entity.LibraryPanel](8, time.Hour))

	const callers = 5
	var wg sync.WaitGroup
	results := make([]*entity.LibraryPanel, callers)
	errs := make([]error, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = loader.LoadLibraryPanel(ctx, "lib-1")
	}()
	<-started
	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = loader.LoadLibraryPanel(ctx, "lib-1")
		}(i)
	}
	close(release)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, "CPU", results[i].Model.Title)
	}
	assert.NotSame(t, results[0].Model, results[1].Model, "callers get their own copy")
}

func TestLoader_ServesFromCache(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockLibraryPanelRepository(t)
	repo.EXPECT().GetLibraryPanel(mock.Anything, "lib-1").Return(storedPanel(), nil).Once()

	loader := librarypanel.NewLoader(repo, cache.NewLRU[string, *entity.LibraryPanel](8, 0))

	first, err := loader.LoadLibraryPanel(ctx, "lib-1")
	require.NoError(t, err)
	first.Model.Title = "mutated"

	second, err := loader.LoadLibraryPanel(ctx, "lib-1")
	require.NoError(t, err)
	assert.Equal(t, "CPU", second.Model.Title)
}

func TestLoader_InvalidateRefetches(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockLibraryPanelRepository(t)
	repo.EXPECT().GetLibraryPanel(mock.Anything, "lib-1").Return(storedPanel(), nil).Times(2)

	loader := librarypanel.NewLoader(repo, cache.NewLRU[string, *entity.LibraryPanel](8, 0))

	_, err := loader.LoadLibraryPanel(ctx, "lib-1")
	require.NoError(t, err)
	loader.Invalidate("lib-1")
	_, err = loader.LoadLibraryPanel(ctx, "lib-1")
	require.NoError(t, err)
}

func TestLoader_WrapsErrors(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockLibraryPanelRepository(t)
	repo.EXPECT().GetLibraryPanel(mock.Anything, "gone").Return(nil, entity.ErrNotFound)

	loader := librarypanel.NewLoader(repo, nil)
	_, err := loader.LoadLibraryPanel(ctx, "gone")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLoader_CallerCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	repo := repomocks.NewMockLibraryPanelRepository(t)
	repo.EXPECT().GetLibraryPanel(mock.Anything, "lib-1").
		RunAndReturn(func(context.Context, string) (*entity.LibraryPanel, error) {
			close(started)
			<-release
			return storedPanel(), nil
		}).Once()

	loader := librarypanel.NewLoader(repo, nil)
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := loader.LoadLibraryPanel(ctx, "lib-1")
	assert.ErrorIs(t, err, context.Canceled)

	<-started
	close(release)
}
