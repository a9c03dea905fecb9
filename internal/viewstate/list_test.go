package viewstate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pokedex-pocket/internal/domain"
)

const testDebounce = 10 * time.Millisecond

type mockListLoader struct {
	GetListFunc func(ctx context.Context, offset, limit int) (domain.ListPage, error)
	SearchFunc  func(ctx context.Context, query string) ([]domain.ListItem, error)

	mu       sync.Mutex
	lists    int
	searches []string
}

func (m *mockListLoader) GetList(ctx context.Context, offset, limit int) (domain.ListPage, error) {
	m.mu.Lock()
	m.lists++
	m.mu.Unlock()
	return m.GetListFunc(ctx, offset, limit)
}

func (m *mockListLoader) Search(ctx context.Context, query string) ([]domain.ListItem, error) {
	m.mu.Lock()
	m.searches = append(m.searches, query)
	m.mu.Unlock()
	return m.SearchFunc(ctx, query)
}

func (m *mockListLoader) searchCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.searches...)
}

func (m *mockListLoader) listCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lists
}

func items(names ...string) []domain.ListItem {
	out := make([]domain.ListItem, 0, len(names))
	for _, n := range names {
		out = append(out, domain.NewListItem(n, "https://pokeapi.co/api/v2/pokemon/"+n+"/"))
	}
	return out
}

func catalogLoader() *mockListLoader {
	all := items("bulbasaur", "pichu", "pikachu")
	return &mockListLoader{
		GetListFunc: func(context.Context, int, int) (domain.ListPage, error) {
			return domain.ListPage{Count: len(all), Results: all}, nil
		},
		SearchFunc: func(_ context.Context, query string) ([]domain.ListItem, error) {
			var out []domain.ListItem
			for _, it := range all {
				if domain.ContainsFold(it.Name, query) {
					out = append(out, it)
				}
			}
			return out, nil
		},
	}
}

func names(list []domain.ListItem) []string {
	out := make([]string, 0, len(list))
	for _, it := range list {
		out = append(out, it.Name)
	}
	return out
}

func TestListState_LoadInitial(t *testing.T) {
	t.Parallel()

	var gotOffset, gotLimit int
	loader := catalogLoader()
	inner := loader.GetListFunc
	loader.GetListFunc = func(ctx context.Context, offset, limit int) (domain.ListPage, error) {
		gotOffset, gotLimit = offset, limit
		return inner(ctx, offset, limit)
	}
	s := NewListState(loader)

	s.LoadInitial(context.Background())

	snap := s.Snapshot()
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, CatalogPageSize, gotLimit)
	assert.Equal(t, []string{"bulbasaur", "pichu", "pikachu"}, names(snap.Items))
	assert.Equal(t, snap.All, snap.Items)
	assert.False(t, snap.IsLoading)
	assert.NoError(t, snap.Err)
}

func TestListState_LoadFailure(t *testing.T) {
	t.Parallel()

	loader := &mockListLoader{GetListFunc: func(context.Context, int, int) (domain.ListPage, error) {
		return domain.ListPage{}, &domain.ServerError{StatusCode: 500}
	}}
	s := NewListState(loader)

	s.LoadInitial(context.Background())

	snap := s.Snapshot()
	assert.Equal(t, 500, domain.StatusCodeOf(snap.Err))
	assert.Empty(t, snap.Items)
	assert.False(t, snap.IsLoading)
}

func TestListState_LoadIgnoredWhileInFlight(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	entered := make(chan struct{})
	loader := &mockListLoader{GetListFunc: func(context.Context, int, int) (domain.ListPage, error) {
		close(entered)
		<-release
		return domain.ListPage{}, nil
	}}
	s := NewListState(loader)

	done := make(chan struct{})
	go func() {
		s.LoadInitial(context.Background())
		close(done)
	}()

	<-entered
	s.LoadInitial(context.Background())
	close(release)
	<-done

	assert.Equal(t, 1, loader.listCalls())
}

func TestListState_RefreshClearsFirst(t *testing.T) {
	t.Parallel()

	loader := catalogLoader()
	s := NewListState(loader)
	s.LoadInitial(context.Background())

	var seen []ListSnapshot
	s.OnChange(func(snap ListSnapshot) { seen = append(seen, snap) })
	s.Refresh(context.Background())

	require.NotEmpty(t, seen)
	assert.Empty(t, seen[0].Items)
	assert.Empty(t, seen[0].All)
	assert.Len(t, s.Snapshot().Items, 3)
	assert.Equal(t, 2, loader.listCalls())
}

func TestListState_SearchIsDebounced(t *testing.T) {
	t.Parallel()

	loader := catalogLoader()
	s := NewListState(loader, WithDebounce(testDebounce))
	defer s.Close()
	ctx := context.Background()
	s.LoadInitial(ctx)

	s.SetSearchText(ctx, "p")
	s.SetSearchText(ctx, "pi")
	s.SetSearchText(ctx, "pik")
	assert.Equal(t, "pik", s.Snapshot().SearchText)

	require.Eventually(t, func() bool {
		return len(loader.searchCalls()) == 1 && !s.Snapshot().IsSearching
	}, time.Second, time.Millisecond)

	assert.Equal(t, []string{"pik"}, loader.searchCalls())
	assert.Equal(t, []string{"pikachu"}, names(s.Snapshot().Items))
}

func TestListState_SearchDistinctUntilChanged(t *testing.T) {
	t.Parallel()

	loader := catalogLoader()
	s := NewListState(loader, WithDebounce(testDebounce))
	defer s.Close()
	ctx := context.Background()

	s.SetSearchText(ctx, "pi")
	require.Eventually(t, func() bool { return len(loader.searchCalls()) == 1 }, time.Second, time.Millisecond)

	// Typing away and back inside one debounce window settles on the same text.
	s.SetSearchText(ctx, "pik")
	s.SetSearchText(ctx, "pi")
	time.Sleep(5 * testDebounce)

	assert.Equal(t, []string{"pi"}, loader.searchCalls())
}

func TestListState_EmptySearchRestoresCatalog(t *testing.T) {
	t.Parallel()

	loader := catalogLoader()
	s := NewListState(loader, WithDebounce(testDebounce))
	defer s.Close()
	ctx := context.Background()
	s.LoadInitial(ctx)

	s.SetSearchText(ctx, "pika")
	require.Eventually(t, func() bool { return len(s.Snapshot().Items) == 1 }, time.Second, time.Millisecond)

	s.SetSearchText(ctx, "")
	require.Eventually(t, func() bool { return len(s.Snapshot().Items) == 3 }, time.Second, time.Millisecond)

	assert.Equal(t, []string{"pika"}, loader.searchCalls(), "empty text never reaches search")
	assert.False(t, s.Snapshot().IsSearching)
}

func TestListState_SearchFailureAndRetry(t *testing.T) {
	t.Parallel()

	loader := catalogLoader()
	var mu sync.Mutex
	fail := true
	inner := loader.SearchFunc
	loader.SearchFunc = func(ctx context.Context, query string) ([]domain.ListItem, error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return nil, &domain.NetworkError{Cause: errors.New("offline")}
		}
		return inner(ctx, query)
	}
	s := NewListState(loader, WithDebounce(testDebounce))
	defer s.Close()
	ctx := context.Background()

	s.SetSearchText(ctx, "bulba")
	require.Eventually(t, func() bool { return s.Snapshot().Err != nil }, time.Second, time.Millisecond)
	assert.ErrorIs(t, s.Snapshot().Err, domain.ErrNetwork)
	assert.False(t, s.Snapshot().IsSearching)

	mu.Lock()
	fail = false
	mu.Unlock()

	s.Retry(ctx)
	snap := s.Snapshot()
	assert.NoError(t, snap.Err)
	assert.Equal(t, []string{"bulbasaur"}, names(snap.Items))
	assert.Equal(t, []string{"bulba", "bulba"}, loader.searchCalls())
}

func TestListState_RetryWithoutSearchReloads(t *testing.T) {
	t.Parallel()

	loader := catalogLoader()
	s := NewListState(loader)

	s.Retry(context.Background())

	assert.Equal(t, 1, loader.listCalls())
	assert.Empty(t, loader.searchCalls())
	assert.Len(t, s.Snapshot().Items, 3)
}
