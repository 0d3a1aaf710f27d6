package adminlib

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-admin/core/tablesort"
	"library-admin/pkg/config"
)

func newBackend(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var listCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/members", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"MemberID": 1, "Name": "Zoe", "Email": "zoe@example.com", "Phone": "555"},
			{"MemberID": 2, "Name": "Ann", "Email": "ann@example.com", "Phone": "556"},
		})
	})
	mux.HandleFunc("GET /api/members/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Member not found"})
	})
	mux.HandleFunc("POST /api/members", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Member added successfully", "id": 3})
	})
	mux.HandleFunc("DELETE /api/members/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Cannot delete member with active borrowings"})
	})
	mux.HandleFunc("GET /api/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("GET /api/books/duplicates", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	mux.HandleFunc("GET /api/membershiptypes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"MembershipTypeID": 1, "TypeName": "Gold", "DurationMonths": 12, "Fee": 50}]`))
	})
	mux.HandleFunc("GET /api/fines", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"FineID": 1, "MemberName": "Zoe", "Amount": 2.5, "Paid": true},
			{"FineID": 2, "MemberName": "Ann", "Amount": 4, "Paid": false}
		]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &listCalls
}

func newTestClient(t *testing.T, server *httptest.Server, opts ...Option) *Client {
	t.Helper()
	base := []Option{
		WithBaseURL(server.URL),
		WithTransport(server.Client().Transport),
		WithQuietMode(),
	}
	client, err := NewClient(append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(WithQuietMode())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", client.config.BaseURL)
	assert.Equal(t, 30*time.Second, client.config.Timeout)
	assert.Nil(t, client.ViewStateStore())
	assert.Len(t, client.Resources(), 8)
	assert.False(t, client.Busy())
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(WithBaseURL("not a url"))
	assert.True(t, IsConfigurationError(err))

	_, err = NewClient(WithDefaultPageSize(0))
	assert.True(t, IsConfigurationError(err))

	_, err = NewClient(WithCacheOption(CacheOption{Type: "etcd"}))
	assert.True(t, IsConfigurationError(err))
}

func TestClient_ListLoadsOnceAndSorts(t *testing.T) {
	server, listCalls := newBackend(t)
	client := newTestClient(t, server)
	ctx := context.Background()

	view, err := client.List(ctx, Members, WithSort("Name", tablesort.Ascending))
	require.NoError(t, err)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, "Ann", view.Rows[0].Cell("Name"))

	_, err = client.List(ctx, Members, WithQuery("zoe"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), listCalls.Load())

	view, err = client.List(ctx, Members, WithRefresh())
	require.NoError(t, err)
	assert.Equal(t, int32(2), listCalls.Load())
	assert.Len(t, view.Rows, 1, "the search persists until cleared")
	assert.False(t, client.Busy())
}

func TestClient_ViewStateSurvivesClients(t *testing.T) {
	server, _ := newBackend(t)
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	first := newTestClient(t, server, WithCacheOption(CacheOption{Type: CacheTypeSQLite, FilePath: path}))
	_, err := first.List(ctx, Members, WithQuery("ann"), WithRowsPerPage(25))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := newTestClient(t, server, WithCacheOption(CacheOption{Type: CacheTypeSQLite, FilePath: path}))
	view, err := second.List(ctx, Members)
	require.NoError(t, err)
	assert.Equal(t, "ann", view.Query)
	assert.Equal(t, 25, view.Pagination.PageSize)
}

func TestClient_SaveNotifies(t *testing.T) {
	server, _ := newBackend(t)
	var seen []Notification
	client := newTestClient(t, server, WithNotificationObserver(func(n Notification) {
		seen = append(seen, n)
	}))

	result, err := client.Save(context.Background(), Members, 0, Record{
		"Name":  "Bea",
		"Email": "bea@example.com",
		"Phone": "557",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.ID)
	require.Len(t, seen, 1)
	assert.Equal(t, "Member added successfully", seen[0].Message)
	assert.Len(t, client.Notifications(), 1)
}

func TestClient_SaveRefetchesAfterFailedReload(t *testing.T) {
	var listCalls atomic.Int32
	var failing atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/members", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"MemberID": 1, "Name": "Zoe"}]`))
	})
	mux.HandleFunc("POST /api/members", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message": "Member added successfully", "id": 2}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client := newTestClient(t, server)
	ctx := context.Background()

	_, err := client.List(ctx, Members)
	require.NoError(t, err)

	failing.Store(true)
	_, err = client.Save(ctx, Members, 0, Record{"Name": "Bea", "Email": "bea@example.com", "Phone": "557"})
	require.NoError(t, err, "the save succeeded even though the reload did not")
	require.Equal(t, int32(2), listCalls.Load())

	failing.Store(false)
	view, err := client.List(ctx, Members)
	require.NoError(t, err)
	assert.Equal(t, int32(3), listCalls.Load(), "a failed reload is retried on the next List")
	assert.Len(t, view.Rows, 1)
}

func TestClient_ListWithStatus(t *testing.T) {
	server, _ := newBackend(t)
	client := newTestClient(t, server)

	view, err := client.List(context.Background(), Fines, WithStatus("unpaid"))

	require.NoError(t, err)
	assert.Equal(t, "unpaid", view.Status)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Ann", view.Rows[0].Cell("MemberName"))
}

func TestClient_Options(t *testing.T) {
	server, _ := newBackend(t)
	client := newTestClient(t, server)
	ctx := context.Background()

	options, err := client.Options(ctx, Members, "MembershipTypeID")
	require.NoError(t, err)
	assert.Equal(t, []FieldOption{{Value: 1, Label: "Gold (12 months, $50.00)"}}, options)

	_, err = client.Options(ctx, Members, "Email")
	assert.True(t, IsNotFoundError(err))
}

func TestClient_SaveRejectsInvalidForm(t *testing.T) {
	server, _ := newBackend(t)
	client := newTestClient(t, server)

	_, err := client.Save(context.Background(), Members, 0, Record{"Name": "Bea", "Email": "not-an-email"})

	assert.True(t, IsValidationError(err))
}

func TestClient_ErrorsAreClassified(t *testing.T) {
	server, _ := newBackend(t)
	client := newTestClient(t, server)
	ctx := context.Background()

	_, err := client.Get(ctx, Members, 9)
	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Member not found")

	_, err = client.Delete(ctx, Members, 1, nil)
	assert.True(t, IsNetworkError(err))
	assert.Contains(t, err.Error(), "Cannot delete member with active borrowings")

	_, err = client.Dashboard(ctx)
	assert.True(t, IsNetworkError(err))

	_, err = client.List(ctx, "dragons")
	assert.True(t, IsNotFoundError(err))
}

func TestClient_DeleteDeclined(t *testing.T) {
	server, _ := newBackend(t)
	client := newTestClient(t, server)

	var prompt string
	deleted, err := client.Delete(context.Background(), Members, 1, func(p string) bool {
		prompt = p
		return false
	})

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, "Are you sure you want to delete this member?", prompt)
}

func TestClient_Duplicates(t *testing.T) {
	server, _ := newBackend(t)
	client := newTestClient(t, server)

	groups, err := client.Duplicates(context.Background())

	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Equal(t, "No duplicate books found", client.Notifications()[0].Message)
}

func TestClient_Closed(t *testing.T) {
	server, _ := newBackend(t)
	client := newTestClient(t, server)
	require.NoError(t, client.Close())

	_, err := client.List(context.Background(), Members)
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestFromConfig(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend:5000")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("VIEWSTATE_TYPE", "memory")
	cfg, err := config.Parse()
	require.NoError(t, err)

	client, err := NewClient(FromConfig(cfg), WithQuietMode())
	require.NoError(t, err)

	assert.Equal(t, "http://backend:5000", client.config.BaseURL)
	assert.Equal(t, 25, client.config.PageSize)
	assert.NotNil(t, client.ViewStateStore())
}
