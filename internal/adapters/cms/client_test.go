package cms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"communityroots/config"
	"communityroots/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.Client(), config.CMSConfig{BaseURL: srv.URL, APIToken: "test-token"})
}

func TestClient_PublishedEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/query/production", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.Contains(t, r.URL.Query().Get("query"), `_type == "event"`)
		fmt.Fprint(w, `{"result":[
			{"_id":"ev-1","slug":{"current":"ai-workshop"},"title":"AI Workshop","capacity":50,"status":"published"},
			{"_id":"ev-2","slug":{"current":"garden-day"},"title":"Garden Day","capacity":30,"status":"published"}
		]}`)
	})

	events, err := client.PublishedEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "ai-workshop", events[0].Slug)
	require.Equal(t, 50, events[0].Capacity)
}

func TestClient_EventBySlug(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, `"ai-workshop"`, r.URL.Query().Get("$slug"))
		fmt.Fprint(w, `{"result":{"_id":"ev-1","slug":{"current":"ai-workshop"},"title":"AI Workshop","capacity":50}}`)
	})

	event, err := client.EventBySlug(context.Background(), "ai-workshop")
	require.NoError(t, err)
	require.Equal(t, "ev-1", event.ID)
	require.Equal(t, "AI Workshop", event.Title)
}

func TestClient_EventBySlug_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":null}`)
	})

	_, err := client.EventBySlug(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_BlogPostBySlug_ResolvesAuthor(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"_id":"post-1","slug":{"current":"spring-update"},"title":"Spring Update","author":{"name":"Maria","role":"Director"}}}`)
	})

	post, err := client.BlogPostBySlug(context.Background(), "spring-update")
	require.NoError(t, err)
	require.NotNil(t, post.Author)
	require.Equal(t, "Maria", post.Author.Name)
}

func TestClient_Vlogs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":[{"_id":"vlog-1","title":"Harvest Recap","videoUrl":"https://video.example/1"}]}`)
	})

	vlogs, err := client.Vlogs(context.Background())
	require.NoError(t, err)
	require.Len(t, vlogs, 1)
	require.Equal(t, "https://video.example/1", vlogs[0].VideoURL)
}

func TestClient_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.PublishedEvents(context.Background())
	require.Error(t, err)
	require.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestClient_Ping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":1}`)
	})
	require.NoError(t, client.Ping(context.Background()))
}
