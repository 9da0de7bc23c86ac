package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// newTestClient wires a facade to an httptest server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&evergreen.Config{APIServer: server.URL})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a server", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		assert.ErrorIs(t, err, evergreen.ErrAPIServerRequired)

		_, err = New(&evergreen.Config{APIServer: "   "})
		assert.ErrorIs(t, err, evergreen.ErrAPIServerRequired)
	})
}

func TestNormalizeServer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"https://evergreen.example.com", "https://evergreen.example.com"},
		{"https://evergreen.example.com/", "https://evergreen.example.com"},
		{"evergreen.example.com", "https://evergreen.example.com"},
		{" http://localhost:9090/ ", "http://localhost:9090"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, normalizeServer(test.in), test.in)
	}
}

func TestTaskByID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v2/tasks/t1", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("fetch_all_executions"))
		_, _ = w.Write([]byte(`{"task_id": "t1", "execution": 1, "previous_executions": [{"task_id": "t1", "execution": 0}]}`))
	})

	task, err := client.TaskByID(context.Background(), "t1", true)
	require.NoError(t, err)
	assert.Equal(t, "t1", task.TaskID)
	require.Len(t, task.PreviousExecutions, 1)
	assert.Equal(t, 0, task.PreviousExecutions[0].Execution)
}

func TestVersionTraversalUsesTheSameClient(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v2/versions/v1":
			_, _ = w.Write([]byte(`{"version_id": "v1"}`))
		case "/rest/v2/versions/v1/builds":
			_, _ = w.Write([]byte(`[{"_id": "b1"}, {"_id": "b2"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	version, err := client.VersionByID(context.Background(), "v1")
	require.NoError(t, err)

	builds, err := version.Builds(context.Background())
	require.NoError(t, err)
	require.Len(t, builds, 2)
	assert.Equal(t, "b1", builds[0].ID)
}

func TestVersionsByProject(t *testing.T) {
	t.Parallel()

	t.Run("defaults the requester to mainline commits", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v2/projects/mci/versions", r.URL.Path)
			assert.Equal(t, "gitter_request", r.URL.Query().Get("requester"))
			_, _ = w.Write([]byte(`[{"version_id": "v1"}]`))
		})

		versions, err := client.VersionsByProject(context.Background(), "mci", "").All()
		require.NoError(t, err)
		require.Len(t, versions, 1)
		assert.Equal(t, "v1", versions[0].VersionID)
	})

	t.Run("passes an explicit requester through", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "patch_request", r.URL.Query().Get("requester"))
			_, _ = w.Write([]byte(`[]`))
		})

		versions, err := client.VersionsByProject(context.Background(), "mci", evergreen.RequesterPatch).All()
		require.NoError(t, err)
		assert.Empty(t, versions)
	})
}

func TestPatchesByProject(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v2/projects/mci/patches", r.URL.Path)
		if r.URL.Query().Get("start_at") != "" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"patch_id": "p1", "create_time": "2020-05-01T12:00:00.000Z"}]`))
	})

	patches, err := client.PatchesByProject(context.Background(), "mci", nil).All()
	require.NoError(t, err)
	require.Len(t, patches, 1)
	assert.Equal(t, "p1", patches[0].PatchID)
}

func TestConfigurePatch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v2/patches/p1/configure", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "retry lint", body["description"])
		assert.Equal(t, []any{
			map[string]any{"id": "ubuntu2204", "tasks": []any{"lint", "compile"}},
		}, body["variants"])

		_, _ = w.Write([]byte(`{}`))
	})

	err := client.ConfigurePatch(context.Background(), "p1", []evergreen.VariantsTasks{
		{Name: "ubuntu2204", Tasks: []string{"lint", "compile"}},
	}, "retry lint")
	require.NoError(t, err)
}

func TestConfigureTask(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v2/tasks/t1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"priority": float64(50)}, body)

		_, _ = w.Write([]byte(`{}`))
	})

	priority := int64(50)
	require.NoError(t, client.ConfigureTask(context.Background(), "t1", nil, &priority))
}

func TestTaskAnnotations(t *testing.T) {
	t.Parallel()

	t.Run("execution and fetch-all are mutually exclusive", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be made")
		})

		execution := 1
		_, err := client.TaskAnnotations(context.Background(), "t1", &execution, true)
		assert.ErrorIs(t, err, evergreen.ErrInvalidArguments)
	})

	t.Run("null body means no annotations", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		})

		annotations, err := client.TaskAnnotations(context.Background(), "t1", nil, false)
		require.NoError(t, err)
		assert.Empty(t, annotations)
	})

	t.Run("decodes annotations", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2", r.URL.Query().Get("execution"))
			_, _ = w.Write([]byte(`[{"task_id": "t1", "task_execution": 2}]`))
		})

		execution := 2
		annotations, err := client.TaskAnnotations(context.Background(), "t1", &execution, false)
		require.NoError(t, err)
		require.Len(t, annotations, 1)
		assert.Equal(t, 2, annotations[0].TaskExecution)
	})
}

func TestAnnotateTask(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/rest/v2/tasks/t1/annotation", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "t1", body["task_id"])
		assert.Equal(t, float64(1), body["task_execution"])
		assert.Equal(t, map[string]any{"message": "known flake"}, body["note"])

		_, _ = w.Write([]byte(`{}`))
	})

	execution := 1
	err := client.AnnotateTask(context.Background(), "t1", &evergreen.AnnotationRequest{
		Execution: &execution,
		Message:   "known flake",
	})
	require.NoError(t, err)
}

func TestAllHosts(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v2/hosts", r.URL.Path)
		assert.Equal(t, "running", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`[{"host_id": "h1", "status": "running"}]`))
	})

	hosts, err := client.AllHosts(context.Background(), "running")
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, "h1", hosts[0].HostID)
}

func TestAllProjects(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v2/projects", r.URL.Path)
		_, _ = w.Write([]byte(`[{"identifier": "mci", "enabled": true}, {"identifier": "old", "enabled": false}]`))
	})

	projects, err := client.AllProjects(context.Background(), func(p *evergreen.Project) bool { return p.Enabled })
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "mci", projects[0].Identifier)
}
