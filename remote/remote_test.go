// SPDX-License-Identifier: MIT

package remote_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crossgrid/progress"
	"github.com/katalvlaran/crossgrid/remote"
	"github.com/katalvlaran/crossgrid/solution"
	"github.com/katalvlaran/crossgrid/xmldoc"
)

var (
	answers = []string{"CAT", "TOE", "COT", "TIE"}
	lengths = []int{3, 3, 3, 3}
)

// recordingSink keeps every report and may cancel on the first fraction.
type recordingSink struct {
	labels    []string
	fractions []float64
	onFirst   func()
}

func (s *recordingSink) SetLabel(text, target string) { s.labels = append(s.labels, text+" "+target) }

func (s *recordingSink) SetProgress(f float64) {
	s.fractions = append(s.fractions, f)
	if f > 0 && s.onFirst != nil {
		s.onFirst()
		s.onFirst = nil
	}
}

// serveSolution publishes a document embedding enc and returns the
// reference to it.
func serveSolution(t *testing.T, enc solution.Encoded) (*httptest.Server, *xmldoc.Solution) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, xmldoc.Write(&buf, &xmldoc.Puzzle{Solution: xmldoc.NewSolution(enc)}))
	body := buf.Bytes()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/solution.xml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, xmldoc.NewSolutionRef(srv.URL+"/solution.xml", enc.Hash)
}

func TestResolvePlain(t *testing.T) {
	enc, err := solution.Encode(answers, "")
	require.NoError(t, err)
	_, ref := serveSolution(t, enc)

	sink := &recordingSink{}
	got, err := remote.Resolve(context.Background(), ref, &remote.HTTPFetcher{}, nil, lengths, sink)
	require.NoError(t, err)
	assert.Equal(t, answers, got)
	require.NotEmpty(t, sink.labels)
	assert.Contains(t, sink.labels[0], ref.Location)
	assert.Equal(t, progress.Indeterminate, sink.fractions[0])
	assert.InDelta(t, 1.0, sink.fractions[len(sink.fractions)-1], 1e-9)
}

func TestResolveEncryptedPrompts(t *testing.T) {
	enc, err := solution.Encode(answers, "pw")
	require.NoError(t, err)
	_, ref := serveSolution(t, enc)

	got, err := remote.Resolve(context.Background(), ref, &remote.HTTPFetcher{ChunkSize: 7}, solution.StaticPrompt("pw"), lengths, nil)
	require.NoError(t, err)
	assert.Equal(t, answers, got)

	_, err = remote.Resolve(context.Background(), ref, &remote.HTTPFetcher{}, nil, lengths, nil)
	assert.ErrorIs(t, err, progress.ErrCancelled)
}

func TestResolveHashMismatch(t *testing.T) {
	enc, err := solution.Encode(answers, "")
	require.NoError(t, err)
	srv, _ := serveSolution(t, enc)

	ref := xmldoc.NewSolutionRef(srv.URL+"/solution.xml", bytes.Repeat([]byte{1}, 32))
	_, err = remote.Resolve(context.Background(), ref, &remote.HTTPFetcher{}, nil, lengths, nil)
	assert.ErrorIs(t, err, remote.ErrHashMismatch)
}

func TestFetchErrors(t *testing.T) {
	enc, err := solution.Encode(answers, "")
	require.NoError(t, err)
	srv, ref := serveSolution(t, enc)
	ctx := context.Background()

	_, err = remote.Fetch(ctx, xmldoc.NewSolution(enc), &remote.HTTPFetcher{}, nil)
	assert.ErrorIs(t, err, remote.ErrNotReference)

	missing := xmldoc.NewSolutionRef(srv.URL+"/nope.xml", enc.Hash)
	_, err = remote.Fetch(ctx, missing, &remote.HTTPFetcher{}, nil)
	assert.ErrorIs(t, err, remote.ErrStatus)

	_, err = remote.Fetch(ctx, ref, &remote.HTTPFetcher{MaxBytes: 16}, nil)
	assert.ErrorIs(t, err, remote.ErrTooLarge)

	empty := remote.FetcherFunc(func(context.Context, string, progress.Sink) ([]byte, error) {
		return []byte("<puzzle></puzzle>"), nil
	})
	_, err = remote.Fetch(ctx, ref, empty, nil)
	assert.ErrorIs(t, err, remote.ErrNoSolution)
}

func TestFetchCancelledBetweenReads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		_, _ = w.Write([]byte(strings.Repeat("x", 10)))
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sink := &recordingSink{onFirst: cancel}

	_, err := (&remote.HTTPFetcher{}).Fetch(ctx, srv.URL, sink)
	require.Error(t, err)
	assert.True(t, progress.IsCancelled(err))
}
