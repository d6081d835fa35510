package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/football-odds-service/internal/testutil"
)

func TestWriteErrorIncludesCause(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()

	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusTeapot, "boom", errors.New("why"), logger)
	}), http.MethodGet, "/", nil)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	testutil.AssertHeader(t, rr, "Content-Type", "application/json")
	if got := rr.Body.String(); got != `{"error":"boom","message":"why"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestWriteErrorOmitsEmptyCause(t *testing.T) {
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "boom", nil, nil)
	}), http.MethodGet, "/", nil)

	if got := rr.Body.String(); got != `{"error":"boom"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if buf.String() == "" {
		t.Fatalf("expected logger to record encode error")
	}
}
