package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

// The capture writer only buffers up to its limit but keeps counting bytes,
// so size > limit is the signal that the capture is incomplete and the
// response must not be cached.
func TestCaptureWriterTracksOversizedBodies(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 10}

	first := []byte("0123456789") // fills the buffer exactly
	second := []byte("overflow")  // pushes size past the limit
	if _, err := cw.Write(first); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := cw.Write(second); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := rec.Body.Len(); got != len(first)+len(second) {
		t.Fatalf("client received %d bytes, want %d", got, len(first)+len(second))
	}
	if cw.buf.Len() > 10 {
		t.Fatalf("capture exceeded limit: %d bytes buffered", cw.buf.Len())
	}
	if cw.size <= int64(cw.limit) {
		t.Fatalf("size = %d, want > limit %d to flag the truncated capture", cw.size, cw.limit)
	}
}

func TestCaptureWriterUnlimited(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 0}
	payload := bytes.Repeat([]byte("x"), 4096)
	if _, err := cw.Write(payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	if cw.buf.Len() != len(payload) || cw.size != int64(len(payload)) {
		t.Fatalf("buffered %d/%d bytes, want full capture", cw.buf.Len(), cw.size)
	}
}

func TestPayloadCodecRoundTrip(t *testing.T) {
	t.Parallel()

	hdr := http.Header{"Content-Type": {"application/json"}, "X-Trip": {"42"}}
	body := []byte(`{"seats":["1","2"]}`)

	encoded, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(encoded)
	if !ok {
		t.Fatal("decode failed")
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" || gotHdr.Get("X-Trip") != "42" {
		t.Fatalf("headers lost: %+v", gotHdr)
	}
	if !bytes.Equal(gotBody, body) {
		t.Fatalf("body = %q, want %q", gotBody, body)
	}
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, bs := range [][]byte{nil, []byte("short"), {0, 0, 0, 200, 0, 0, 0, 99}} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Fatalf("decodePayload(%v) accepted malformed input", bs)
		}
	}
}
