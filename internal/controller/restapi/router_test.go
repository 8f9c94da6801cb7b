package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Highlight-Generator/internal/dto"
	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var secret = []byte("test-secret")

type fakeGen struct {
	generateFn func(req dto.GenerationRequest) (string, error)
}

func (f *fakeGen) Generate(_ context.Context, req dto.GenerationRequest) (string, error) {
	return f.generateFn(req)
}

type fakeHighlights struct {
	requestFn func(userID string, start, end time.Time) (uuid.UUID, error)
	getFn     func(userID string, id uuid.UUID) (*entity.Highlight, error)
	videoFn   func(userID string, id uuid.UUID) (io.ReadCloser, error)
}

func (f *fakeHighlights) RunMonthly(context.Context, time.Time) (*dto.MonthlyReport, error) {
	return nil, nil
}

func (f *fakeHighlights) RequestCustom(_ context.Context, userID string, start, end time.Time) (uuid.UUID, error) {
	return f.requestFn(userID, start, end)
}

func (f *fakeHighlights) Get(_ context.Context, userID string, id uuid.UUID) (*entity.Highlight, error) {
	return f.getFn(userID, id)
}

func (f *fakeHighlights) OpenVideo(_ context.Context, userID string, id uuid.UUID) (io.ReadCloser, error) {
	return f.videoFn(userID, id)
}

type fakePhotos struct {
	uploaded []string
}

func (f *fakePhotos) Upload(
	_ context.Context, userID string, data io.Reader, ext, contentType string, size int64, takenAt time.Time,
) (*entity.Photo, error) {
	b, _ := io.ReadAll(data)
	f.uploaded = append(f.uploaded, fmt.Sprintf("%s|%s|%s|%d|%d", userID, ext, contentType, size, len(b)))

	return &entity.Photo{ID: uuid.New(), UserID: userID, TakenAt: takenAt, StoragePath: "photos/" + userID + "/x" + ext}, nil
}

func (f *fakePhotos) Stats(_ context.Context, userID string) (*entity.Stats, error) {
	return &entity.Stats{UserID: userID, StreakCurrent: 2, StreakMax: 4, LastDate: time.Now()}, nil
}

type server struct {
	app    *fiber.App
	gen    *fakeGen
	hl     *fakeHighlights
	photos *fakePhotos
}

func newServer(t *testing.T) *server {
	t.Helper()

	s := &server{
		app:    fiber.New(),
		gen:    &fakeGen{},
		hl:     &fakeHighlights{},
		photos: &fakePhotos{},
	}
	NewRouter(s.app, secret, s.gen, s.hl, s.photos, logger.New("error", logger.Output(io.Discard)))

	return s
}

func token(t *testing.T, subject string, method jwt.SigningMethod, exp time.Time) string {
	t.Helper()

	tok, err := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}

	return tok
}

func (s *server) do(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()

	resp, err := s.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	return resp.StatusCode, body
}

func jsonRequest(method, target, body, bearer string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return req
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()

	var e response.Error
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	if e.Success {
		t.Error("error response must have success=false")
	}

	return e.Error.Code
}

func TestHealthz(t *testing.T) {
	s := newServer(t)

	status, _ := s.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newServer(t)
	s.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	status, body := s.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if status != http.StatusOK || !bytes.Contains(body, []byte("http_requests_total")) {
		t.Errorf("status = %d, body lacks request counter", status)
	}
}

func TestGenerate(t *testing.T) {
	id := uuid.New()
	body := fmt.Sprintf(`{"user_id":"u1","photos":["photos/u1/a.jpg"],"highlight_id":"%s","kind":"periodic","period":"202401"}`, id)

	tests := []struct {
		name   string
		body   string
		err    error
		status int
		code   string
	}{
		{"success", body, nil, http.StatusOK, ""},
		{"malformed", `{"user_id":`, nil, http.StatusBadRequest, "INVALID_INPUT"},
		{"missing photos", fmt.Sprintf(`{"user_id":"u1","highlight_id":"%s","kind":"custom"}`, id), nil, http.StatusBadRequest, "INVALID_INPUT"},
		{"period escapes prefix", fmt.Sprintf(`{"user_id":"u1","photos":["a.jpg"],"highlight_id":"%s","kind":"periodic","period":"../highlights_custom/u1/x"}`, id), nil, http.StatusBadRequest, "INVALID_INPUT"},
		{"user with slash", fmt.Sprintf(`{"user_id":"u1/x","photos":["a.jpg"],"highlight_id":"%s","kind":"periodic","period":"202401"}`, id), nil, http.StatusBadRequest, "INVALID_INPUT"},
		{"asset missing", body, errs.ErrAssetNotFound, http.StatusNotFound, "ASSET_NOT_FOUND"},
		{"transfer", body, errs.ErrTransferFailed, http.StatusBadGateway, "TRANSFER_FAILED"},
		{"encoding", body, errs.ErrEncodingFailed, http.StatusInternalServerError, "ENCODING_FAILED"},
		{"in progress", body, errs.ErrGenerationInProgress, http.StatusConflict, "GENERATION_IN_PROGRESS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t)
			s.gen.generateFn = func(req dto.GenerationRequest) (string, error) {
				if tt.err != nil {
					return "", fmt.Errorf("Worker - Generate: %w", tt.err)
				}
				return req.OutputPath(), nil
			}

			status, resp := s.do(t, jsonRequest(http.MethodPost, "/v1/generate", tt.body, ""))
			if status != tt.status {
				t.Fatalf("status = %d, want %d: %s", status, tt.status, resp)
			}

			if tt.code != "" {
				if got := errorCode(t, resp); got != tt.code {
					t.Errorf("code = %s, want %s", got, tt.code)
				}
				return
			}

			var ok response.Generate
			if err := json.Unmarshal(resp, &ok); err != nil {
				t.Fatal(err)
			}
			if !ok.Success || ok.Path != "highlights/u1/202401.mp4" {
				t.Errorf("response = %+v", ok)
			}
		})
	}
}

func TestAuthRequired(t *testing.T) {
	s := newServer(t)
	body := `{"start_date":"2024-01-01","end_date":"2024-01-31"}`

	tests := []struct {
		name   string
		bearer string
	}{
		{"no token", ""},
		{"garbage", "not-a-jwt"},
		{"expired", token(t, "u1", jwt.SigningMethodHS256, time.Now().Add(-time.Hour))},
		{"wrong algorithm", token(t, "u1", jwt.SigningMethodHS384, time.Now().Add(time.Hour))},
		{"no subject", token(t, "", jwt.SigningMethodHS256, time.Now().Add(time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := s.do(t, jsonRequest(http.MethodPost, "/v1/highlights/custom", body, tt.bearer))
			if status != http.StatusUnauthorized {
				t.Fatalf("status = %d", status)
			}
			if got := errorCode(t, resp); got != "UNAUTHENTICATED" {
				t.Errorf("code = %s", got)
			}
		})
	}
}

func TestRequestCustomHighlight(t *testing.T) {
	id := uuid.New()
	bearer := token(t, "u1", jwt.SigningMethodHS256, time.Now().Add(time.Hour))

	tests := []struct {
		name   string
		body   string
		err    error
		status int
		code   string
	}{
		{"accepted", `{"start_date":"2024-01-01","end_date":"2024-01-31"}`, nil, http.StatusAccepted, ""},
		{"bad date", `{"start_date":"01/01/2024","end_date":"2024-01-31"}`, nil, http.StatusBadRequest, "INVALID_INPUT"},
		{"missing end", `{"start_date":"2024-01-01"}`, nil, http.StatusBadRequest, "INVALID_INPUT"},
		{"too large", `{"start_date":"2024-01-01","end_date":"2024-06-01"}`, errs.ErrRangeTooLarge, http.StatusBadRequest, "RANGE_TOO_LARGE"},
		{"too few", `{"start_date":"2024-01-01","end_date":"2024-01-31"}`, errs.ErrTooFewPhotos, http.StatusUnprocessableEntity, "TOO_FEW_PHOTOS"},
		{"too many", `{"start_date":"2024-01-01","end_date":"2024-01-31"}`, errs.ErrTooManyPhotos, http.StatusUnprocessableEntity, "TOO_MANY_PHOTOS"},
		{"rate limited", `{"start_date":"2024-01-01","end_date":"2024-01-31"}`, errs.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t)
			s.hl.requestFn = func(userID string, start, end time.Time) (uuid.UUID, error) {
				if userID != "u1" {
					t.Errorf("user = %s", userID)
				}
				if !start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
					t.Errorf("start = %v", start)
				}
				if tt.err != nil {
					return uuid.Nil, tt.err
				}
				return id, nil
			}

			status, resp := s.do(t, jsonRequest(http.MethodPost, "/v1/highlights/custom", tt.body, bearer))
			if status != tt.status {
				t.Fatalf("status = %d, want %d: %s", status, tt.status, resp)
			}
			if tt.code != "" {
				if got := errorCode(t, resp); got != tt.code {
					t.Errorf("code = %s, want %s", got, tt.code)
				}
				return
			}

			var ok response.CustomHighlight
			if err := json.Unmarshal(resp, &ok); err != nil {
				t.Fatal(err)
			}
			if ok.HighlightID != id.String() {
				t.Errorf("highlight_id = %s", ok.HighlightID)
			}
		})
	}
}

func TestGetHighlight(t *testing.T) {
	s := newServer(t)
	bearer := token(t, "u1", jwt.SigningMethodHS256, time.Now().Add(time.Hour))
	mine, theirs := uuid.New(), uuid.New()
	period := "202401"

	s.hl.getFn = func(userID string, id uuid.UUID) (*entity.Highlight, error) {
		if id == theirs {
			return nil, errs.ErrForbidden
		}
		return &entity.Highlight{ID: id, UserID: userID, Kind: entity.KindPeriodic, Status: entity.HighlightProcessing, Period: &period}, nil
	}

	status, resp := s.do(t, jsonRequest(http.MethodGet, "/v1/highlights/"+mine.String(), "", bearer))
	if status != http.StatusOK {
		t.Fatalf("status = %d: %s", status, resp)
	}
	var h response.Highlight
	if err := json.Unmarshal(resp, &h); err != nil {
		t.Fatal(err)
	}
	if h.ID != mine.String() || h.Status != "processing" || h.Period == nil || *h.Period != "202401" {
		t.Errorf("highlight = %+v", h)
	}

	status, _ = s.do(t, jsonRequest(http.MethodGet, "/v1/highlights/"+theirs.String(), "", bearer))
	if status != http.StatusForbidden {
		t.Errorf("foreign highlight status = %d", status)
	}

	status, _ = s.do(t, jsonRequest(http.MethodGet, "/v1/highlights/not-a-uuid", "", bearer))
	if status != http.StatusBadRequest {
		t.Errorf("bad id status = %d", status)
	}
}

func TestGetHighlightVideo(t *testing.T) {
	s := newServer(t)
	bearer := token(t, "u1", jwt.SigningMethodHS256, time.Now().Add(time.Hour))
	ready, pending := uuid.New(), uuid.New()

	s.hl.videoFn = func(_ string, id uuid.UUID) (io.ReadCloser, error) {
		if id == pending {
			return nil, errs.ErrHighlightNotReady
		}
		return io.NopCloser(strings.NewReader("mp4-bytes")), nil
	}

	resp, err := s.app.Test(jsonRequest(http.MethodGet, "/v1/highlights/"+ready.String()+"/video", "", bearer), -1)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "mp4-bytes" {
		t.Errorf("status = %d, body = %q", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "video/mp4" {
		t.Errorf("content type = %s", ct)
	}

	status, body := s.do(t, jsonRequest(http.MethodGet, "/v1/highlights/"+pending.String()+"/video", "", bearer))
	if status != http.StatusConflict || errorCode(t, body) != "HIGHLIGHT_NOT_READY" {
		t.Errorf("pending: status = %d, body = %s", status, body)
	}
}

func multipartPhoto(t *testing.T, filename, contentType string, data []byte, takenAt string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatal(err)
	}
	if takenAt != "" {
		if err := w.WriteField("taken_at", takenAt); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return &buf, w.FormDataContentType()
}

func TestUploadPhoto(t *testing.T) {
	bearer := token(t, "u1", jwt.SigningMethodHS256, time.Now().Add(time.Hour))

	tests := []struct {
		name        string
		filename    string
		contentType string
		takenAt     string
		status      int
	}{
		{"jpeg", "IMG_0001.JPG", "image/jpeg", "2024-01-05T10:00:00Z", http.StatusCreated},
		{"png without taken_at", "shot.png", "image/png", "", http.StatusCreated},
		{"gif rejected", "anim.gif", "image/gif", "", http.StatusUnsupportedMediaType},
		{"extension mismatch", "photo.webp", "image/jpeg", "", http.StatusUnsupportedMediaType},
		{"bad taken_at", "IMG.jpg", "image/jpeg", "yesterday", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t)
			body, ct := multipartPhoto(t, tt.filename, tt.contentType, []byte("pixels"), tt.takenAt)

			req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
			req.Header.Set("Content-Type", ct)
			req.Header.Set("Authorization", "Bearer "+bearer)

			status, resp := s.do(t, req)
			if status != tt.status {
				t.Fatalf("status = %d, want %d: %s", status, tt.status, resp)
			}
			if status != http.StatusCreated {
				if len(s.photos.uploaded) != 0 {
					t.Errorf("rejected upload reached the use case")
				}
				return
			}
			if len(s.photos.uploaded) != 1 || !strings.HasPrefix(s.photos.uploaded[0], "u1|.") {
				t.Errorf("uploaded = %v", s.photos.uploaded)
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	s := newServer(t)
	bearer := token(t, "u1", jwt.SigningMethodHS256, time.Now().Add(time.Hour))

	status, body := s.do(t, jsonRequest(http.MethodGet, "/v1/stats", "", bearer))
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	var stats response.Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.StreakCurrent != 2 || stats.StreakMax != 4 || stats.LastDate == nil {
		t.Errorf("stats = %+v", stats)
	}
}
