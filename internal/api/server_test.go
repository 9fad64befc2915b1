package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"relay/internal/api"
	"relay/internal/api/handler"
	mockrelay "relay/internal/relay/mock"
	"relay/pkg/domain"
	"relay/pkg/logger"
	"relay/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type routerFixture struct {
	service *mockrelay.MockService
	server  *httptest.Server
	token   string
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	claims := jwt.RegisteredClaims{
		Subject:   "operator-1",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	service := mockrelay.NewMockService(ctrl)

	router, err := api.NewRouter(api.Deps{
		Deps: handler.Deps{Relay: service},
	}, api.Options{
		MetricsPath:   "/metrics",
		WebhookSecret: "s3cret",
		JWTPublicKey:  string(pubPEM),
	})
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &routerFixture{service: service, server: server, token: token}
}

func (f *routerFixture) do(t *testing.T, method, path string, authorized bool) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, f.server.URL+path, nil)
	require.NoError(t, err)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestRouter_Healthz(t *testing.T) {
	f := newRouterFixture(t)

	resp := f.do(t, http.MethodGet, "/healthz", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
}

func TestRouter_IndexBanner(t *testing.T) {
	f := newRouterFixture(t)

	resp := f.do(t, http.MethodGet, "/", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_OperatorRequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/v1/receipts", "/v1/queries", "/v1/events"} {
		resp := f.do(t, http.MethodGet, path, false)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}
}

func TestRouter_Receipts(t *testing.T) {
	f := newRouterFixture(t)

	f.service.EXPECT().Receipts(gomock.Any(), "", uint(50)).
		Return([]domain.Receipt{{ID: domain.ReceiptID(uuid.New()), CustomerName: "ACME"}}, "next-cursor", nil)

	resp := f.do(t, http.MethodGet, "/v1/receipts", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Receipts   []domain.Receipt `json:"receipts"`
		NextCursor string           `json:"nextCursor"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Receipts, 1)
	require.Equal(t, "next-cursor", body.NextCursor)
}

func TestRouter_ReceiptByID(t *testing.T) {
	f := newRouterFixture(t)

	id := domain.ReceiptID(uuid.New())
	f.service.EXPECT().Receipt(gomock.Any(), id).
		Return(&domain.Receipt{ID: id, CustomerName: "ACME"}, nil)

	resp := f.do(t, http.MethodGet, "/v1/receipts/"+id.String(), true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_ReceiptByID_NotFound(t *testing.T) {
	f := newRouterFixture(t)

	id := domain.ReceiptID(uuid.New())
	f.service.EXPECT().Receipt(gomock.Any(), id).
		Return(nil, serrors.With(serrors.ErrNotFound, "receipt not found"))

	resp := f.do(t, http.MethodGet, "/v1/receipts/"+id.String(), true)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_ReceiptByID_InvalidUUID(t *testing.T) {
	f := newRouterFixture(t)

	resp := f.do(t, http.MethodGet, "/v1/receipts/not-a-uuid", true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_MediaDownload(t *testing.T) {
	f := newRouterFixture(t)

	id := domain.ReceiptID(uuid.New())
	f.service.EXPECT().OpenMedia(gomock.Any(), id).
		Return(&domain.Receipt{ID: id, MediaName: "receipt.jpg"}, []byte("jpeg-bytes"), nil)

	resp := f.do(t, http.MethodGet, "/v1/receipts/"+id.String()+"/media", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "receipt.jpg")
}

func TestRouter_DeleteReceipt(t *testing.T) {
	f := newRouterFixture(t)

	id := domain.ReceiptID(uuid.New())
	f.service.EXPECT().DeleteReceipt(gomock.Any(), id).Return(nil)

	resp := f.do(t, http.MethodDelete, "/v1/receipts/"+id.String(), true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Queries_LimitParam(t *testing.T) {
	f := newRouterFixture(t)

	f.service.EXPECT().Queries(gomock.Any(), "abc", uint(7)).Return(nil, "", nil)

	resp := f.do(t, http.MethodGet, "/v1/queries?cursor=abc&limit=7", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Queries_InvalidLimit(t *testing.T) {
	f := newRouterFixture(t)

	resp := f.do(t, http.MethodGet, "/v1/queries?limit=bogus", true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Events(t *testing.T) {
	f := newRouterFixture(t)

	f.service.EXPECT().Events(gomock.Any(), uint(50)).
		Return([]domain.Event{{ID: 1, Action: domain.EventReceiptStored}}, nil)

	resp := f.do(t, http.MethodGet, "/v1/events", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Metrics(t *testing.T) {
	f := newRouterFixture(t)

	resp := f.do(t, http.MethodGet, "/metrics", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
