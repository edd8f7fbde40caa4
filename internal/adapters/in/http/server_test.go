package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapterhttp "mfgorder/internal/adapters/in/http"
	"mfgorder/internal/core/application/usecases/commands"
	"mfgorder/internal/core/application/usecases/queries"
	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/domain/model/orderhead"
	"mfgorder/internal/core/ports"
	"mfgorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepository serves a single header and records update failures to inject.
type stubRepository struct {
	header    *orderhead.Header
	updateErr error
}

func (r *stubRepository) Add(_ context.Context, _ *orderhead.Header) error {
	return nil
}

func (r *stubRepository) Update(_ context.Context, _ *orderhead.Header) error {
	return r.updateErr
}

func (r *stubRepository) Get(_ context.Context, key kernel.OrderKey) (*orderhead.Header, error) {
	return r.GetForUpdate(context.Background(), key)
}

func (r *stubRepository) GetForUpdate(_ context.Context, key kernel.OrderKey) (*orderhead.Header, error) {
	if r.header == nil {
		return nil, errs.NewObjectNotFoundError("orderHeader", key.String())
	}
	return r.header, nil
}

type stubUoW struct {
	repo     *stubRepository
	beginErr error
}

func (u *stubUoW) Begin(_ context.Context) error    { return u.beginErr }
func (u *stubUoW) Commit(_ context.Context) error   { return nil }
func (u *stubUoW) Rollback(_ context.Context) error { return nil }
func (u *stubUoW) OrderHeaderRepository() ports.OrderHeaderRepository {
	return u.repo
}

type stubUoWFactory struct {
	uow *stubUoW
}

func (f *stubUoWFactory) Create() commands.OrderHeaderUoW { return f.uow }

type stubClock struct{}

func (c stubClock) Today() kernel.CalendarDate {
	date, err := kernel.NewCalendarDate(20260825)
	if err != nil {
		panic(err)
	}
	return date
}

type nopPublisher struct{}

func (p nopPublisher) PublishDocumentsPrinted(_ context.Context, _ orderhead.DocumentsPrintedEvent) error {
	return nil
}

type stubResolver struct {
	facility string
	err      error
}

func (r *stubResolver) ResolveFacility(_ context.Context, _ string) (string, error) {
	return r.facility, r.err
}

type serverFixture struct {
	server *adapterhttp.Server
	repo   *stubRepository
	uow    *stubUoW
}

func newServerFixture(t *testing.T, resolver ports.FacilityResolver) *serverFixture {
	t.Helper()

	key, err := kernel.NewOrderKey(280, "FAC1", "PROD-01", "MO0001")
	require.NoError(t, err)
	created, err := kernel.NewCalendarDate(20260801)
	require.NoError(t, err)
	header, err := orderhead.RestoreHeader(
		key, orderhead.Released, 25, orderhead.DocumentsNotPrinted, created, 1, "RELEASER")
	require.NoError(t, err)

	repo := &stubRepository{header: header}
	uow := &stubUoW{repo: repo}
	factory := &stubUoWFactory{uow: uow}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := adapterhttp.NewServer(
		commands.NewUpdateDocumentsPrintedCommandHandler(factory, stubClock{}, nopPublisher{}, logger),
		commands.NewUpdateDocumentsPrintedByWarehouseCommandHandler(
			factory, resolver, stubClock{}, nopPublisher{}, logger),
		queries.GetOrderHeaderQueryHandler{},
		queries.ListUnprintedOrdersQueryHandler{},
		280,
	)

	return &serverFixture{server: server, repo: repo, uow: uow}
}

func postJSON(t *testing.T, path string, body string, user string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if user != "" {
		req.Header.Set("X-User-Id", user)
	}

	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_UpdateDocumentsPrinted_Success(t *testing.T) {
	fixture := newServerFixture(t, &stubResolver{})

	ctx, rec := postJSON(t, "/api/v1/order-headers/documents-printed",
		`{"CONO": "280", "FACI": "FAC1", "PRNO": "PROD-01", "MFNO": "MO0001", "WODP": "1"}`,
		"MWORKER")

	require.NoError(t, fixture.server.UpdateDocumentsPrinted(ctx))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, orderhead.DocumentsPrinted, fixture.repo.header.DocumentsPrinted())
	assert.Equal(t, "MWORKER", fixture.repo.header.ChangedBy())
	assert.Equal(t, 2, fixture.repo.header.ChangeSequence())
}

func TestServer_UpdateDocumentsPrinted_MissingUserIsUnauthorized(t *testing.T) {
	fixture := newServerFixture(t, &stubResolver{})

	ctx, rec := postJSON(t, "/api/v1/order-headers/documents-printed",
		`{"FACI": "FAC1", "PRNO": "PROD-01", "MFNO": "MO0001"}`, "")

	require.NoError(t, fixture.server.UpdateDocumentsPrinted(ctx))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "01", body["code"])
}

func TestServer_UpdateDocumentsPrinted_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "non-numeric company",
			body:      `{"CONO": "ABC", "FACI": "FAC1", "PRNO": "PROD-01", "MFNO": "MO0001"}`,
			wantField: "CONO",
		},
		{
			name:      "missing facility",
			body:      `{"PRNO": "PROD-01", "MFNO": "MO0001"}`,
			wantField: "FACI",
		},
		{
			name:      "missing product code",
			body:      `{"FACI": "FAC1", "MFNO": "MO0001"}`,
			wantField: "PRNO",
		},
		{
			name:      "missing order number",
			body:      `{"FACI": "FAC1", "PRNO": "PROD-01"}`,
			wantField: "MFNO",
		},
		{
			name:      "flag out of range",
			body:      `{"FACI": "FAC1", "PRNO": "PROD-01", "MFNO": "MO0001", "WODP": "2"}`,
			wantField: "WODP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newServerFixture(t, &stubResolver{})

			ctx, rec := postJSON(t, "/api/v1/order-headers/documents-printed", tt.body, "MWORKER")

			require.NoError(t, fixture.server.UpdateDocumentsPrinted(ctx))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "01", body["code"])
			assert.Equal(t, tt.wantField, body["field"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestServer_UpdateDocumentsPrinted_UpdateFailureIsConflict(t *testing.T) {
	fixture := newServerFixture(t, &stubResolver{})
	fixture.uow.beginErr = errors.New("connection refused")

	ctx, rec := postJSON(t, "/api/v1/order-headers/documents-printed",
		`{"FACI": "FAC1", "PRNO": "PROD-01", "MFNO": "MO0001", "WODP": "1"}`, "MWORKER")

	require.NoError(t, fixture.server.UpdateDocumentsPrinted(ctx))

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "01", body["code"])
	// The store-level cause stays hidden and no field takes the blame.
	assert.NotContains(t, body, "field")
	assert.Equal(t, "Failed to update order header", body["message"])
}

func TestServer_UpdateDocumentsPrintedByWarehouse_Success(t *testing.T) {
	fixture := newServerFixture(t, &stubResolver{facility: "FAC1"})

	ctx, rec := postJSON(t, "/api/v1/order-headers/documents-printed/by-warehouse",
		`{"WHLO": "W01", "PRNO": "PROD-01", "MFNO": "MO0001", "WODP": "1"}`, "MWORKER")

	require.NoError(t, fixture.server.UpdateDocumentsPrintedByWarehouse(ctx))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, orderhead.DocumentsPrinted, fixture.repo.header.DocumentsPrinted())
}

func TestServer_UpdateDocumentsPrintedByWarehouse_UnresolvedWarehouseIsNotFound(t *testing.T) {
	resolver := &stubResolver{
		err: ports.NewFacilityResolutionError("W99", "Warehouse W99 does not exist"),
	}
	fixture := newServerFixture(t, resolver)

	ctx, rec := postJSON(t, "/api/v1/order-headers/documents-printed/by-warehouse",
		`{"WHLO": "W99", "PRNO": "PROD-01", "MFNO": "MO0001"}`, "MWORKER")

	require.NoError(t, fixture.server.UpdateDocumentsPrintedByWarehouse(ctx))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "01", body["code"])
	assert.Equal(t, "WHLO", body["field"])
	// The lookup service's message passes through unchanged.
	assert.Equal(t, "Warehouse W99 does not exist", body["message"])
}

func TestServer_UpdateDocumentsPrintedByWarehouse_MissingWarehouse(t *testing.T) {
	fixture := newServerFixture(t, &stubResolver{facility: "FAC1"})

	ctx, rec := postJSON(t, "/api/v1/order-headers/documents-printed/by-warehouse",
		`{"PRNO": "PROD-01", "MFNO": "MO0001"}`, "MWORKER")

	require.NoError(t, fixture.server.UpdateDocumentsPrintedByWarehouse(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "WHLO", body["field"])
}
