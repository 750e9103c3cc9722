package project_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	projecthttp "github.com/jithinio/brillo/internal/http/project"
	"github.com/jithinio/brillo/internal/project"
)

func patchProject(t *testing.T, repo *project.MockRepository, id uuid.UUID, body string) (*httptest.ResponseRecorder, *project.Project) {
	t.Helper()

	var updated *project.Project

	repo.EXPECT().
		UpdateProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *project.Project) error {
			updated = p
			return nil
		}).
		AnyTimes()

	handler := projecthttp.NewHandler(project.NewService(repo))

	router := chi.NewRouter()
	handler.Routes(router)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/%s", id), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec, updated
}

func TestUpdate_NullClientIDDetaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := project.NewMockRepository(ctrl)

	id := uuid.New()
	clientID := uuid.New()

	repo.EXPECT().
		GetProject(gomock.Any(), id).
		Return(&project.Project{ID: id, Name: "Website", ClientID: &clientID}, nil)

	rec, updated := patchProject(t, repo, id, `{"client_id": null}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, updated)
	assert.Nil(t, updated.ClientID)
}

func TestUpdate_AbsentClientIDKeepsLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := project.NewMockRepository(ctrl)

	id := uuid.New()
	clientID := uuid.New()

	repo.EXPECT().
		GetProject(gomock.Any(), id).
		Return(&project.Project{ID: id, Name: "Website", ClientID: &clientID}, nil)

	rec, updated := patchProject(t, repo, id, `{"name": "Renamed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, updated)
	require.NotNil(t, updated.ClientID)
	assert.Equal(t, clientID, *updated.ClientID)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestUpdate_SetsClientID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := project.NewMockRepository(ctrl)

	id := uuid.New()
	clientID := uuid.New()

	repo.EXPECT().
		GetProject(gomock.Any(), id).
		Return(&project.Project{ID: id, Name: "Website"}, nil)

	rec, updated := patchProject(t, repo, id, fmt.Sprintf(`{"client_id": %q}`, clientID))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, updated)
	require.NotNil(t, updated.ClientID)
	assert.Equal(t, clientID, *updated.ClientID)
}

func TestUpdate_InvalidClientIDRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := project.NewMockRepository(ctrl)

	id := uuid.New()

	repo.EXPECT().
		GetProject(gomock.Any(), id).
		Return(&project.Project{ID: id, Name: "Website"}, nil)

	rec, updated := patchProject(t, repo, id, `{"client_id": "not-a-uuid"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, updated)
}

func TestUpdate_RecomputesPaymentPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := project.NewMockRepository(ctrl)

	id := uuid.New()

	repo.EXPECT().
		GetProject(gomock.Any(), id).
		Return(&project.Project{
			ID:              id,
			Name:            "Website",
			Budget:          500000,
			PaymentReceived: 100000,
			PaymentPending:  400000,
		}, nil)

	rec, updated := patchProject(t, repo, id, `{"payment_received": 350000}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, updated)
	assert.Equal(t, int64(150000), updated.PaymentPending)
}

func TestUpdate_OverpaymentClampsPendingToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := project.NewMockRepository(ctrl)

	id := uuid.New()

	repo.EXPECT().
		GetProject(gomock.Any(), id).
		Return(&project.Project{
			ID:              id,
			Name:            "Website",
			Budget:          500000,
			PaymentReceived: 100000,
			PaymentPending:  400000,
		}, nil)

	rec, updated := patchProject(t, repo, id, `{"budget": 50000}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, updated)
	assert.Equal(t, int64(0), updated.PaymentPending)
}

func TestUpdate_ExplicitPendingWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := project.NewMockRepository(ctrl)

	id := uuid.New()

	repo.EXPECT().
		GetProject(gomock.Any(), id).
		Return(&project.Project{
			ID:              id,
			Name:            "Website",
			Budget:          500000,
			PaymentReceived: 100000,
			PaymentPending:  400000,
		}, nil)

	rec, updated := patchProject(t, repo, id, `{"budget": 600000, "payment_pending": 123}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, updated)
	assert.Equal(t, int64(123), updated.PaymentPending)
}
