package client_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jithinio/brillo/internal/client"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    client.CreateParams
		setupMock func(m *client.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: client.CreateParams{
				Name:    "Acme Corp",
				Email:   "billing@acme.test",
				Country: "US",
			},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().
					CreateClient(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *client.Client) error {
						c.ID = uuid.New()
						c.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:   "NameRequired",
			params: client.CreateParams{Name: "   "},
			// No repository call expected.
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: client.CreateParams{Name: "Acme Corp"},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().
					CreateClient(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := client.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := client.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, client.StatusActive, got.Status)
		})
	}
}

func TestService_FindByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := client.NewMockRepository(ctrl)
	svc := client.NewService(repo)

	existing := &client.Client{ID: uuid.New(), Name: "Acme Corp"}

	repo.EXPECT().FindClientByName(gomock.Any(), "Acme Corp").Return(existing, nil)

	got, err := svc.FindByName(context.Background(), "Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func TestService_FindByName_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := client.NewMockRepository(ctrl)
	svc := client.NewService(repo)

	repo.EXPECT().FindClientByName(gomock.Any(), "Nobody").Return(nil, client.ErrNotFound)

	got, err := svc.FindByName(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := client.NewMockRepository(ctrl)
	svc := client.NewService(repo)

	repo.EXPECT().
		ListClients(gomock.Any(), client.ListFilter{}).
		Return([]*client.Client{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	got, err := svc.List(context.Background(), client.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
