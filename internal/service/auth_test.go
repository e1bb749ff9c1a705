package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func testUser(t *testing.T, password string) entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		CompanyID:    uuid.Must(uuid.NewV4()),
		CompanyName:  "Test Air",
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: string(hash),
		FirstName:    "John",
		LastName:     "Doe",
		Privilege:    entity.PrivilegeTechnician,
	}
}

func TestService_LoginAndAuthenticate(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)
	ctx := context.Background()

	u := testUser(t, "s3cret")

	ts.repo.EXPECT().UserByEmail(gomock.Any(), u.Email).Return(u, nil)
	ts.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entity.ActivityLogEntry) {
		r.Equal(entity.ActionLogin, e.Action)
		r.Equal(u.ID, e.UserID)
		r.Equal(u.CompanyID, e.CompanyID)
	})

	token, err := ts.s.Login(ctx, entity.LoginInput{Email: u.Email, Password: "s3cret"})
	r.NoError(err)
	r.NotEmpty(token.AccessToken)
	r.WithinDuration(time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

	ts.repo.EXPECT().UserByID(gomock.Any(), u.ID).Return(u, nil)

	p, err := ts.s.Authenticate(ctx, token.AccessToken)
	r.NoError(err)
	r.Equal(u.Principal(), p)
}

func TestService_Login_Errors(t *testing.T) {
	t.Parallel()

	u := testUser(t, "s3cret")

	tests := []struct {
		name  string
		in    entity.LoginInput
		setup func(ts *testService)
		err   error
	}{
		{
			name:  "invalid email",
			in:    entity.LoginInput{Email: "nope", Password: "x"},
			setup: func(*testService) {},
			err:   entity.ErrValidation,
		},
		{
			name: "unknown user",
			in:   entity.LoginInput{Email: "ghost@example.com", Password: "x"},
			setup: func(ts *testService) {
				ts.repo.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(entity.User{}, entity.ErrNotFound)
			},
			err: entity.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			in:   entity.LoginInput{Email: u.Email, Password: "guess"},
			setup: func(ts *testService) {
				ts.repo.EXPECT().UserByEmail(gomock.Any(), u.Email).Return(u, nil)
			},
			err: entity.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)
			tt.setup(ts)

			_, err := ts.s.Login(context.Background(), tt.in)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestService_Authenticate_Rejects(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	u := testUser(t, "s3cret")

	expired := newTestServiceWithTTL(t, -time.Minute)
	expired.repo.EXPECT().UserByEmail(gomock.Any(), u.Email).Return(u, nil)
	expired.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	token, err := expired.s.Login(context.Background(), entity.LoginInput{Email: u.Email, Password: "s3cret"})
	r.NoError(err)

	_, err = expired.s.Authenticate(context.Background(), token.AccessToken)
	r.ErrorIs(err, entity.ErrUnauthenticated)

	ts := newTestService(t)

	_, err = ts.s.Authenticate(context.Background(), "not-a-token")
	r.ErrorIs(err, entity.ErrUnauthenticated)

	ts.repo.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(entity.User{}, entity.ErrNotFound)

	valid := newTestService(t)
	valid.repo.EXPECT().UserByEmail(gomock.Any(), u.Email).Return(u, nil)
	valid.activity.EXPECT().Record(gomock.Any(), gomock.Any())

	token, err = valid.s.Login(context.Background(), entity.LoginInput{Email: u.Email, Password: "s3cret"})
	r.NoError(err)

	_, err = ts.s.Authenticate(context.Background(), token.AccessToken)
	r.ErrorIs(err, entity.ErrUnauthenticated, "deleted user")
}
