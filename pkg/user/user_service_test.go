package user

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"context"
	"mime/multipart"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakeUserRepository struct {
	users    map[string]*entities.User
	archived []*entities.DeletedUser
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	clone := *user
	f.users[user.UID] = &clone
	return nil
}

func (f *fakeUserRepository) GetUserByUID(_ context.Context, uid string) (*entities.User, error) {
	user, ok := f.users[uid]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, uid string, fields map[string]any) (*entities.User, error) {
	user, ok := f.users[uid]
	if !ok {
		return nil, nil
	}
	for column, value := range fields {
		switch column {
		case "full_name":
			user.FullName = value.(string)
		case "password":
			user.Password = value.(string)
		case "profile_pic":
			user.ProfilePic = value.(string)
		case "pushy_token":
			user.PushyToken = value.(string)
		case "allergenic_ingredients":
			user.AllergenicIngredients = value.(datatypes.JSONSlice[string])
		case "is_subscribed_user":
			user.IsSubscribedUser = value.(bool)
		}
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepository) GetUsers(_ context.Context, _, _ int) ([]*entities.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, uid, reason string) (bool, error) {
	user, ok := f.users[uid]
	if !ok {
		return false, nil
	}
	f.archived = append(f.archived, &entities.DeletedUser{
		UID:           user.UID,
		Email:         user.Email,
		FullName:      user.FullName,
		AuthProvider:  user.AuthProvider,
		DeletedReason: reason,
	})
	delete(f.users, uid)
	return true, nil
}

func (f *fakeUserRepository) GetDeletedUsers(_ context.Context, _, _ int, _ string) ([]*entities.DeletedUser, int64, error) {
	return f.archived, int64(len(f.archived)), nil
}

func (f *fakeUserRepository) GetPushyTokens(_ context.Context, _ *bool) ([]string, error) {
	return nil, nil
}

func (f *fakeUserRepository) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepository) CountActiveUsersSince(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepository) CountUsersByMonth(_ context.Context, _ int) ([]MonthlyCount, error) {
	return nil, nil
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId + "-" + role
}

func (f *fakeJWTService) ValidateTokenUser(string) (*gojwt.Token, error) { return nil, nil }

func (f *fakeJWTService) GetUserIDByToken(string) (string, string, error) { return "", "", nil }

func (f *fakeJWTService) GenerateTokenForgetPassword(map[string]any, time.Duration) (string, error) {
	return "reset-token", nil
}

func (f *fakeJWTService) ValidateTokenForgetPassword(token string) (gojwt.MapClaims, error) {
	if token != "reset-token" {
		return gojwt.MapClaims{}, domain.ErrTokenInvalid
	}
	return gojwt.MapClaims{"uid": "user-1"}, nil
}

type fakeAwsS3 struct{}

func (f *fakeAwsS3) UploadFile(_ context.Context, folder string, _ *multipart.FileHeader) (string, error) {
	return folder + "/object-key", nil
}

func (f *fakeAwsS3) GetPublicLinkKey(key string) string {
	return "https://bucket.s3.test/" + key
}

func newUserService(repo *fakeUserRepository) UserService {
	return NewUserService(repo, &fakeJWTService{}, &fakeAwsS3{})
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		UID:      "user-1",
		FullName: "Dewi Lestari",
		Email:    "Dewi@Example.com",
		Password: "hunter2hunter2",
	}
}

func TestRegister_NormalizesEmailAndHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := newUserService(repo)

	res, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "dewi@example.com", res.User.Email)
	assert.Equal(t, domain.RoleUser, res.User.Role)
	assert.Equal(t, "token-user-1-user", res.Token)

	stored := repo.users["user-1"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter2hunter2", stored.Password)
	assert.Equal(t, entities.AuthProviderPassword, stored.AuthProvider)
}

func TestRegister_DuplicateRejected(t *testing.T) {
	repo := newFakeUserRepository()
	service := newUserService(repo)

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	// same email under a different uid is also a conflict
	req := registerRequest()
	req.UID = "user-2"
	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	service := newUserService(repo)
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "dewi@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", res.User.UID)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "dewi@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_GoogleAccountRejected(t *testing.T) {
	repo := newFakeUserRepository()
	service := newUserService(repo)

	_, err := service.GoogleSignIn(context.Background(), domain.GoogleSignInRequest{
		UID:      "guser-1",
		FullName: "Google Person",
		Email:    "gperson@example.com",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "gperson@example.com",
		Password: "whatever12345",
	})
	assert.ErrorIs(t, err, domain.ErrWrongAuthProvider)
}

func TestGoogleSignIn_CreatesOnFirstUse(t *testing.T) {
	repo := newFakeUserRepository()
	service := newUserService(repo)

	res, err := service.GoogleSignIn(context.Background(), domain.GoogleSignInRequest{
		UID:      "guser-1",
		FullName: "Google Person",
		Email:    "GPerson@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "gperson@example.com", res.User.Email)
	assert.Equal(t, entities.AuthProviderGoogle, res.User.AuthProvider)
	assert.Len(t, repo.users, 1)

	// second sign-in reuses the row
	_, err = service.GoogleSignIn(context.Background(), domain.GoogleSignInRequest{
		UID:      "guser-1",
		FullName: "Google Person",
		Email:    "gperson@example.com",
	})
	require.NoError(t, err)
	assert.Len(t, repo.users, 1)
}

func TestResetPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := newUserService(repo)
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	oldHash := repo.users["user-1"].Password

	err = service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:       "reset-token",
		NewPassword: "newpassword42",
	})
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, repo.users["user-1"].Password)

	err = service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:       "bogus",
		NewPassword: "newpassword42",
	})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestUploadProfilePic(t *testing.T) {
	repo := newFakeUserRepository()
	service := newUserService(repo)
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	url, err := service.UploadProfilePic(context.Background(), "user-1", domain.UploadProfilePicRequest{
		Image: &multipart.FileHeader{Filename: "me.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.test/profile-pics/object-key", url)
	assert.Equal(t, url, repo.users["user-1"].ProfilePic)
}

func TestRegisterPushyToken(t *testing.T) {
	repo := newFakeUserRepository()
	service := newUserService(repo)
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	require.NoError(t, service.RegisterPushyToken(context.Background(), "user-1", domain.RegisterPushyTokenRequest{
		PushyToken: "device-token",
	}))
	assert.Equal(t, "device-token", repo.users["user-1"].PushyToken)

	err = service.RegisterPushyToken(context.Background(), "ghost", domain.RegisterPushyTokenRequest{
		PushyToken: "device-token",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteAccount_ArchivesThenRemoves(t *testing.T) {
	repo := newFakeUserRepository()
	service := newUserService(repo)
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	err = service.DeleteAccount(context.Background(), "user-1", domain.DeleteAccountRequest{
		Reason: "leaving the app",
	})
	require.NoError(t, err)

	assert.Empty(t, repo.users)
	require.Len(t, repo.archived, 1)
	assert.Equal(t, "user-1", repo.archived[0].UID)
	assert.Equal(t, "dewi@example.com", repo.archived[0].Email)
	assert.Equal(t, "leaving the app", repo.archived[0].DeletedReason)
}

func TestDeleteAccount_UnknownUser(t *testing.T) {
	repo := newFakeUserRepository()
	service := newUserService(repo)

	err := service.DeleteAccount(context.Background(), "ghost", domain.DeleteAccountRequest{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, repo.archived)
}
