package user

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"Cookly-Backend/internal/utils"
	"Cookly-Backend/internal/utils/mailing"
	"Cookly-Backend/internal/utils/storage"
	"Cookly-Backend/pkg/jwt"
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		GoogleSignIn(ctx context.Context, req domain.GoogleSignInRequest) (*domain.AuthResponse, error)
		Me(ctx context.Context, uid string) (*domain.UserProfile, error)
		UpdateProfile(ctx context.Context, uid string, req domain.UpdateProfileRequest) (*domain.UserProfile, error)
		UploadProfilePic(ctx context.Context, uid string, req domain.UploadProfilePicRequest) (string, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		RegisterPushyToken(ctx context.Context, uid string, req domain.RegisterPushyTokenRequest) error
		DeleteAccount(ctx context.Context, uid string, req domain.DeleteAccountRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	email := strings.ToLower(req.Email)

	existingByUID, err := s.userRepository.GetUserByUID(ctx, req.UID)
	if err != nil {
		return nil, err
	}
	existingByEmail, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingByUID != nil || existingByEmail != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		UID:                   req.UID,
		FullName:              req.FullName,
		Email:                 email,
		Password:              string(hashed),
		AllergenicIngredients: datatypes.NewJSONSlice(req.AllergenicIngredients),
		AuthProvider:          entities.AuthProviderPassword,
		Role:                  domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token := s.jwtService.GenerateTokenUser(user.UID, user.Role)
	return &domain.AuthResponse{Token: token, User: toProfile(user)}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.AuthProvider != entities.AuthProviderPassword {
		return nil, domain.ErrWrongAuthProvider
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidPassword
	}

	token := s.jwtService.GenerateTokenUser(user.UID, user.Role)
	return &domain.AuthResponse{Token: token, User: toProfile(user)}, nil
}

// GoogleSignIn signs in (or first registers) a user whose identity was
// already verified by the client's Google flow.
func (s *userService) GoogleSignIn(ctx context.Context, req domain.GoogleSignInRequest) (*domain.AuthResponse, error) {
	email := strings.ToLower(req.Email)

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &entities.User{
			UID:          req.UID,
			FullName:     req.FullName,
			Email:        email,
			ProfilePic:   req.ProfilePic,
			AuthProvider: entities.AuthProviderGoogle,
			Role:         domain.RoleUser,
		}
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	} else if user.AuthProvider != entities.AuthProviderGoogle {
		return nil, domain.ErrWrongAuthProvider
	}

	token := s.jwtService.GenerateTokenUser(user.UID, user.Role)
	return &domain.AuthResponse{Token: token, User: toProfile(user)}, nil
}

func (s *userService) Me(ctx context.Context, uid string) (*domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	profile := toProfile(user)
	return &profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, uid string, req domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	fields := map[string]any{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.AllergenicIngredients != nil {
		fields["allergenic_ingredients"] = datatypes.NewJSONSlice(req.AllergenicIngredients)
	}
	if len(fields) == 0 {
		return s.Me(ctx, uid)
	}

	user, err := s.userRepository.UpdateUser(ctx, uid, fields)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	profile := toProfile(user)
	return &profile, nil
}

func (s *userService) UploadProfilePic(ctx context.Context, uid string, req domain.UploadProfilePicRequest) (string, error) {
	objectKey, err := s.s3.UploadFile(ctx, "profile-pics", req.Image)
	if err != nil {
		return "", err
	}
	url := s.s3.GetPublicLinkKey(objectKey)

	user, err := s.userRepository.UpdateUser(ctx, uid, map[string]any{"profile_pic": url})
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	return url, nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(
		map[string]any{"uid": user.UID, "email": user.Email},
		15*time.Minute,
	)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := mailing.ResetPasswordEmail(user.FullName, resetLink)
	return mailing.SendMail(user.Email, "Reset your password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	uid, _ := claims["uid"].(string)
	if uid == "" {
		return domain.ErrTokenInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := s.userRepository.UpdateUser(ctx, uid, map[string]any{"password": string(hashed)})
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *userService) RegisterPushyToken(ctx context.Context, uid string, req domain.RegisterPushyTokenRequest) error {
	user, err := s.userRepository.UpdateUser(ctx, uid, map[string]any{"pushy_token": req.PushyToken})
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *userService) DeleteAccount(ctx context.Context, uid string, req domain.DeleteAccountRequest) error {
	deleted, err := s.userRepository.DeleteUser(ctx, uid, req.Reason)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}
	return nil
}

func toProfile(user *entities.User) domain.UserProfile {
	return domain.UserProfile{
		UID:                   user.UID,
		FullName:              user.FullName,
		Email:                 user.Email,
		ProfilePic:            user.ProfilePic,
		AllergenicIngredients: user.AllergenicIngredients,
		AuthProvider:          user.AuthProvider,
		Role:                  user.Role,
		IsSubscribedUser:      user.IsSubscribedUser,
	}
}
