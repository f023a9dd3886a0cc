package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login success"
	MessageSuccessGetProfile       = "success get profile"
	MessageSuccessUpdateProfile    = "profile updated successfully"
	MessageSuccessUploadProfilePic = "profile picture uploaded successfully"
	MessageSuccessForgotPassword   = "reset password email sent"
	MessageSuccessResetPassword    = "password reset successfully"
	MessageSuccessRegisterPushy    = "push token registered successfully"
	MessageSuccessDeleteAccount    = "account deleted successfully"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetProfile       = "failed to get profile"
	MessageFailedUpdateProfile    = "failed to update profile"
	MessageFailedUploadProfilePic = "failed to upload profile picture"
	MessageFailedForgotPassword   = "failed to send reset password email"
	MessageFailedResetPassword    = "failed to reset password"
	MessageFailedRegisterPushy    = "failed to register push token"
	MessageFailedDeleteAccount    = "failed to delete account"

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrWrongAuthProvider = errors.New("account uses a different sign-in method")
)

type (
	RegisterRequest struct {
		UID                   string   `json:"uid" validate:"required"`
		FullName              string   `json:"fullName" validate:"required"`
		Email                 string   `json:"email" validate:"required,email"`
		Password              string   `json:"password" validate:"required,min=8"`
		AllergenicIngredients []string `json:"allergenicIngredients"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// GoogleSignInRequest carries the identity already verified by the
	// mobile client's Google flow.
	GoogleSignInRequest struct {
		UID        string `json:"uid" validate:"required"`
		FullName   string `json:"fullName" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		ProfilePic string `json:"profilePic"`
	}

	AuthResponse struct {
		Token string      `json:"token"`
		User  UserProfile `json:"user"`
	}

	UserProfile struct {
		UID                   string   `json:"uid"`
		FullName              string   `json:"fullName"`
		Email                 string   `json:"email"`
		ProfilePic            string   `json:"profilePic,omitempty"`
		AllergenicIngredients []string `json:"allergenicIngredients"`
		AuthProvider          string   `json:"authProvider"`
		Role                  string   `json:"role"`
		IsSubscribedUser      bool     `json:"isSubscribedUser"`
	}

	UpdateProfileRequest struct {
		FullName              *string  `json:"fullName"`
		AllergenicIngredients []string `json:"allergenicIngredients"`
	}

	UploadProfilePicRequest struct {
		Image *multipart.FileHeader `validate:"required"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=8"`
	}

	RegisterPushyTokenRequest struct {
		PushyToken string `json:"pushyToken" validate:"required"`
	}

	DeleteAccountRequest struct {
		Reason string `json:"reason"`
	}
)
