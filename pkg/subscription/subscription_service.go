package subscription

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// SubscriberStore is the slice of the user repository the
	// subscription flows need to flip the subscription flag.
	SubscriberStore interface {
		GetUserByUID(ctx context.Context, uid string) (*entities.User, error)
		UpdateUser(ctx context.Context, uid string, fields map[string]any) (*entities.User, error)
	}

	SubscriptionService interface {
		CreateTransaction(ctx context.Context, userID string, req domain.CreateTransactionRequest) (*domain.CreateTransactionResponse, error)
		HandleMidtransNotification(ctx context.Context, orderID, transactionStatus, fraudStatus string) error
		HandleRevenueCatEvent(ctx context.Context, req domain.RevenueCatWebhookRequest) error
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		users                  SubscriberStore
		snapClient             snap.Client
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, users SubscriberStore, serverKey string, isProd bool) SubscriptionService {
	env := midtrans.Sandbox
	if isProd {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(serverKey, env)

	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		users:                  users,
		snapClient:             client,
	}
}

func (s *subscriptionService) CreateTransaction(ctx context.Context, userID string, req domain.CreateTransactionRequest) (*domain.CreateTransactionResponse, error) {
	user, err := s.users.GetUserByUID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	orderID := fmt.Sprintf("COOKLY-%d-%s", time.Now().Unix(), uuid.NewString()[:8])

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: req.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return nil, snapErr
	}

	transaction := &entities.SubscriptionTransaction{
		ID:          uuid.New(),
		OrderID:     orderID,
		UserID:      userID,
		GrossAmount: req.GrossAmount,
		Status:      "pending",
	}
	if err := s.subscriptionRepository.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	return &domain.CreateTransactionResponse{
		OrderID:     orderID,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *subscriptionService) HandleMidtransNotification(ctx context.Context, orderID, transactionStatus, fraudStatus string) error {
	transaction, err := s.subscriptionRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return domain.ErrTransactionNotFound
	}

	status := transactionStatus
	subscribed := false
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			status = "settlement"
			subscribed = true
		}
	case "settlement":
		subscribed = true
	case "deny", "cancel", "expire", "failure":
		status = transactionStatus
	default:
		// pending and the like keep the stored status
		return nil
	}

	if err := s.subscriptionRepository.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	if subscribed {
		_, err = s.users.UpdateUser(ctx, transaction.UserID, map[string]any{"is_subscribed_user": true})
		return err
	}
	return nil
}

func (s *subscriptionService) HandleRevenueCatEvent(ctx context.Context, req domain.RevenueCatWebhookRequest) error {
	if req.Event == nil || req.Event.AppUserID == "" {
		return domain.ErrInvalidWebhookPayload
	}

	var subscribed bool
	switch strings.ToUpper(req.Event.Type) {
	case "INITIAL_PURCHASE", "RENEWAL", "UNCANCELLATION", "NON_RENEWING_PURCHASE", "TRANSFER":
		subscribed = true
	case "EXPIRATION", "BILLING_ISSUE":
		subscribed = false
	default:
		// CANCELLATION and TEST keep access until the period expires
		return nil
	}

	user, err := s.users.GetUserByUID(ctx, req.Event.AppUserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.IsSubscribedUser == subscribed {
		return nil
	}

	_, err = s.users.UpdateUser(ctx, user.UID, map[string]any{"is_subscribed_user": subscribed})
	return err
}
