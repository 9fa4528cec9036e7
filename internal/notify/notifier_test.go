package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/richardliu001/newsletter-service/internal/domain"
	"github.com/richardliu001/newsletter-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConfirmationLink(t *testing.T) {
	assert.Equal(t,
		"https://api.example.com/subscriptions/confirm?subscription_token=abc123",
		ConfirmationLink("https://api.example.com", "abc123"))
}

func TestSendConfirmation_BodiesContainLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	recipient, err := domain.ParseSubscriberEmail("ursula@domain.com")
	require.NoError(t, err)

	const link = "https://api.example.com/subscriptions/confirm?subscription_token=abcdefghijklmnopqrstuvwxy"
	client.EXPECT().
		Send(gomock.Any(), recipient, "Welcome!", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.SubscriberEmail, _, html, text string) error {
			assert.Contains(t, html, `<a href="`+link+`">here</a>`)
			assert.Equal(t, "Welcome to our newsletter!\nVisit "+link+" to confirm your subscription.", text)
			return nil
		})

	n, err := NewNotifier(client, "https://api.example.com/")
	require.NoError(t, err)
	require.NoError(t, n.SendConfirmation(context.Background(), recipient, "abcdefghijklmnopqrstuvwxy"))
}

func TestSendConfirmation_PropagatesDeliveryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	boom := errors.New("provider unavailable")
	client.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

	recipient, err := domain.ParseSubscriberEmail("ursula@domain.com")
	require.NoError(t, err)
	n, err := NewNotifier(client, "https://api.example.com")
	require.NoError(t, err)
	assert.ErrorIs(t, n.SendConfirmation(context.Background(), recipient, "tok"), boom)
}
