package mocks

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendVerificationFunc  func(email, code string) error
	SendWelcomeFunc       func(email, name string) error
	SendPasswordResetFunc func(email, resetURL string) error
	SendResetSuccessFunc  func(email string) error

	// Sent records every dispatched message for assertions.
	Sent []SentMessage
}

// SentMessage records one dispatched notification
type SentMessage struct {
	Kind  string
	Email string
	Value string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendVerification dispatches a verification code
func (m *MockNotificationService) SendVerification(email, code string) error {
	if m.SendVerificationFunc != nil {
		return m.SendVerificationFunc(email, code)
	}
	m.Sent = append(m.Sent, SentMessage{Kind: "verification", Email: email, Value: code})
	return nil
}

// SendWelcome dispatches a welcome message
func (m *MockNotificationService) SendWelcome(email, name string) error {
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(email, name)
	}
	m.Sent = append(m.Sent, SentMessage{Kind: "welcome", Email: email, Value: name})
	return nil
}

// SendPasswordReset dispatches a reset link
func (m *MockNotificationService) SendPasswordReset(email, resetURL string) error {
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(email, resetURL)
	}
	m.Sent = append(m.Sent, SentMessage{Kind: "reset", Email: email, Value: resetURL})
	return nil
}

// SendResetSuccess dispatches a reset confirmation
func (m *MockNotificationService) SendResetSuccess(email string) error {
	if m.SendResetSuccessFunc != nil {
		return m.SendResetSuccessFunc(email)
	}
	m.Sent = append(m.Sent, SentMessage{Kind: "reset_success", Email: email})
	return nil
}
