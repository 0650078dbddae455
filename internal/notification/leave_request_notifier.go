package notification

import (
	"context"
	"strings"

	"go-leave/internal/events"
	"go-leave/internal/user"

	"go.uber.org/zap"
)

type UserDirectory interface {
	GetUserByID(ctx context.Context, id string) (user.UserResponse, error)
}

type Translator interface {
	T(locale, id string, data map[string]any) string
	DefaultLocale() string
}

// LeaveRequestNotifier mails the requesting employee when a supervisor reviews or they cancel a request.
type LeaveRequestNotifier struct {
	mailer Mailer
	users  UserDirectory
	text   Translator
	logger *zap.Logger
}

func NewLeaveRequestNotifier(mailer Mailer, users UserDirectory, text Translator, logger ...*zap.Logger) *LeaveRequestNotifier {
	l := zap.L().Named("notification.leave_request")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.leave_request")
	}
	return &LeaveRequestNotifier{mailer: mailer, users: users, text: text, logger: l}
}

func (n *LeaveRequestNotifier) Notify(ctx context.Context, event events.LeaveRequestEvent) error {
	var subjectID, bodyID string
	switch event.EventType {
	case events.LeaveRequestReviewed:
		subjectID, bodyID = "mail_reviewed_subject", "mail_reviewed_body"
	case events.LeaveRequestCanceled:
		subjectID, bodyID = "mail_canceled_subject", "mail_canceled_body"
	default:
		return nil
	}

	employee, err := n.users.GetUserByID(ctx, event.EmployeeID)
	if err != nil {
		n.logger.Warn("resolve notification recipient failed",
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return err
	}

	locale := n.text.DefaultLocale()
	status := strings.ToLower(n.text.T(locale, "status_"+strings.ToLower(event.Status), nil))
	data := map[string]any{
		"Name":      employee.FullName,
		"LeaveType": event.LeaveTypeName,
		"StartDate": event.StartDate,
		"EndDate":   event.EndDate,
		"Days":      event.NumberOfDays,
		"Status":    status,
	}

	return n.mailer.Send(ctx, employee.Email, n.text.T(locale, subjectID, data), n.text.T(locale, bodyID, data))
}
