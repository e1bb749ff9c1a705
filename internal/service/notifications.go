package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samandr77/microservices/mro/internal/entity"
)

const overdueBatch = 500

func (s *Service) notifySMSReportFiled(ctx context.Context, p entity.Principal, r entity.SMSReport) {
	admins, err := s.repo.CompanyUsers(ctx, p.CompanyID, entity.PrivilegeAdmin)
	if err != nil {
		slog.WarnContext(ctx, "list admins for sms notification", "report_id", r.ID, "error", err)
		return
	}

	recipients := make([]string, 0, len(admins))

	for _, a := range admins {
		if a.ID != p.UserID && a.Email != "" {
			recipients = append(recipients, a.Email)
		}
	}

	if len(recipients) == 0 {
		return
	}

	s.notifier.Notify(ctx, entity.Notification{
		CompanyID:   p.CompanyID,
		Recipients:  recipients,
		Subject:     fmt.Sprintf("New %s SMS report: %s", r.Severity, r.Title),
		Body:        fmt.Sprintf("%s filed a safety report on %s.\n\n%s", p.FullName(), r.OccurredAt.Format(time.DateOnly), r.Description),
		ContentType: entity.ContentTypePlain,
	})
}

func (s *Service) notifyAssignment(ctx context.Context, p entity.Principal, a entity.CorrectiveAction, assignee entity.User) {
	if assignee.Email == "" || assignee.ID == p.UserID {
		return
	}

	s.notifier.Notify(ctx, entity.Notification{
		CompanyID:  a.CompanyID,
		Recipients: []string{assignee.Email},
		Subject:    "Corrective action assigned: " + a.Title,
		Body: fmt.Sprintf("%s assigned you a %s priority corrective action due %s.\n\n%s",
			p.FullName(), a.Priority, a.DueDate.Format(time.DateOnly), a.Description),
		ContentType: entity.ContentTypePlain,
	})
}

// NotifyOverdueCorrectiveActions reminds assignees of every overdue action across all companies. It returns
// how many reminders were sent.
func (s *Service) NotifyOverdueCorrectiveActions(ctx context.Context) (int, error) {
	actions, err := s.repo.OverdueCorrectiveActions(ctx, time.Now(), overdueBatch)
	if err != nil {
		return 0, fmt.Errorf("list overdue corrective actions: %w", err)
	}

	sent := 0

	for _, a := range actions {
		if !a.AssignedTo.Valid {
			continue
		}

		u, err := s.repo.CompanyUser(ctx, a.CompanyID, a.AssignedTo.UUID)
		if err != nil {
			slog.WarnContext(ctx, "overdue reminder assignee", "action_id", a.ID, "error", err)
			continue
		}

		if u.Email == "" {
			continue
		}

		s.notifier.Notify(ctx, entity.Notification{
			CompanyID:  a.CompanyID,
			Recipients: []string{u.Email},
			Subject:    "Overdue corrective action: " + a.Title,
			Body: fmt.Sprintf("The corrective action %q was due %s and is still %s.",
				a.Title, a.DueDate.Format(time.DateOnly), a.Status),
			ContentType: entity.ContentTypePlain,
		})

		sent++
	}

	return sent, nil
}
