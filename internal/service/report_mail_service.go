package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"teamhours-be/internal/entities"
	"teamhours-be/internal/mailer"
	"teamhours-be/internal/models"
	"teamhours-be/internal/report"
	"teamhours-be/internal/repository"
	"teamhours-be/internal/timecalc"

	"github.com/google/uuid"
)

// ReportMailService exports the sender's monthly work hours and emails the
// spreadsheet to a comma-separated list of recipient user ids.
type ReportMailService interface {
	SendWorkHoursReport(ctx context.Context, senderID, recipientIDs, month string, summary *string) (*models.SendReportResponse, error)
}

type reportMailService struct {
	users       repository.UserRepository
	exporter    report.Exporter
	mailer      mailer.Mailer
	sendTimeout time.Duration
}

// NewReportMailService creates a new report-mail service
func NewReportMailService(users repository.UserRepository, exporter report.Exporter, m mailer.Mailer, sendTimeout time.Duration) ReportMailService {
	return &reportMailService{
		users:       users,
		exporter:    exporter,
		mailer:      m,
		sendTimeout: sendTimeout,
	}
}

// SendWorkHoursReport runs the whole dispatch: export, temp file, recipient
// resolution, one send per recipient. The temp file is removed on every exit
// path. Per-recipient failures do not stop the batch; counts are reported.
func (s *reportMailService) SendWorkHoursReport(ctx context.Context, senderID, recipientIDs, monthStr string, summary *string) (*models.SendReportResponse, error) {
	month, err := timecalc.ParseMonth(monthStr)
	if err != nil {
		return nil, invalidInput("Month must be in YYYY-MM format.")
	}

	sender, err := s.users.FindByID(senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sender: %w", err)
	}

	content, err := s.exporter.Export(sender.ID, month)
	if err != nil {
		return nil, err
	}

	// Unique per request so concurrent exports never collide.
	pattern := fmt.Sprintf("work_hours_%s_%d_%d_%d_*.xlsx",
		sender.AccountID, time.Now().Unix(), month.Year(), int(month.Month()))
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			log.Printf("Warning: failed to remove temp report file %s: %v", tmpPath, err)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	recipients := s.resolveRecipients(recipientIDs)
	if len(recipients) == 0 {
		return nil, ErrNoValidRecipients
	}

	body, err := mailer.RenderWorkHoursBody(monthStr, sender.FullName(), summary)
	if err != nil {
		return nil, fmt.Errorf("failed to render email body: %w", err)
	}
	subject := fmt.Sprintf("Work Hours - %s", month.Format(timecalc.MonthLayout))
	attachmentName := fmt.Sprintf("work_hours_%s.xlsx", month.Format(timecalc.MonthLayout))

	resp := &models.SendReportResponse{}
	for _, recipient := range recipients {
		if recipient.Email == nil || *recipient.Email == "" {
			continue
		}
		if err := s.sendOne(ctx, *recipient.Email, subject, body, tmpPath, attachmentName); err != nil {
			log.Printf("Warning: failed to send work hours report to %s: %v", *recipient.Email, err)
			resp.Failed++
			continue
		}
		resp.Sent++
	}

	return resp, nil
}

// resolveRecipients splits the comma-separated id list and resolves each id
// to a user record. Ids that are not UUIDs or match no user are skipped
// silently, exactly like unknown recipients.
func (s *reportMailService) resolveRecipients(recipientIDs string) []*entities.User {
	var recipients []*entities.User
	for _, id := range strings.Split(recipientIDs, ",") {
		if _, err := uuid.Parse(id); err != nil {
			continue
		}
		user, err := s.users.FindByID(id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			log.Printf("Warning: failed to resolve recipient %s: %v", id, err)
			continue
		}
		recipients = append(recipients, user)
	}
	return recipients
}

func (s *reportMailService) sendOne(ctx context.Context, to, subject, body, path, name string) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()
	return s.mailer.Send(sendCtx, to, subject, body, path, name)
}
