package service

import (
	"context"
	"fmt"
	"log"

	"aris-service/internal/mailer"
	"aris-service/internal/models"
)

// NotificationService sends templated emails and advances the owning
// request's lifecycle when a notification implies a stage change.
type NotificationService struct {
	mailer   *mailer.Mailer
	requests *RequestService
}

func NewNotificationService(m *mailer.Mailer, requests *RequestService) *NotificationService {
	return &NotificationService{
		mailer:   m,
		requests: requests,
	}
}

// statusForEmailType maps notification types to the lifecycle stage the
// request moves to once that notification goes out.
var statusForEmailType = map[mailer.EmailType]models.RequestStatus{
	mailer.TypeProfileSent:        models.StatusProfilesSent,
	mailer.TypeTrainingScheduled:  models.StatusTrainingScheduled,
	mailer.TypeInterviewScheduled: models.StatusInterviewsScheduled,
}

func (s *NotificationService) SendEmail(ctx context.Context, body *models.SendEmailBody) (*mailer.SendResult, error) {
	if body.Subject == "" || body.Message == "" {
		return nil, fmt.Errorf("subject and message are required")
	}

	emailType := mailer.EmailType(body.Type)
	if body.Type == "" {
		emailType = mailer.TypeGeneral
	}

	data := templateDataFrom(body)
	result, err := s.mailer.Send(ctx, body.To, body.Subject, emailType, data)
	if err != nil {
		return nil, err
	}

	if requestID, ok := body.Data["requestId"].(string); ok && requestID != "" {
		if status, ok := statusForEmailType[emailType]; ok {
			if err := s.requests.UpdateStatus(ctx, requestID, status); err != nil {
				log.Printf("Warning: email sent but status update failed for %s: %v", requestID, err)
			}
		}
	}

	return result, nil
}

func templateDataFrom(body *models.SendEmailBody) mailer.TemplateData {
	data := mailer.TemplateData{
		Message:       body.Message,
		ClientName:    stringField(body.Data, "clientName"),
		ProjectName:   stringField(body.Data, "projectName"),
		EmployeeName:  stringField(body.Data, "employeeName"),
		EmployeeEmail: stringField(body.Data, "employeeEmail"),
		Role:          stringField(body.Data, "role"),
		Department:    stringField(body.Data, "department"),
		HRTeamName:    stringField(body.Data, "hrTeamName"),
		Duration:      stringField(body.Data, "duration"),
		ApproveURL:    stringField(body.Data, "approveUrl"),
		RejectURL:     stringField(body.Data, "rejectUrl"),
	}

	switch skills := body.Data["skills"].(type) {
	case []string:
		data.TrainingSkills = skills
	case []any:
		for _, s := range skills {
			if str, ok := s.(string); ok {
				data.TrainingSkills = append(data.TrainingSkills, str)
			}
		}
	}
	if len(data.TrainingSkills) == 0 {
		switch skills := body.Data["trainingSkills"].(type) {
		case []string:
			data.TrainingSkills = skills
		case []any:
			for _, s := range skills {
				if str, ok := s.(string); ok {
					data.TrainingSkills = append(data.TrainingSkills, str)
				}
			}
		}
	}

	return data
}

func stringField(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	if value, ok := data[key].(string); ok {
		return value
	}
	return ""
}
