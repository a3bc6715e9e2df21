package service

import (
	"testing"

	"aris-service/internal/mailer"
	"aris-service/internal/models"
)

func TestTemplateDataFromBody(t *testing.T) {
	body := &models.SendEmailBody{
		Message: "Please review.",
		Data: map[string]any{
			"clientName":   "TechCorp",
			"projectName":  "Apollo",
			"employeeName": "Asha Rao",
			"skills":       []any{"Java", "AWS", 42},
		},
	}

	data := templateDataFrom(body)
	if data.ClientName != "TechCorp" || data.ProjectName != "Apollo" {
		t.Errorf("client/project = %s/%s, want TechCorp/Apollo", data.ClientName, data.ProjectName)
	}
	// Non-string entries in the skills array are dropped.
	if len(data.TrainingSkills) != 2 || data.TrainingSkills[0] != "Java" {
		t.Errorf("training skills = %v, want [Java AWS]", data.TrainingSkills)
	}
}

func TestTemplateDataFromBodyTrainingSkillsFallback(t *testing.T) {
	body := &models.SendEmailBody{
		Message: "Training ahead.",
		Data: map[string]any{
			"trainingSkills": []string{"Docker"},
		},
	}

	data := templateDataFrom(body)
	if len(data.TrainingSkills) != 1 || data.TrainingSkills[0] != "Docker" {
		t.Errorf("training skills = %v, want [Docker]", data.TrainingSkills)
	}
}

func TestTemplateDataFromEmptyData(t *testing.T) {
	data := templateDataFrom(&models.SendEmailBody{Message: "hi"})
	if data.Message != "hi" || data.ClientName != "" || len(data.TrainingSkills) != 0 {
		t.Errorf("unexpected data from empty payload: %+v", data)
	}
}

func TestStatusForEmailType(t *testing.T) {
	cases := map[string]models.RequestStatus{
		"profile_sent":        models.StatusProfilesSent,
		"training_scheduled":  models.StatusTrainingScheduled,
		"interview_scheduled": models.StatusInterviewsScheduled,
	}
	for emailType, want := range cases {
		got, ok := statusForEmailType[mailer.EmailType(emailType)]
		if !ok || got != want {
			t.Errorf("status for %s = %s, want %s", emailType, got, want)
		}
	}
}
