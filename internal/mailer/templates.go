package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"aris-service/internal/training"
)

// EmailType selects which notification template is rendered.
type EmailType string

const (
	TypeProfileSent         EmailType = "profile_sent"
	TypeSkillAlignment      EmailType = "skill_alignment"
	TypeTrainingScheduled   EmailType = "training_scheduled"
	TypeInterviewScheduled  EmailType = "interview_scheduled"
	TypeManagerConfirmation EmailType = "manager_confirmation"
	TypeGeneral             EmailType = "general"
)

// TemplateData carries the per-type fields referenced by the templates.
// Unused fields are simply ignored by templates that do not reference them.
type TemplateData struct {
	Subject        string
	Message        string
	ClientName     string
	ProjectName    string
	EmployeeName   string
	EmployeeEmail  string
	Role           string
	Department     string
	HRTeamName     string
	TrainingSkills []string
	Duration       string
	ApproveURL     string
	RejectURL      string
	FromEmail      string
	Training       map[string][]training.Resource
}

const baseStyle = `body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; background-color: #f5f5f5; }
.container { max-width: 600px; margin: 0 auto; background-color: white; }
.header { background-color: #2563eb; color: white; padding: 30px 20px; text-align: center; }
.content { padding: 30px; }
.highlight { background-color: #f1f5f9; padding: 20px; border-radius: 8px; border-left: 4px solid #2563eb; margin: 20px 0; }
.footer { background-color: #f8fafc; padding: 20px; text-align: center; color: #64748b; }
.skill { display: inline-block; background-color: #e9ecef; color: #495057; padding: 4px 8px; border-radius: 3px; font-size: 12px; margin: 2px; }
.button { display: inline-block; padding: 12px 24px; color: white; text-decoration: none; border-radius: 6px; font-weight: 600; margin: 0 8px; }
.approve { background-color: #22c55e; }
.reject { background-color: #ef4444; }`

func joinSkills(skills []string) string { return strings.Join(skills, ", ") }

var htmlTemplates = htmltemplate.Must(htmltemplate.New("emails").
	Funcs(htmltemplate.FuncMap{"joinSkills": joinSkills}).Parse(`
{{define "head"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Subject}}</title>
<style>` + baseStyle + `</style>
</head>
<body>
<div class="container">
<div class="header"><h1>ARIS Workforce Intelligence</h1></div>
<div class="content">{{end}}

{{define "foot"}}</div>
<div class="footer"><p>ARIS HR Intelligence System</p></div>
</div>
</body>
</html>{{end}}

{{define "training_block"}}{{if .Training}}<div class="highlight">
<h4>Recommended Training Resources</h4>
{{range $skill, $resources := .Training}}<h5>{{$skill}}</h5>
<ul>{{range $resources}}<li><a href="{{.URL}}">{{.Name}}</a> ({{.Provider}}{{if .Cost}}, {{.Cost}}{{end}})</li>{{end}}</ul>
{{end}}</div>{{end}}{{end}}

{{define "profile_sent"}}{{template "head" .}}
<h2>Candidate Profiles Ready for Review</h2>
<p>Dear <strong>{{if .ClientName}}{{.ClientName}}{{else}}Valued Client{{end}}</strong>,</p>
<p>We have identified and analyzed suitable candidates for your project <strong>{{if .ProjectName}}{{.ProjectName}}{{else}}your project{{end}}</strong>.</p>
<div class="highlight"><p>{{.Message}}</p></div>
<h3>What's Included</h3>
<ul>
<li>Matched candidate profiles based on your requirements</li>
<li>Detailed skill assessments and experience levels</li>
<li>Availability and project timeline compatibility</li>
</ul>
<h3>Next Steps</h3>
<ol>
<li>Review the candidate profiles</li>
<li>Schedule interviews with preferred candidates</li>
<li>Share feedback on the matches</li>
</ol>
<p>Best regards,<br><strong>ARIS HR Intelligence Team</strong></p>
{{template "foot" .}}{{end}}

{{define "skill_alignment"}}{{template "head" .}}
<h2>Training Request - Skill Alignment</h2>
<p>Dear <strong>{{if .EmployeeName}}{{.EmployeeName}}{{else}}Team Member{{end}}</strong>,</p>
<p>After reviewing your profile, we found that your current skill set does not fully match the project requirements.</p>
<p>To be considered for upcoming opportunities, we request you to undergo training in the following skills:</p>
<div>{{range .TrainingSkills}}<span class="skill">{{.}}</span> {{end}}</div>
{{template "training_block" .}}
<p>Please review the resources above or check your employee dashboard for more details.</p>
<p>Best regards,<br><strong>{{if .HRTeamName}}{{.HRTeamName}}{{else}}HR Team{{end}}</strong></p>
{{template "foot" .}}{{end}}

{{define "training_scheduled"}}{{template "head" .}}
<h2>Training Assignment</h2>
<p>Dear <strong>{{if .EmployeeName}}{{.EmployeeName}}{{else}}Team Member{{end}}</strong>,</p>
<p>You have been selected for a new project that includes specialized training.</p>
<div class="highlight">
<h3>Project Details</h3>
<ul>
<li><strong>Project:</strong> {{if .ProjectName}}{{.ProjectName}}{{else}}TBD{{end}}</li>
<li><strong>Client:</strong> {{if .ClientName}}{{.ClientName}}{{else}}TBD{{end}}</li>
<li><strong>Training Focus:</strong> {{if .TrainingSkills}}{{joinSkills .TrainingSkills}}{{else}}Advanced technical skills{{end}}</li>
<li><strong>Duration:</strong> {{if .Duration}}{{.Duration}}{{else}}4-6 weeks{{end}}</li>
</ul>
</div>
<div class="highlight"><p>{{.Message}}</p></div>
{{template "training_block" .}}
<h3>Next Steps</h3>
<ol>
<li>Training schedule will be shared within 24 hours</li>
<li>Access to learning platform and materials</li>
<li>Initial assessment and goal setting session</li>
</ol>
<p>Best regards,<br><strong>ARIS HR Development Team</strong></p>
{{template "foot" .}}{{end}}

{{define "interview_scheduled"}}{{template "head" .}}
<h2>Interview Coordination</h2>
<p>Dear <strong>{{if .ClientName}}{{.ClientName}}{{else}}Valued Client{{end}}</strong>,</p>
<p>Thank you for reviewing our candidate recommendations. We are moving forward with interview coordination.</p>
<div class="highlight"><p>{{.Message}}</p></div>
<h3>What Happens Next</h3>
<ol>
<li><strong>Schedule confirmation:</strong> available time slots within 24 hours</li>
<li><strong>Candidate preparation:</strong> briefing on your interview process</li>
<li><strong>Technical setup:</strong> video conference links and requirements</li>
<li><strong>Post-interview:</strong> feedback collection and next steps</li>
</ol>
<p>Best regards,<br><strong>ARIS Interview Coordination Team</strong></p>
{{template "foot" .}}{{end}}

{{define "manager_confirmation"}}{{template "head" .}}
<h2>Manager Action Required</h2>
<div class="highlight">
<p>{{if .EmployeeName}}{{.EmployeeName}}{{else}}Employee{{end}} is being considered for a new project. Please review the details and select an action:</p>
<ul>
<li><strong>Name:</strong> {{.EmployeeName}}</li>
<li><strong>Email:</strong> {{.EmployeeEmail}}</li>
<li><strong>Role:</strong> {{.Role}}</li>
<li><strong>Department:</strong> {{.Department}}</li>
</ul>
</div>
<div style="text-align: center; margin: 30px 0;">
<a href="{{if .ApproveURL}}{{.ApproveURL}}{{else}}#{{end}}" class="button approve">APPROVE</a>
<a href="{{if .RejectURL}}{{.RejectURL}}{{else}}#{{end}}" class="button reject">REJECT</a>
</div>
<p>Best regards,<br><strong>ARIS Team</strong></p>
{{template "foot" .}}{{end}}

{{define "general"}}{{template "head" .}}
<div class="highlight"><p>{{.Message}}</p></div>
<p>Thank you for working with ARIS. If you have any questions, please contact our team.</p>
<p>Best regards,<br><strong>ARIS Team</strong></p>
{{template "foot" .}}{{end}}
`))

var textTemplates = texttemplate.Must(texttemplate.New("emails").
	Funcs(texttemplate.FuncMap{"joinSkills": joinSkills}).Parse(`
{{define "training_block"}}{{if .Training}}Training Resources:
{{range $skill, $resources := .Training}}{{$skill}}:
{{range $resources}}- [{{.Cost}}] {{.Name}}: {{.URL}}
{{end}}{{end}}{{end}}{{end}}

{{define "profile_sent"}}ARIS Workforce Intelligence - Candidate Profiles Ready

Dear {{if .ClientName}}{{.ClientName}}{{else}}Valued Client{{end}},

We have identified suitable candidates for your project "{{if .ProjectName}}{{.ProjectName}}{{else}}your project{{end}}".

Your Message:
{{.Message}}

Next Steps:
1. Review the candidate profiles
2. Schedule interviews with preferred candidates
3. Share feedback on the matches

Best regards,
ARIS HR Intelligence Team{{end}}

{{define "skill_alignment"}}Training Request - Skill Alignment

Dear {{if .EmployeeName}}{{.EmployeeName}}{{else}}Team Member{{end}},

After reviewing your profile, we found that your current skill set does not fully match the project requirements.

To be considered for upcoming opportunities, we request you to undergo training in the following skills: {{joinSkills .TrainingSkills}}.

{{template "training_block" .}}
Best regards,
{{if .HRTeamName}}{{.HRTeamName}}{{else}}HR Team{{end}}{{end}}

{{define "training_scheduled"}}ARIS Training Assignment

Dear {{if .EmployeeName}}{{.EmployeeName}}{{else}}Team Member{{end}},

You have been selected for a new project with specialized training opportunities.

Project Details:
- Project: {{if .ProjectName}}{{.ProjectName}}{{else}}TBD{{end}}
- Client: {{if .ClientName}}{{.ClientName}}{{else}}TBD{{end}}
- Training Focus: {{if .TrainingSkills}}{{joinSkills .TrainingSkills}}{{else}}Advanced technical skills{{end}}

Personal Message:
{{.Message}}

{{template "training_block" .}}
Best regards,
ARIS HR Development Team{{end}}

{{define "interview_scheduled"}}ARIS Interview Coordination

Dear {{if .ClientName}}{{.ClientName}}{{else}}Valued Client{{end}},

Thank you for reviewing our candidate recommendations. We are moving forward with interview coordination.

Your Message:
{{.Message}}

Next Steps:
1. Schedule confirmation within 24 hours
2. Candidate preparation and briefing
3. Technical setup and requirements
4. Post-interview feedback collection

Best regards,
ARIS Interview Coordination Team{{end}}

{{define "manager_confirmation"}}Manager Action Required

{{if .EmployeeName}}{{.EmployeeName}}{{else}}Employee{{end}} is being considered for a new project.

Name: {{.EmployeeName}}
Email: {{.EmployeeEmail}}
Role: {{.Role}}
Department: {{.Department}}

Please use the web interface to approve or reject this request.{{end}}

{{define "general"}}ARIS Communication

{{.Message}}

Thank you for working with ARIS.

Best regards,
ARIS Team{{end}}
`))

// Render produces the HTML and plain-text bodies for an email type.
// Skill alignment and training emails get training resources attached
// automatically when the data names skills.
func Render(emailType EmailType, data TemplateData) (html string, text string, err error) {
	name := string(emailType)
	switch emailType {
	case TypeProfileSent, TypeSkillAlignment, TypeTrainingScheduled, TypeInterviewScheduled, TypeManagerConfirmation:
	default:
		name = string(TypeGeneral)
	}

	if data.Training == nil && len(data.TrainingSkills) > 0 &&
		(emailType == TypeSkillAlignment || emailType == TypeTrainingScheduled) {
		data.Training = training.TopResources(data.TrainingSkills, 2)
	}

	var htmlBuf bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&htmlBuf, name, data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", name, err)
	}

	var textBuf bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&textBuf, name, data); err != nil {
		return "", "", fmt.Errorf("failed to render text template %s: %w", name, err)
	}

	return htmlBuf.String(), strings.TrimSpace(textBuf.String()), nil
}
