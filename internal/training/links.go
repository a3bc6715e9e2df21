// Package training maps skills to curated learning resources used in
// training plans and notification emails.
package training

import (
	"sort"
	"strings"
)

type ResourceType string

const (
	TypeCourse        ResourceType = "course"
	TypeCertification ResourceType = "certification"
	TypeTutorial      ResourceType = "tutorial"
	TypeDocumentation ResourceType = "documentation"
)

type Cost string

const (
	CostFree     Cost = "free"
	CostPaid     Cost = "paid"
	CostFreemium Cost = "freemium"
)

type Resource struct {
	Name     string       `json:"name"`
	URL      string       `json:"url"`
	Provider string       `json:"provider"`
	Type     ResourceType `json:"type"`
	Level    string       `json:"skillLevel"`
	Duration string       `json:"duration,omitempty"`
	Cost     Cost         `json:"cost,omitempty"`
}

var catalog = map[string][]Resource{
	"Java": {
		{Name: "Java Programming Masterclass", URL: "https://www.udemy.com/course/java-the-complete-java-developer-course/", Provider: "Udemy", Type: TypeCourse, Level: "beginner", Duration: "80 hours", Cost: CostPaid},
		{Name: "Oracle Java Certification", URL: "https://education.oracle.com/java-certification", Provider: "Oracle", Type: TypeCertification, Level: "advanced", Cost: CostPaid},
		{Name: "Java Tutorials - Oracle", URL: "https://docs.oracle.com/javase/tutorial/", Provider: "Oracle", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"Python": {
		{Name: "Python for Everybody", URL: "https://www.coursera.org/specializations/python", Provider: "Coursera", Type: TypeCourse, Level: "beginner", Duration: "8 months", Cost: CostFreemium},
		{Name: "Python Programming - Udemy", URL: "https://www.udemy.com/course/complete-python-bootcamp/", Provider: "Udemy", Type: TypeCourse, Level: "beginner", Duration: "22 hours", Cost: CostPaid},
		{Name: "Python.org Tutorial", URL: "https://docs.python.org/3/tutorial/", Provider: "Python Software Foundation", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"JavaScript": {
		{Name: "JavaScript: The Complete Guide", URL: "https://www.udemy.com/course/javascript-the-complete-guide-2020-beginner-advanced/", Provider: "Udemy", Type: TypeCourse, Level: "beginner", Duration: "52 hours", Cost: CostPaid},
		{Name: "MDN JavaScript Guide", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", Provider: "Mozilla", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"AWS": {
		{Name: "AWS Training and Certification", URL: "https://aws.amazon.com/training/", Provider: "Amazon Web Services", Type: TypeCourse, Level: "beginner", Cost: CostFree},
		{Name: "AWS Solutions Architect Certification", URL: "https://aws.amazon.com/certification/certified-solutions-architect-associate/", Provider: "Amazon Web Services", Type: TypeCertification, Level: "advanced", Cost: CostPaid},
		{Name: "AWS Free Tier", URL: "https://aws.amazon.com/free/", Provider: "Amazon Web Services", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"Azure": {
		{Name: "Microsoft Learn - Azure", URL: "https://learn.microsoft.com/en-us/azure/", Provider: "Microsoft", Type: TypeCourse, Level: "beginner", Cost: CostFree},
		{Name: "Azure Fundamentals Certification", URL: "https://learn.microsoft.com/en-us/certifications/azure-fundamentals/", Provider: "Microsoft", Type: TypeCertification, Level: "beginner", Cost: CostPaid},
	},
	"GCP": {
		{Name: "Google Cloud Training", URL: "https://cloud.google.com/training", Provider: "Google Cloud", Type: TypeCourse, Level: "beginner", Cost: CostFree},
		{Name: "Google Cloud Professional Certification", URL: "https://cloud.google.com/certification", Provider: "Google Cloud", Type: TypeCertification, Level: "advanced", Cost: CostPaid},
	},
	"Kubernetes": {
		{Name: "Kubernetes Fundamentals", URL: "https://training.linuxfoundation.org/training/kubernetes-fundamentals/", Provider: "Linux Foundation", Type: TypeCourse, Level: "beginner", Duration: "4 days", Cost: CostPaid},
		{Name: "CKA - Certified Kubernetes Administrator", URL: "https://www.cncf.io/certification/cka/", Provider: "CNCF", Type: TypeCertification, Level: "advanced", Cost: CostPaid},
		{Name: "Kubernetes Documentation", URL: "https://kubernetes.io/docs/home/", Provider: "Kubernetes", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"Docker": {
		{Name: "Docker for Beginners", URL: "https://www.udemy.com/course/docker-mastery/", Provider: "Udemy", Type: TypeCourse, Level: "beginner", Duration: "20 hours", Cost: CostPaid},
		{Name: "Docker Official Documentation", URL: "https://docs.docker.com/", Provider: "Docker", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"React": {
		{Name: "React - The Complete Guide", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/", Provider: "Udemy", Type: TypeCourse, Level: "beginner", Duration: "40 hours", Cost: CostPaid},
		{Name: "React Official Tutorial", URL: "https://react.dev/learn", Provider: "React", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"Angular": {
		{Name: "Angular - The Complete Guide", URL: "https://www.udemy.com/course/the-complete-guide-to-angular-2/", Provider: "Udemy", Type: TypeCourse, Level: "beginner", Duration: "35 hours", Cost: CostPaid},
		{Name: "Angular Documentation", URL: "https://angular.io/docs", Provider: "Angular", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"Spring Boot": {
		{Name: "Spring Boot Masterclass", URL: "https://www.udemy.com/course/spring-boot-masterclass/", Provider: "Udemy", Type: TypeCourse, Level: "intermediate", Duration: "25 hours", Cost: CostPaid},
		{Name: "Spring Boot Reference Documentation", URL: "https://spring.io/projects/spring-boot", Provider: "Spring", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"Machine Learning": {
		{Name: "Machine Learning Course - Stanford", URL: "https://www.coursera.org/learn/machine-learning", Provider: "Coursera", Type: TypeCourse, Level: "beginner", Duration: "11 weeks", Cost: CostFreemium},
		{Name: "Deep Learning Specialization", URL: "https://www.coursera.org/specializations/deep-learning", Provider: "Coursera", Type: TypeCourse, Level: "intermediate", Duration: "5 months", Cost: CostFreemium},
		{Name: "Fast.ai Practical Deep Learning", URL: "https://course.fast.ai/", Provider: "Fast.ai", Type: TypeCourse, Level: "beginner", Cost: CostFree},
	},
	"Data Science": {
		{Name: "Data Science Specialization", URL: "https://www.coursera.org/specializations/jhu-data-science", Provider: "Coursera", Type: TypeCourse, Level: "beginner", Duration: "10 months", Cost: CostFreemium},
		{Name: "Python for Data Science", URL: "https://www.udemy.com/course/python-for-data-science-and-machine-learning-bootcamp/", Provider: "Udemy", Type: TypeCourse, Level: "beginner", Duration: "25 hours", Cost: CostPaid},
	},
	"SQL": {
		{Name: "SQL for Data Science", URL: "https://www.coursera.org/learn/sql-for-data-science", Provider: "Coursera", Type: TypeCourse, Level: "beginner", Duration: "4 weeks", Cost: CostFreemium},
		{Name: "SQL Tutorial - W3Schools", URL: "https://www.w3schools.com/sql/", Provider: "W3Schools", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"Jenkins": {
		{Name: "Jenkins Bootcamp", URL: "https://www.udemy.com/course/jenkins-from-zero-to-hero/", Provider: "Udemy", Type: TypeCourse, Level: "beginner", Duration: "15 hours", Cost: CostPaid},
		{Name: "Jenkins Documentation", URL: "https://www.jenkins.io/doc/", Provider: "Jenkins", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"Git": {
		{Name: "Git Complete Course", URL: "https://www.udemy.com/course/git-complete/", Provider: "Udemy", Type: TypeCourse, Level: "beginner", Duration: "6 hours", Cost: CostPaid},
		{Name: "Git Documentation", URL: "https://git-scm.com/doc", Provider: "Git", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
	"MongoDB": {
		{Name: "MongoDB University", URL: "https://university.mongodb.com/", Provider: "MongoDB", Type: TypeCourse, Level: "beginner", Cost: CostFree},
		{Name: "MongoDB Certification", URL: "https://university.mongodb.com/certification", Provider: "MongoDB", Type: TypeCertification, Level: "advanced", Cost: CostPaid},
	},
	"PostgreSQL": {
		{Name: "PostgreSQL Tutorial", URL: "https://www.postgresqltutorial.com/", Provider: "PostgreSQL Tutorial", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
		{Name: "PostgreSQL Documentation", URL: "https://www.postgresql.org/docs/", Provider: "PostgreSQL", Type: TypeTutorial, Level: "beginner", Cost: CostFree},
	},
}

var defaultResources = []Resource{
	{Name: "General Programming Resources", URL: "https://www.udemy.com/", Provider: "Udemy", Type: TypeCourse, Level: "beginner", Cost: CostPaid},
	{Name: "FreeCodeCamp", URL: "https://www.freecodecamp.org/", Provider: "FreeCodeCamp", Type: TypeCourse, Level: "beginner", Cost: CostFree},
}

// ResourcesForSkill resolves the catalog entry for a skill. Lookup tries an
// exact key, then a case-insensitive key, then a substring match either way,
// and falls back to general resources for unknown skills.
func ResourcesForSkill(skill string) []Resource {
	if resources, ok := catalog[skill]; ok {
		return resources
	}

	normalized := strings.ToLower(strings.TrimSpace(skill))
	for key, resources := range catalog {
		if strings.ToLower(key) == normalized {
			return resources
		}
	}
	for key, resources := range catalog {
		lower := strings.ToLower(key)
		if strings.Contains(lower, normalized) || strings.Contains(normalized, lower) {
			return resources
		}
	}

	return defaultResources
}

// ResourcesForSkills maps each skill to its resolved resources.
func ResourcesForSkills(skills []string) map[string][]Resource {
	result := make(map[string][]Resource, len(skills))
	for _, skill := range skills {
		result[skill] = ResourcesForSkill(skill)
	}
	return result
}

// resourceRank orders resources for selection: free material first, then
// tutorials and documentation, then everything else. Catalog order breaks
// ties.
func resourceRank(r Resource) int {
	switch {
	case r.Cost == CostFree:
		return 0
	case r.Type == TypeTutorial || r.Type == TypeDocumentation:
		return 1
	default:
		return 2
	}
}

func rankedResources(skill string) []Resource {
	resources := ResourcesForSkill(skill)
	ranked := make([]Resource, len(resources))
	copy(ranked, resources)
	sort.SliceStable(ranked, func(i, j int) bool {
		return resourceRank(ranked[i]) < resourceRank(ranked[j])
	})
	return ranked
}

// BestResource picks one resource for a skill, preferring free material,
// then official tutorials and documentation.
func BestResource(skill string) Resource {
	return rankedResources(skill)[0]
}

// TopResources returns up to n of the highest-ranked resources per skill,
// keyed by skill, for embedding in notification emails.
func TopResources(skills []string, n int) map[string][]Resource {
	result := make(map[string][]Resource, len(skills))
	for _, skill := range skills {
		resources := rankedResources(skill)
		if len(resources) > n {
			resources = resources[:n]
		}
		result[skill] = resources
	}
	return result
}
