package seed

import "portfolio-cms/app/server/models"

// 示例内容，部署之后在管理后台里替换

var starterProfile = models.Profile{
	Name:     "Your Name",
	Title:    "Software Engineer",
	Headline: "Building reliable systems one commit at a time",
	About:    "Write a short introduction about yourself here.",
	Email:    "hello@example.com",
	Location: "Remote",
	LinkedIn: "https://linkedin.com/in/your-name",
	GitHub:   "https://github.com/your-name",
}

var starterSkills = []models.Skill{
	{Name: "Go", Category: "Programming", Order: 1},
	{Name: "SQL", Category: "Programming", Order: 2},
	{Name: "PostgreSQL", Category: "Data", Order: 1},
	{Name: "Redis", Category: "Data", Order: 2},
	{Name: "Docker", Category: "Tools", Order: 1},
}

var starterExperience = []models.Experience{
	{
		Title:    "Backend Engineer",
		Company:  "Example Company",
		Location: "Remote",
		Period:   "01/2023 – Present",
		Responsibilities: []string{
			"Designed and maintained HTTP APIs",
			"Operated PostgreSQL and Redis in production",
		},
		Order: 1,
	},
}

var starterEducation = []models.Education{
	{
		Degree:       "Bachelor of Science",
		Institution:  "Example University",
		FieldOfStudy: "Computer Science",
		Location:     "Somewhere",
		Period:       "09/2018 – 06/2022",
		Description:  "Describe your studies here.",
		Highlights:   []string{"Distributed systems", "Databases"},
		Order:        1,
	},
}

var starterCertifications = []models.Certification{
	{Name: "Example Certification", IssuingOrganization: "Example Org", Year: "2024", Order: 1},
}

var starterProjects = []models.Project{
	{
		Title:            "Portfolio CMS",
		ProblemStatement: "Keeping a portfolio site up to date without redeploying.",
		Description:      "A small content management backend for a personal portfolio.",
		Technologies:     []string{"Go", "PostgreSQL", "Redis"},
		Role:             "Author",
		Outcome:          "Content is edited from the admin dashboard.",
		Status:           models.ProjectStatusCompleted,
		Visible:          true,
		Order:            1,
	},
}
