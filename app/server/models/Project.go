package models

const (
	ProjectStatusCompleted  = "Completed"
	ProjectStatusInProgress = "In Progress"
)

type Project struct {
	Base

	Title            string   `gorm:"column:title" json:"title"`
	ProblemStatement string   `gorm:"column:problem_statement" json:"problem_statement"`
	Description      string   `gorm:"column:description" json:"description"`
	Technologies     []string `gorm:"column:technologies;serializer:json" json:"technologies"`
	Role             string   `gorm:"column:role" json:"role"`
	Outcome          string   `gorm:"column:outcome" json:"outcome"`
	ImageURL         string   `gorm:"column:image_url" json:"image_url"` // 可以是上传的文件，也可以是外部链接
	ProjectURL       string   `gorm:"column:project_url" json:"project_url"`
	GitHubURL        string   `gorm:"column:github_url" json:"github_url"`
	Status           string   `gorm:"column:status" json:"status"`
	Visible          bool     `gorm:"column:visible;index" json:"visible"` // 隐藏的项目不会出现在公开列表里（带 visible=true 时）
	Order            int      `gorm:"column:sort_order" json:"order"`
}
