package models

// Project represents a software project card
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Stack        []string `json:"stack" yaml:"stack"`
	PreviewImage string   `json:"preview_image" yaml:"preview_image"`
	Gallery      []string `json:"gallery,omitempty" yaml:"gallery"`
	DemoLink     string   `json:"demo_link,omitempty" yaml:"demo_link"`
	RepoLink     string   `json:"repo_link,omitempty" yaml:"repo_link"`
	Date         string   `json:"date" yaml:"date"`
}

// Images returns the carousel images for the project modal.
// An empty gallery falls back to the single preview image.
func (p Project) Images() []string {
	if len(p.Gallery) > 0 {
		return p.Gallery
	}
	if p.PreviewImage == "" {
		return nil
	}
	return []string{p.PreviewImage}
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
