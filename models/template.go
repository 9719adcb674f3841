package models

// Template is a named, reusable structure for generating post content.
// Templates are persisted as individual JSON files and edited by the
// template-manager collaborator; the agent treats them as read-only.
type Template struct {
	Name         string              `json:"name" mapstructure:"name"`
	Title        string              `json:"title" mapstructure:"title"`
	Description  string              `json:"description,omitempty" mapstructure:"description"`
	Category     string              `json:"category,omitempty" mapstructure:"category"`
	Hooks        []string            `json:"hooks" mapstructure:"hooks"`
	Structure    map[string]string   `json:"structure" mapstructure:"structure"`
	Hashtags     []string            `json:"hashtags" mapstructure:"hashtags"`
	Variables    map[string][]string `json:"variables,omitempty" mapstructure:"variables"`
	Created      string              `json:"created,omitempty" mapstructure:"created"`
	LastModified string              `json:"lastModified,omitempty" mapstructure:"lastModified"`
}
