package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"linkedin-agent/config"
	"linkedin-agent/models"
)

// Store loads post templates from a directory of JSON files, one file per
// template. When the directory is empty the documented default set is
// synthesized and persisted, so two loads without external modification
// always yield the same templates.
type Store struct {
	Dir    string
	Logger *logrus.Logger
}

func NewStore(dir string, logger *logrus.Logger) *Store {
	return &Store{Dir: dir, Logger: logger}
}

// LoadTemplates scans the template directory, creating it if necessary.
// Templates come back in file-name order; a malformed template file is a
// ConfigError for the operator to fix, not something to skip silently.
func (s *Store) LoadTemplates() ([]models.Template, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return nil, &config.ConfigError{Reason: "creating template directory", Err: err}
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, &config.ConfigError{Reason: "reading template directory", Err: err}
	}

	var templates []models.Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.Dir, entry.Name()))
		if err != nil {
			return nil, &config.ConfigError{Reason: fmt.Sprintf("reading template %s", entry.Name()), Err: err}
		}
		var tpl models.Template
		if err := json.Unmarshal(data, &tpl); err != nil {
			return nil, &config.ConfigError{Reason: fmt.Sprintf("parsing template %s", entry.Name()), Err: err}
		}
		templates = append(templates, tpl)
	}

	if len(templates) == 0 {
		s.Logger.Info("Creating default templates...")
		if err := s.writeDefaults(); err != nil {
			return nil, err
		}
		return append([]models.Template(nil), defaultTemplates...), nil
	}

	return templates, nil
}

func (s *Store) writeDefaults() error {
	for _, tpl := range defaultTemplates {
		data, err := json.MarshalIndent(tpl, "", "  ")
		if err != nil {
			return &config.ConfigError{Reason: fmt.Sprintf("encoding default template %s", tpl.Name), Err: err}
		}
		path := filepath.Join(s.Dir, tpl.Name+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return &config.ConfigError{Reason: fmt.Sprintf("writing default template %s", tpl.Name), Err: err}
		}
	}
	return nil
}

// OrderByNames returns the templates matching names, in the order names gives
// them. The rotation index in the scheduler configuration refers to this
// order. Unknown names are skipped; when nothing matches (or names is empty)
// all loaded templates are eligible.
func OrderByNames(templates []models.Template, names []string) []models.Template {
	if len(names) == 0 {
		return templates
	}
	byName := make(map[string]models.Template, len(templates))
	for _, tpl := range templates {
		byName[tpl.Name] = tpl
	}
	ordered := make([]models.Template, 0, len(names))
	for _, name := range names {
		if tpl, ok := byName[name]; ok {
			ordered = append(ordered, tpl)
		}
	}
	if len(ordered) == 0 {
		return templates
	}
	return ordered
}
