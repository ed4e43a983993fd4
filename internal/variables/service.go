package variables

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"

	"gopkg.in/yaml.v2"
)

type Service struct {
	filesystem billy.Basic
}

func NewService(fs billy.Basic) Service {
	return Service{filesystem: fs}
}

// FromPathsAndPairs merges template variables from YAML files and key=value
// command line pairs. Later files override earlier ones and pairs override
// files.
func (s Service) FromPathsAndPairs(paths []string, pairs []string) (map[string]interface{}, error) {
	variables := map[string]interface{}{}

	for _, path := range paths {
		file, err := s.filesystem.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open file %q: %w", path, err)
		}

		err = yaml.NewDecoder(file).Decode(&variables)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("unable to YAML parse %q: %w", path, err)
		}
	}

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)

		if len(parts) < 2 {
			return nil, fmt.Errorf("could not parse variable %q: expected variable in \"key=value\" form", pair)
		}

		variables[parts[0]] = parts[1]
	}

	return variables, nil
}
