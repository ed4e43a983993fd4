package freight

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/shearwater-tools/cutter/internal/variables"
)

func InterpolateAndParseCutterfile(in io.Reader, templateVariables map[string]interface{}) (Cutterfile, error) {
	cutterfileYAML, err := io.ReadAll(in)
	if err != nil {
		return Cutterfile{}, fmt.Errorf("unable to read Cutterfile: %w", err)
	}

	interpolator := variables.NewInterpolator()
	interpolated, err := interpolator.Interpolate("Cutterfile", cutterfileYAML, templateVariables)
	if err != nil {
		return Cutterfile{}, err
	}

	var cutterfile Cutterfile
	if err := yaml.Unmarshal(interpolated, &cutterfile); err != nil {
		return Cutterfile{}, NewConfigFileError("Cutterfile", err)
	}
	return cutterfile, nil
}

// ResolveCutterfilePath accepts either a project directory or a path to a
// Cutterfile and returns the Cutterfile path.
func ResolveCutterfilePath(path string) (string, error) {
	if filepath.Base(path) == "Cutterfile" {
		path = filepath.Dir(path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("cutterfile invalid expected a path to a Cutterfile")
	}
	return filepath.Join(path, "Cutterfile"), nil
}

func ReadCutterfile(path string) (Cutterfile, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Cutterfile{}, fmt.Errorf("failed to read Cutterfile: %w", err)
	}

	var cutterfile Cutterfile
	err = yaml.Unmarshal(buf, &cutterfile)
	if err != nil {
		return Cutterfile{}, fmt.Errorf("failed to unmarshall Cutterfile: %w", err)
	}

	return cutterfile, nil
}

func WriteCutterfile(path string, cf Cutterfile) error {
	if filepath.Base(path) != "Cutterfile" {
		path = filepath.Join(path, "Cutterfile")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeAndIgnoreError(f)
	e := yaml.NewEncoder(f)
	defer closeAndIgnoreError(e)
	return e.Encode(cf)
}

func closeAndIgnoreError(c io.Closer) {
	_ = c.Close()
}
