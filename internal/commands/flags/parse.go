package flags

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"

	"github.com/shearwater-tools/cutter/internal/variables"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

type (
	StatFunc func(string) (os.FileInfo, error)

	FileSystem interface {
		billy.Basic
		billy.Dir
	}

	ProjectDirectory interface {
		ProjectDirectory() string
	}

	VariablesService interface {
		FromPathsAndPairs(paths []string, pairs []string) (templateVariables map[string]interface{}, err error)
	}
)

// Standard is the flag set shared by every command that reads a Cutterfile.
type Standard struct {
	Cutterfile    string   `short:"cf" long:"cutterfile"     default:"Cutterfile" description:"path to Cutterfile"`
	VariableFiles []string `short:"vf" long:"variables-file"                      description:"path to a file containing variables to interpolate"`
	Variables     []string `short:"vr" long:"variable"                            description:"key value pairs of variables to interpolate"`
}

// TemplateVariables merges the variables files and key=value pairs named on
// the command line. The overrides are for tests; nil picks the defaults.
func (options *Standard) TemplateVariables(fsOverride billy.Basic, variablesServiceOverride VariablesService) (map[string]interface{}, error) {
	fs := fsOverride
	if fs == nil {
		fs = osfs.New("")
	}
	variablesService := variablesServiceOverride
	if variablesService == nil {
		variablesService = variables.NewService(fs)
	}

	templateVariables, err := variablesService.FromPathsAndPairs(options.VariableFiles, options.Variables)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template variables: %s", err)
	}
	return templateVariables, nil
}

// LoadCutterfile parses and interpolates the Cutterfile. The function
// parameters override default services; in most cases nil can be passed for
// both.
func (options *Standard) LoadCutterfile(fsOverride billy.Basic, variablesServiceOverride VariablesService) (freight.Cutterfile, error) {
	fs := fsOverride
	if fs == nil {
		fs = osfs.New("")
	}

	templateVariables, err := options.TemplateVariables(fs, variablesServiceOverride)
	if err != nil {
		return freight.Cutterfile{}, err
	}

	cutterfileFP, err := fs.Open(options.Cutterfile)
	if err != nil {
		return freight.Cutterfile{}, fmt.Errorf("failed to open Cutterfile: %w", err)
	}
	defer closeAndIgnoreError(cutterfileFP)

	return freight.InterpolateAndParseCutterfile(cutterfileFP, templateVariables)
}

func (options Standard) CutterfilePathPrefix() string {
	pathPrefix := filepath.Dir(options.Cutterfile)
	if pathPrefix == "." {
		pathPrefix = ""
	}
	return pathPrefix
}

func (options Standard) ProjectDirectory() string {
	if options.Cutterfile != "" {
		if filepath.Base(options.Cutterfile) == "Cutterfile" {
			return filepath.Dir(options.Cutterfile)
		}
		return options.Cutterfile
	}
	currentWorkingDirectory, _ := os.Getwd()
	return currentWorkingDirectory
}

// LoadWithDefaultFilePaths only sets default values if the flag is not set.
// This permits explicitly setting "zero values" for arguments without them
// being overwritten.
func LoadWithDefaultFilePaths(options ProjectDirectory, args []string, stat StatFunc) ([]string, error) {
	if stat == nil {
		stat = os.Stat
	}
	argsAfterFlags, err := jhanda.Parse(options, args)
	if err != nil {
		return nil, err
	}

	v := reflect.ValueOf(options).Elem()

	configurePathDefaults(v, options.ProjectDirectory(), stat)

	return argsAfterFlags, nil
}

// configurePathDefaults resolves string flags that defaulted to a file name
// against the project directory, zeroing them when the file does not exist so
// commands report the missing file instead of a mystery path.
func configurePathDefaults(v reflect.Value, pathPrefix string, stat StatFunc) {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		fieldType := t.Field(i)
		if !fieldType.IsExported() {
			continue
		}

		fieldValue := v.Field(i)

		switch fieldType.Type.Kind() {
		default:
			continue
		case reflect.Struct:
			configurePathDefaults(fieldValue, pathPrefix, stat)
			continue
		case reflect.String:
			defaultValue, ok := fieldType.Tag.Lookup("default")
			if !ok {
				continue
			}

			value := v.Field(i).Interface().(string)

			if defaultValue != value {
				continue
			}

			if pathPrefix != "" {
				value = filepath.Join(pathPrefix, value)
			}

			_, err := stat(value)
			if err != nil {
				// set to zero value
				v.Field(i).Set(reflect.Zero(v.Field(i).Type()))
				continue
			}

			fieldValue.Set(reflect.ValueOf(value))
		}
	}
}

func closeAndIgnoreError(c interface{ Close() error }) {
	_ = c.Close()
}
