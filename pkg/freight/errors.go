package freight

import (
	"fmt"
)

type ConfigFileError struct {
	HumanReadableConfigFileName string
	err                         error
}

func NewConfigFileError(name string, err error) ConfigFileError {
	return ConfigFileError{HumanReadableConfigFileName: name, err: err}
}

func (err ConfigFileError) Unwrap() error {
	return err.err
}

func (err ConfigFileError) Error() string {
	return fmt.Sprintf("encountered a configuration file error with %s: %s", err.HumanReadableConfigFileName, err.err.Error())
}
