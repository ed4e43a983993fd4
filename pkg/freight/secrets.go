package freight

import (
	"fmt"
	"os"
)

// ResolveSecret fills in a secret the Cutterfile left blank. Configured
// values win, then a template variable, then the environment. A secret that
// resolves nowhere stays empty; callers that require one say so.
func ResolveSecret(value, variableName, envName string, templateVariables map[string]interface{}) (string, error) {
	if value != "" {
		return value, nil
	}
	if v, ok := templateVariables[variableName]; ok {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("variable %q must be a string, got %T", variableName, v)
		}
		return s, nil
	}
	return os.Getenv(envName), nil
}

// ConfigureSecrets resolves the credentials on every publish destination.
// Cutterfiles are committed; secrets usually arrive through variables or the
// environment instead of sitting in the file.
func (cf Cutterfile) ConfigureSecrets(templateVariables map[string]interface{}) (Cutterfile, error) {
	publish := make([]PublishDestination, len(cf.Publish))
	copy(publish, cf.Publish)
	cf.Publish = publish

	for i, dest := range cf.Publish {
		var err error
		switch dest.Type {
		case PublishDestinationTypeS3:
			dest.AccessKeyID, err = ResolveSecret(dest.AccessKeyID, "aws_access_key_id", "AWS_ACCESS_KEY_ID", templateVariables)
			if err != nil {
				return Cutterfile{}, err
			}
			dest.SecretAccessKey, err = ResolveSecret(dest.SecretAccessKey, "aws_secret_access_key", "AWS_SECRET_ACCESS_KEY", templateVariables)
			if err != nil {
				return Cutterfile{}, err
			}
		case PublishDestinationTypeArtifactory:
			dest.Username, err = ResolveSecret(dest.Username, "artifactory_username", "ARTIFACTORY_USERNAME", templateVariables)
			if err != nil {
				return Cutterfile{}, err
			}
			dest.Password, err = ResolveSecret(dest.Password, "artifactory_password", "ARTIFACTORY_PASSWORD", templateVariables)
			if err != nil {
				return Cutterfile{}, err
			}
		}
		cf.Publish[i] = dest
	}
	return cf, nil
}
