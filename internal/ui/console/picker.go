package console

import (
	"errors"

	survey "github.com/AlecAivazis/survey/v2"
)

// Picker asks the user to choose one of labels.
type Picker interface {
	Pick(message string, labels []string) (string, error)
}

// SurveyPicker prompts on the terminal.
type SurveyPicker struct {
	Opts []survey.AskOpt
}

func (p SurveyPicker) Pick(message string, labels []string) (string, error) {
	if len(labels) == 0 {
		return "", errors.New("nothing to select")
	}
	choice := ""
	if err := survey.AskOne(&survey.Select{Message: message, Options: labels, PageSize: 15}, &choice, p.Opts...); err != nil {
		return "", err
	}
	return choice, nil
}

func messageSelect(n int) string {
	if n == 1 {
		return "Show package?"
	}
	return "Select a package to show"
}

// SelectLabel prompts for one of the listed items and returns its label,
// which is also a valid show term.
func SelectLabel(p Picker, labels []string) (string, error) {
	return p.Pick(messageSelect(len(labels)), labels)
}
