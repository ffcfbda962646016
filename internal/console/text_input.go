package console

import (
	"strconv"
	"strings"
)

type validation struct {
	function     func(input string) bool
	errorMessage string
}

type textInput struct {
	prompt      string
	validations []validation
}

func newTextInput(prompt string) *textInput {
	return &textInput{prompt: prompt}
}

func (a *textInput) AddValidation(validation validation) {
	a.validations = append(a.validations, validation)
}

// Read asks once. The first failed validation is printed and returned as an inputError.
func (a *textInput) Read(t terminal) (string, error) {
	input, err := t.ReadLine(a.prompt)
	if err != nil {
		return "", err
	}

	for _, _validation := range a.validations {
		if !_validation.function(input) {
			t.Println(_validation.errorMessage)
			return "", &inputError{message: _validation.errorMessage}
		}
	}

	return input, nil
}

func newIDInput(prompt, errorMessage string) *textInput {
	input := newTextInput(prompt)
	input.AddValidation(validation{
		function: func(input string) bool {
			_, err := parseID(input)
			return err == nil
		},
		errorMessage: errorMessage,
	})
	return input
}

func parseID(input string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(input))
}

// readFields reads the inputs in order and stops at the first failure.
func readFields(t terminal, inputs ...*textInput) ([]string, error) {
	values := make([]string, 0, len(inputs))
	for _, input := range inputs {
		value, err := input.Read(t)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
