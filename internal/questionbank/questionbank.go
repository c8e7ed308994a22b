// Package questionbank supplies the fixed question set and checks it once at
// startup. The controller assumes a valid bank and never re-checks it.
package questionbank

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/abhisek/blitzquiz/internal/quiz"
)

var defaultQuestions = []quiz.Question{
	{
		Prompt:  "What is the capital of France?",
		Options: []string{"London", "Berlin", "Paris", "Madrid"},
		Correct: "Paris",
	},
	{
		Prompt:  "Which planet is known as the Red Planet?",
		Options: []string{"Venus", "Mars", "Jupiter", "Saturn"},
		Correct: "Mars",
	},
	{
		Prompt:  "What is the largest mammal in the world?",
		Options: []string{"African Elephant", "Blue Whale", "Giraffe", "Hippopotamus"},
		Correct: "Blue Whale",
	},
	{
		Prompt:  "Who painted the Mona Lisa?",
		Options: []string{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Michelangelo"},
		Correct: "Leonardo da Vinci",
	},
	{
		Prompt:  "What is the chemical symbol for gold?",
		Options: []string{"Ag", "Fe", "Au", "Cu"},
		Correct: "Au",
	},
}

// Default returns a copy of the built-in question set.
func Default() []quiz.Question {
	out := make([]quiz.Question, len(defaultQuestions))
	for i, q := range defaultQuestions {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

// ErrEmpty is returned when validating a bank with no questions.
var ErrEmpty = errors.New("question bank is empty")

var (
	validate *govalidator.Validate
	trans    ut.Translator
)

func init() {
	validate = govalidator.New(govalidator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(correctAmongOptions, quiz.Question{})

	t, err := newTranslator(validate)
	if err != nil {
		panic(fmt.Sprintf("questionbank: %v", err))
	}
	trans = t
}

// newTranslator registers English messages, including the custom
// correct_option tag, on v.
func newTranslator(v *govalidator.Validate) (ut.Translator, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	t, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("english translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(v, t); err != nil {
		return nil, fmt.Errorf("register default translations: %w", err)
	}
	err := v.RegisterTranslation("correct_option", t,
		func(ut ut.Translator) error {
			return ut.Add("correct_option", "{0} must be one of the listed options", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			msg, err := ut.T("correct_option", fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
	if err != nil {
		return nil, fmt.Errorf("register correct_option translation: %w", err)
	}
	return t, nil
}

// correctAmongOptions rejects questions whose correct answer is not listed.
func correctAmongOptions(sl govalidator.StructLevel) {
	q := sl.Current().Interface().(quiz.Question)
	if q.Correct != "" && q.OptionIndex(q.Correct) < 0 {
		sl.ReportError(q.Correct, "Correct", "Correct", "correct_option", "")
	}
}

// Validate checks every question: a prompt, exactly four distinct non-empty
// options, and a correct answer present among them. Problems are reported per
// question in human-readable form.
func Validate(questions []quiz.Question) error {
	if len(questions) == 0 {
		return ErrEmpty
	}
	var errs []error
	for i, q := range questions {
		if err := validate.Struct(q); err != nil {
			errs = append(errs, fmt.Errorf("question %d: %s", i+1, describe(err)))
		}
	}
	return errors.Join(errs...)
}

func describe(err error) string {
	var ve govalidator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fe.Translate(trans))
	}
	return strings.Join(msgs, "; ")
}
