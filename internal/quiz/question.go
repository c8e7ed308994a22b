package quiz

// OptionsPerQuestion is the number of answer options each question carries.
const OptionsPerQuestion = 4

// Question is an immutable multiple-choice question.
type Question struct {
	Prompt  string   `yaml:"prompt" validate:"required"`
	Options []string `yaml:"options" validate:"len=4,unique,dive,required"`
	Correct string   `yaml:"correct" validate:"required"`
}

// IsCorrect reports whether option is the designated correct answer.
func (q Question) IsCorrect(option string) bool {
	return option != "" && option == q.Correct
}

// OptionIndex returns the position of option in q.Options, or -1.
func (q Question) OptionIndex(option string) int {
	for i, o := range q.Options {
		if o == option {
			return i
		}
	}
	return -1
}
