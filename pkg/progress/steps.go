package progress

import "fmt"

// Step is one unit of work shown on the spinner.
type Step struct {
	Message string
	Run     func() error
}

// RunSteps runs steps in order behind a single spinner. The first failing
// step stops the sequence and its error is returned wrapped with the step
// message.
func RunSteps(config *Config, done string, steps ...Step) error {
	if len(steps) == 0 {
		return nil
	}

	spinner := NewSpinner(config)
	if err := spinner.Start(steps[0].Message); err != nil {
		return err
	}

	for _, step := range steps {
		spinner.Update(step.Message)
		if err := step.Run(); err != nil {
			spinner.Failure(step.Message)
			return fmt.Errorf("%s: %w", step.Message, err)
		}
	}

	spinner.Success(done)
	return nil
}
