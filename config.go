package transducers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// DefaultPipeName is the name used for pipes that are not given a name.
const DefaultPipeName = "pipe"

// ErrInvalidConfig is returned when a PipeConfig does not pass validation.
var ErrInvalidConfig = errors.New("invalid pipe config")

// PipeConfig contains the configuration of a Pipe.
type PipeConfig struct {
	// Name identifies the pipe in log messages.
	Name string `yaml:"name" mapstructure:"name" validate:"max=64"`

	// InputBuffer is the number of elements that can be sent without blocking before the pipeline
	// has consumed them.
	InputBuffer int `yaml:"input_buffer" mapstructure:"input_buffer" validate:"gte=0,lte=1048576"`

	// OutputBuffer is the number of produced elements that are buffered before the pipeline blocks
	// waiting for a receiver.
	OutputBuffer int `yaml:"output_buffer" mapstructure:"output_buffer" validate:"gte=0,lte=1048576"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// ApplyDefaults applies default values to the configuration.
func (c *PipeConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = DefaultPipeName
	}
}

// Validate validates the configuration.
func (c *PipeConfig) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s must satisfy %s=%s", e.Field(), e.Tag(), e.Param()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(messages, "; "))
}
