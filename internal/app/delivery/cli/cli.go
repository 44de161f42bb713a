package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"thermopost/internal/app/config"
	"thermopost/internal/app/contracts"
	"thermopost/internal/pkg/constvars"
	"thermopost/internal/pkg/dto/requests"
	"thermopost/internal/pkg/exceptions"
	"thermopost/internal/pkg/utils"

	"go.uber.org/zap"
)

// CLI drives one upload: it obtains the temperature from the
// positional argument or an interactive prompt, hands it to the
// usecase, and maps the outcome to the process exit code.
type CLI struct {
	Usecase        contracts.ObservationUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	Stdin          io.Reader
	Stdout         io.Writer
	Stderr         io.Writer
}

func NewCLI(usecase contracts.ObservationUsecase, internalConfig *config.InternalConfig, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) *CLI {
	return &CLI{
		Usecase:        usecase,
		InternalConfig: internalConfig,
		Log:            logger,
		Stdin:          stdin,
		Stdout:         stdout,
		Stderr:         stderr,
	}
}

// Run performs the whole read-build-upload sequence once. args are the
// positional arguments left after flag parsing; args[0], when present,
// is the temperature.
func (c *CLI) Run(ctx context.Context, args []string) int {
	rawInput, err := c.readTemperatureInput(args)
	if err != nil {
		c.reportError(err)
		return constvars.ExitFailure
	}

	request := &requests.CreateBodyTemperature{
		TemperatureCelsius: utils.ParseTemperature(rawInput),
	}
	if err := utils.ValidateStruct(request); err != nil {
		c.reportError(exceptions.ErrInputValidation(err))
		return constvars.ExitFailure
	}

	fmt.Fprintf(c.Stdout, constvars.NoticePostingTo, c.Usecase.TargetURL())

	result, err := c.Usecase.UploadBodyTemperature(ctx, request)
	if err != nil {
		c.reportError(err)
		return constvars.ExitFailure
	}

	fmt.Fprintf(c.Stdout, constvars.NoticeResponseCode, result.StatusCode)

	if !result.Uploaded {
		fmt.Fprintln(c.Stdout, constvars.UploadFailureGeneric)
		return constvars.ExitFailure
	}

	fmt.Fprintln(c.Stdout, constvars.UploadSuccess)
	return constvars.ExitSuccess
}

func (c *CLI) readTemperatureInput(args []string) (string, error) {
	if len(args) >= 1 {
		return args[0], nil
	}

	fmt.Fprint(c.Stdout, constvars.PromptTemperature)
	line, err := bufio.NewReader(c.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", exceptions.ErrNoInput(err)
	}
	return line, nil
}

func (c *CLI) reportError(err error) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		c.Log.Error("cli.Run failed",
			zap.String("dev_message", customErr.DevMessage),
		)
		fmt.Fprintln(c.Stderr, customErr.ClientMessage)
		return
	}

	c.Log.Error("cli.Run failed", zap.Error(err))
	fmt.Fprintln(c.Stderr, constvars.ErrClientSomethingWrongWithApplication)
}
