package main

import (
	"context"
	"os"

	"thermopost/internal/app/config"
	"thermopost/internal/app/delivery/cli"
	"thermopost/internal/app/drivers/logger"
	"thermopost/internal/app/services/observations"
	"thermopost/internal/pkg/constvars"

	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("thermopost", pflag.ExitOnError)
	fhirBaseUrl := flags.String("fhir-base-url", "", "Override the FHIR server base URL")
	patientID := flags.String("patient-id", "", "Override the subject patient ID")
	if err := flags.Parse(cli.NormalizeArgs(os.Args[1:])); err != nil {
		os.Exit(constvars.ExitFailure)
	}

	internalConfig := config.NewInternalConfig()
	if *fhirBaseUrl != "" {
		internalConfig.FHIR.BaseUrl = *fhirBaseUrl
	}
	if *patientID != "" {
		internalConfig.App.PatientID = *patientID
	}

	log := logger.NewZapLogger(internalConfig)

	fhirClient := observations.NewObservationFhirClient(internalConfig.FHIR.BaseUrl)
	observationUsecase := observations.NewObservationUsecase(fhirClient, internalConfig, log)
	cliApp := cli.NewCLI(observationUsecase, internalConfig, log, os.Stdin, os.Stdout, os.Stderr)

	exitCode := cliApp.Run(context.Background(), flags.Args())
	log.Sync()
	os.Exit(exitCode)
}
