package main

import (
	"fmt"
	"os"

	_ "psicomapa-backend/docs" // registers the OpenAPI document for /swagger

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//	@title			PsicoMapa API
//	@version		1.0
//	@description	Backend API for PsicoMapa: NR-1 psychosocial risk and organizational climate surveys, analytics, reports and billing.

//	@contact.name	PsicoMapa Suporte
//	@contact.email	suporte@psicomapa.com.br

//	@host		localhost:7008
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the Supabase session JWT.

var rootCmd = &cobra.Command{
	Use:           "psicomapa",
	Short:         "PsicoMapa backend: surveys, analytics, reports and billing",
	RunE:          runServe, // serve is the default
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedTemplatesCmd, loadDataCmd)
}

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}
