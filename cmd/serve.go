package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaci/internal/api"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation engine over HTTP",
	Long: `Serve the calculation engine as a JSON API.

Endpoints:
  GET  /health                    - liveness check
  POST /api/beam/analyze          - analyze a section (SectionInput JSON)
  GET  /api/beam/defaults/{units} - default parameter set (imperial or si)

The port is taken from --port, the PORT environment variable or a .env
file, in that order of precedence; default 8080.`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) {
	// .env is optional
	godotenv.Load()

	port := servePort
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	handler := api.CORS(api.NewRouter())

	log.Printf("goaci listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
