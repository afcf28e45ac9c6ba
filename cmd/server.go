package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sufiyanali07/erp-backend/internal/server"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the ERP backend server",
	Long: `Starts the ERP backend server. Usage:

	erp-backend server
`,
	Run: func(cmd *cobra.Command, args []string) {
		srv, err := server.NewServer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize server: %v\n", err)
			os.Exit(1)
		}
		if err := srv.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
