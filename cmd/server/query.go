package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artem13815/recruit/pkg/admin"
	pgrepo "github.com/artem13815/recruit/pkg/repository/postgres"
)

var queryCmd = &cobra.Command{
	Use:   "query SQL",
	Short: "Run one SQL statement through the admin console",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer e.close()

		maxRows, _ := cmd.Flags().GetInt("max-rows")
		console := admin.NewConsole(pgrepo.NewAdminExecutor(e.pool), maxRows, e.log)
		res := console.Execute(cmd.Context(), strings.Join(args, " "))
		if res.Error != "" {
			return errors.New(res.Error)
		}
		printResult(res)
		return nil
	},
}

func init() {
	queryCmd.Flags().Int("max-rows", 1000, "row limit for read queries")
	rootCmd.AddCommand(queryCmd)
}

func printResult(res admin.Result) {
	if res.Read {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(res.Columns, "\t"))
		for _, row := range res.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				if v == nil {
					cells[i] = "NULL"
					continue
				}
				cells[i] = fmt.Sprint(v)
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
		_ = w.Flush()
	}
	fmt.Printf("%s (%s)\n", res.Message, res.Elapsed)
}
