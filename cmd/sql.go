package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a read-only SQL query against the upload cache",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "SELECT") {
		return fmt.Errorf("only SELECT queries are allowed")
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.Conn().Query(query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, strings.Join(cols, " | "))

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	count := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		cells := make([]string, len(vals))
		for i, v := range vals {
			switch t := v.(type) {
			case nil:
				cells[i] = "NULL"
			case []byte:
				cells[i] = string(t)
			default:
				cells[i] = fmt.Sprintf("%v", t)
			}
		}
		fmt.Fprintln(os.Stdout, strings.Join(cells, " | "))
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "(%d rows)\n", count)
	return nil
}
