package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/analysis"
	"github.com/arasv/runwrapped/internal/report"
	"github.com/arasv/runwrapped/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Open a persistent session against the upload cache. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	cGreeting.Println("runwrapped shell")
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("runwrapped")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		cmd, args := tokens[0], tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "list":
			shellList(db)
		case "show":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: show <hash-prefix> [--user <username>]")
				continue
			}
			prefix := args[0]
			user := ""
			for i := 1; i+1 < len(args); i++ {
				if args[i] == "--user" {
					user = args[i+1]
				}
			}
			shellShow(db, prefix, user)
		case "opponents":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: opponents <hash-prefix> [limit]")
				continue
			}
			limit := 10
			if len(args) > 1 {
				if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
					limit = n
				}
			}
			shellOpponents(db, args[0], limit)
		case "drop":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: drop <hash-prefix>")
				continue
			}
			shellDrop(db, args[0])
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", cmd)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"list", "list all stored uploads"},
		{"show <hash-prefix>", "show an upload's full review"},
		{"show <hash-prefix> --user <name>", "same, analyzed as another player"},
		{"opponents <hash-prefix> [limit]", "opponent leaderboard for an upload"},
		{"drop <hash-prefix>", "delete a stored upload"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-36s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func shellList(db *storage.DB) {
	uploads, err := db.ListUploads()
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(uploads) == 0 {
		cMuted.Println("No uploads stored yet.")
		return
	}
	cHeader.Fprintf(os.Stdout, "%-14s  %-20s  %6s  %6s  %6s  %s\n",
		"HASH", "PLAYER", "GAMES", "CORP", "RUNNER", "IMPORTED")
	cMuted.Fprintf(os.Stdout, "%-14s  %-20s  %6s  %6s  %6s  %s\n",
		"──────────────", "────────────────────", "──────", "──────", "──────", "────────")
	for _, u := range uploads {
		fmt.Fprintf(os.Stdout, "%-14s  %-20s  %6d  %6d  %6d  %s\n",
			u.Hash[:12], u.Username, u.TotalGames, u.CorpGames, u.RunnerGames, u.ImportedAt)
	}
}

func shellShow(db *storage.DB, prefix, user string) {
	saved := asUser
	if user != "" {
		asUser = user
	}
	defer func() { asUser = saved }()

	if err := showByHash(db, prefix); err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

func shellOpponents(db *storage.DB, prefix string, limit int) {
	stored, err := db.GetUploadByPrefix(prefix)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if stored == nil {
		cError.Fprintf(os.Stderr, "no upload found with prefix %q\n", prefix)
		return
	}
	games, err := db.LoadGames(stored.Hash)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	user := stored.Username
	if asUser != "" {
		user = asUser
	}
	if nemesis := analysis.MostFrequentOpponent(games, user); nemesis != nil {
		fmt.Fprintf(os.Stdout, "Nemesis: %s (%d games)\n", nemesis.Username, nemesis.Games)
	}
	report.PrintOpponents(os.Stdout, games, user, limit)
}

func shellDrop(db *storage.DB, prefix string) {
	stored, err := db.GetUploadByPrefix(prefix)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if stored == nil {
		cError.Fprintf(os.Stderr, "no upload found with prefix %q\n", prefix)
		return
	}
	if err := db.DeleteUpload(stored.Hash); err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stdout, "Deleted upload %s\n", stored.Hash[:12])
}
