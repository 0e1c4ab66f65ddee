package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/relware/distpub/service/storage"
	releasetable "github.com/relware/distpub/shared/release_table"
	"github.com/spf13/pflag"
)

func runStorageCommand(cmd string, args []string) error {
	switch cmd {
	case "db":
		return runDBCommand(args)
	case "history":
		return runHistoryCommand(args)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

func runDBCommand(args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	olderThan := fs.Int("older-than", 90, "Purge releases older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: distpub db <vacuum|reindex|purge> [--db-path ...]")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "vacuum":
		return store.Vacuum(context.Background())
	case "reindex":
		return store.Reindex(context.Background())
	case "purge":
		count, err := store.PurgeOlderThan(context.Background(), *olderThan)
		if err != nil {
			return err
		}
		fmt.Printf("Purged %d releases\n", count)
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", sub)
	}
}

func runHistoryCommand(args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	versionFilter := fs.String("release-version", "", "Release version filter")
	limit := fs.Int("limit", 20, "Number of rows to list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: distpub history <list|show>")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "list":
		releases, err := store.GetRecentReleases(*versionFilter, *limit)
		if err != nil {
			return err
		}
		releasetable.DrawHistoryTable(releases)
		return nil
	case "show":
		if len(rest) < 2 {
			return fmt.Errorf("usage: distpub history show <release-id>")
		}
		releaseID, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return err
		}
		files, err := store.ListFiles(releaseID)
		if err != nil {
			return err
		}
		releasetable.DrawFilesTable(files)
		return nil
	default:
		return fmt.Errorf("unsupported history command: %s", sub)
	}
}
